package payments

import (
	"errors"
	"io"

	"member-reconcile/core/logger"
	"member-reconcile/core/reconcile"
	"member-reconcile/feature/payments/report"
	"member-reconcile/feature/payments/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for payment reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the payments routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/payments")
	group.Post("/reconcile", h.HandleReconcile)
}

// RejectedRecord is an invalid joined record with its rejection reason.
type RejectedRecord struct {
	reconcile.JoinedRecord
	Reason reconcile.Reason `json:"reason"`
}

// ReconcileResponse is the JSON body returned by HandleReconcile.
type ReconcileResponse struct {
	RunID    string                    `json:"run_id"`
	Cleaned  []reconcile.CleanedRecord `json:"cleaned"`
	Rejected []RejectedRecord          `json:"rejected"`
	Summary  *report.Summary           `json:"summary,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

// HandleReconcile reconciles two uploaded CSV files.
// Expects multipart form files "members" and "payments".
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	members, err := openFormFile(c, "members")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer members.Close()

	payments, err := openFormFile(c, "payments")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer payments.Close()

	run, err := h.service.ReconcileStreams(c.Context(), members, payments)

	var malformed *source.MalformedSourceError
	switch {
	case errors.As(err, &malformed):
		l.Warn("Rejected malformed upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, report.ErrEmptyDataset):
		resp := buildResponse(run)
		resp.Error = err.Error()
		return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
	case err != nil:
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(buildResponse(run))
}

func openFormFile(c *fiber.Ctx, field string) (io.ReadCloser, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, errors.New("missing form file: " + field)
	}
	return fh.Open()
}

func buildResponse(run *RunResult) ReconcileResponse {
	resp := ReconcileResponse{
		RunID:    run.RunID,
		Cleaned:  run.Result.Cleaned,
		Rejected: make([]RejectedRecord, 0, len(run.Result.Invalid)),
		Summary:  run.Summary,
	}
	for _, rec := range run.Result.Invalid {
		resp.Rejected = append(resp.Rejected, RejectedRecord{JoinedRecord: rec, Reason: reconcile.Classify(rec)})
	}
	return resp
}
