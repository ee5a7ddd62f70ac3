package payments

import (
	"context"
	"fmt"
	"io"

	"member-reconcile/core/logger"
	"member-reconcile/core/reconcile"
	"member-reconcile/feature/payments/report"
	"member-reconcile/feature/payments/sink"
	"member-reconcile/feature/payments/source"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Input names the sources and the cleaned output of a file-based run.
type Input struct {
	MembersPath  string
	PaymentsPath string
	OutputPath   string
}

// InputFromConfig builds an Input from the pipeline configuration.
func InputFromConfig(cfg Config) Input {
	return Input{
		MembersPath:  cfg.MembersPath,
		PaymentsPath: cfg.PaymentsPath,
		OutputPath:   cfg.OutputPath,
	}
}

// RunResult describes a completed run.
type RunResult struct {
	// RunID identifies the run in logs and optional sinks.
	RunID string
	// Result holds the valid, invalid and cleaned partitions.
	Result *reconcile.Result
	// Summary is nil when the cleaned set is empty.
	Summary *report.Summary
	// ObjectName is the storage key of the uploaded dataset, if uploaded.
	ObjectName string
	// StoredRows is the number of rows written to the database sink.
	StoredRows int
}

// Service orchestrates loading, reconciliation, persistence and reporting.
type Service struct {
	logger   *zap.Logger
	database *sink.Database
	storage  *sink.Storage
	newRunID func() string
}

// NewService creates a payments service. database and storage may be nil to
// disable those sinks.
func NewService(logger *zap.Logger, database *sink.Database, storage *sink.Storage) *Service {
	return &Service{
		logger:   logger,
		database: database,
		storage:  storage,
		newRunID: uuid.NewString,
	}
}

// Run executes the file pipeline: load, reconcile, persist, summarize.
// When the cleaned set is empty the output is still written and the returned
// error wraps report.ErrEmptyDataset; the RunResult is returned alongside it.
func (s *Service) Run(ctx context.Context, in Input) (*RunResult, error) {
	runID := s.newRunID()
	l := logger.WithRunID(s.logger, runID)

	members, err := source.LoadMembers(in.MembersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	payments, err := source.LoadPayments(in.PaymentsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	l.Info("Loaded sources",
		zap.Int("members", len(members)),
		zap.Int("payments", len(payments)),
	)

	result := reconcile.Reconcile(members, payments)
	logResult(l, result)

	out := &RunResult{RunID: runID, Result: result}

	if err := sink.SaveCSV(in.OutputPath, result.Cleaned); err != nil {
		return nil, err
	}
	l.Info("Saved cleaned file", zap.String("path", in.OutputPath))

	if s.database != nil {
		if err := s.database.Migrate(ctx); err != nil {
			return nil, err
		}
		n, err := s.database.Save(ctx, runID, result.Cleaned)
		if err != nil {
			return nil, err
		}
		out.StoredRows = n
		l.Info("Stored cleaned records", zap.Int("rows", n))
	}

	if s.storage != nil {
		name, err := s.storage.Upload(ctx, runID, result.Cleaned)
		if err != nil {
			return nil, err
		}
		out.ObjectName = name
		l.Info("Uploaded cleaned file", zap.String("object", name))
	}

	summary, err := report.Summarize(result)
	if err != nil {
		return out, fmt.Errorf("failed to build report: %w", err)
	}
	out.Summary = summary
	return out, nil
}

// ReconcileStreams reconciles CSV streams in memory without touching any sink.
func (s *Service) ReconcileStreams(ctx context.Context, members, payments io.Reader) (*RunResult, error) {
	runID := s.newRunID()
	l := logger.WithRunID(s.logger, runID)

	memberRecords, err := source.ReadMembers("members", members)
	if err != nil {
		return nil, err
	}
	paymentRecords, err := source.ReadPayments("payments", payments)
	if err != nil {
		return nil, err
	}

	result := reconcile.Reconcile(memberRecords, paymentRecords)
	logResult(l, result)

	out := &RunResult{RunID: runID, Result: result}
	summary, err := report.Summarize(result)
	if err != nil {
		return out, err
	}
	out.Summary = summary
	return out, nil
}

// logResult logs partition sizes and, at debug level, each rejected row.
func logResult(l *zap.Logger, result *reconcile.Result) {
	l.Info("Reconciled payments",
		zap.Int("valid", len(result.Valid)),
		zap.Int("invalid", len(result.Invalid)),
	)
	for _, rec := range result.Invalid {
		l.Debug("Rejected payment",
			zap.String("member_id", rec.MemberID),
			zap.String("reason", string(reconcile.Classify(rec))),
			zap.Stringer("paid_amount", rec.PaidAmount),
		)
	}
}
