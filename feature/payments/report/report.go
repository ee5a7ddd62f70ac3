package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"member-reconcile/core/reconcile"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDataset is returned when there is no cleaned record to report on.
var ErrEmptyDataset = errors.New("no data to report")

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Summary holds the aggregates of a reconciliation run.
type Summary struct {
	// TotalPaid is the sum of PaidAmount over the cleaned set.
	TotalPaid decimal.Decimal `json:"total_paid" yaml:"total_paid"`

	// HighestPaid is the first cleaned record carrying the maximum PaidAmount.
	HighestPaid reconcile.CleanedRecord `json:"highest_paid_member" yaml:"highest_paid_member"`

	// CleanedCount is the number of cleaned records.
	CleanedCount int `json:"cleaned_count" yaml:"cleaned_count"`

	// RejectedCount is the number of invalid joined records.
	RejectedCount int `json:"rejected_count" yaml:"rejected_count"`

	// RejectedByReason breaks RejectedCount down by rejection reason.
	RejectedByReason map[reconcile.Reason]int `json:"rejected_by_reason,omitempty" yaml:"rejected_by_reason,omitempty"`
}

// TotalPaid sums the paid amounts. It is 0 for an empty set.
func TotalPaid(cleaned []reconcile.CleanedRecord) decimal.Decimal {
	total := decimal.Zero
	for _, c := range cleaned {
		total = total.Add(c.PaidAmount)
	}
	return total
}

// HighestPaid returns the record with the largest PaidAmount.
// Ties resolve to the earliest record.
func HighestPaid(cleaned []reconcile.CleanedRecord) (reconcile.CleanedRecord, error) {
	if len(cleaned) == 0 {
		return reconcile.CleanedRecord{}, ErrEmptyDataset
	}
	best := cleaned[0]
	for _, c := range cleaned[1:] {
		if c.PaidAmount.GreaterThan(best.PaidAmount) {
			best = c
		}
	}
	return best, nil
}

// Summarize computes the report aggregates for a reconciliation result.
func Summarize(result *reconcile.Result) (*Summary, error) {
	highest, err := HighestPaid(result.Cleaned)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalPaid:     TotalPaid(result.Cleaned),
		HighestPaid:   highest,
		CleanedCount:  len(result.Cleaned),
		RejectedCount: len(result.Invalid),
	}
	if len(result.Invalid) > 0 {
		summary.RejectedByReason = result.RejectCounts()
	}
	return summary, nil
}

// Render writes the summary in the requested format. An empty format means text.
func Render(w io.Writer, s *Summary, format string) error {
	switch format {
	case FormatText, "":
		return renderText(w, s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// FormatAmount renders an amount in plain notation without trailing zeros.
func FormatAmount(v decimal.Decimal) string {
	return v.String()
}

func renderText(w io.Writer, s *Summary) error {
	h := s.HighestPaid
	_, err := fmt.Fprintf(w, "=== REPORT ===\nTotal Paid Amount: %s\n\nHighest Paid Member:\n  memberId:   %s\n  fullName:   %s\n  paidAmount: %s\n",
		FormatAmount(s.TotalPaid), h.MemberID, h.FullName, FormatAmount(h.PaidAmount))
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nCleaned Records: %d\nRejected Records: %d\n", s.CleanedCount, s.RejectedCount); err != nil {
		return err
	}

	reasons := make([]string, 0, len(s.RejectedByReason))
	for r := range s.RejectedByReason {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", r, s.RejectedByReason[reconcile.Reason(r)]); err != nil {
			return err
		}
	}
	return nil
}
