// Package report computes and renders the aggregates of a reconciliation run:
// the total paid amount and the highest paid member, plus reject counts.
//
// The highest paid member is undefined for an empty cleaned set, so Summarize
// returns ErrEmptyDataset instead of a meaningless value.
package report
