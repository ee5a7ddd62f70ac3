package source

import (
	"errors"
	"fmt"
	"strings"

	"member-reconcile/core/reconcile"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptySource is returned when a source has no header row.
	ErrEmptySource = errors.New("source has no header row")
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("required column missing")
	// ErrInvalidAmount is returned when a paid amount is missing or not numeric.
	ErrInvalidAmount = errors.New("paid amount is missing or not numeric")
)

// missingMarkers are the cell values read as an absent name, in addition to
// the empty cell. They follow the default NA markers of common CSV tooling.
var missingMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

// isMissing reports whether a name cell holds no value.
func isMissing(v string) bool {
	if v == "" {
		return true
	}
	_, ok := missingMarkers[v]
	return ok
}

// table is a header-indexed view over raw rows.
type table struct {
	name    string
	columns map[string]int
	rows    [][]string
}

// newTable indexes the header row and checks the required columns are present.
func newTable(name string, raw [][]string, required []string) (*table, error) {
	if len(raw) == 0 {
		return nil, &MalformedSourceError{Source: name, Err: ErrEmptySource}
	}

	columns := make(map[string]int, len(raw[0]))
	for i, h := range raw[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := columns[h]; !dup {
			columns[h] = i
		}
	}

	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, &MalformedSourceError{Source: name, Column: col, Err: ErrMissingColumn}
		}
	}

	return &table{name: name, columns: columns, rows: raw[1:]}, nil
}

// cell returns the raw value of a column, or "" for short rows.
func (t *table) cell(row []string, col string) string {
	idx := t.columns[col]
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// isBlank reports whether every cell of the row is empty.
func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// members converts the table into member records.
func (t *table) members() []reconcile.MemberRecord {
	out := make([]reconcile.MemberRecord, 0, len(t.rows))
	for _, row := range t.rows {
		if isBlank(row) {
			continue
		}
		out = append(out, reconcile.MemberRecord{
			MemberID:  t.cell(row, ColMemberID),
			FirstName: t.cell(row, ColFirstName),
			LastName:  t.cell(row, ColLastName),
		})
	}
	return out
}

// payments converts the table into payment records.
// An empty or NA-marked fullName cell becomes an absent name.
func (t *table) payments() ([]reconcile.PaymentRecord, error) {
	out := make([]reconcile.PaymentRecord, 0, len(t.rows))
	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}

		rawAmount := t.cell(row, ColPaidAmount)
		amount, err := ParseAmount(rawAmount)
		if err != nil {
			return nil, &MalformedSourceError{
				Source: t.name,
				Row:    i + 2,
				Column: ColPaidAmount,
				Err:    fmt.Errorf("%w: %q", ErrInvalidAmount, rawAmount),
			}
		}

		var fullName *string
		if name := t.cell(row, ColFullName); !isMissing(name) {
			fullName = &name
		}

		out = append(out, reconcile.PaymentRecord{
			MemberID:   t.cell(row, ColMemberID),
			FullName:   fullName,
			PaidAmount: amount,
		})
	}
	return out, nil
}

// ParseAmount parses a paid amount cell exactly. Empty and non-numeric
// values are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return v, nil
}
