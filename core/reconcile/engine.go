package reconcile

import (
	"strings"

	"golang.org/x/text/cases"
)

// ExpectedFullName builds the name a payment is checked against.
// Case is preserved; only surrounding whitespace is removed from each part.
func ExpectedFullName(m MemberRecord) string {
	return strings.TrimSpace(m.FirstName) + " " + strings.TrimSpace(m.LastName)
}

// Normalize prepares a name for comparison: nil becomes empty, then trim and case-fold.
func Normalize(s *string) string {
	if s == nil {
		return ""
	}
	return cases.Fold().String(strings.TrimSpace(*s))
}

// Join left-joins payments against members on MemberID.
// Every payment yields at least one joined record. Duplicate member keys fan out
// in member order, matching relational left-join cardinality.
func Join(members []MemberRecord, payments []PaymentRecord) []JoinedRecord {
	index := make(map[string][]string, len(members))
	for _, m := range members {
		index[m.MemberID] = append(index[m.MemberID], ExpectedFullName(m))
	}

	joined := make([]JoinedRecord, 0, len(payments))
	for _, p := range payments {
		names, ok := index[p.MemberID]
		if !ok {
			joined = append(joined, JoinedRecord{PaymentRecord: p})
			continue
		}
		for _, name := range names {
			expected := name
			joined = append(joined, JoinedRecord{PaymentRecord: p, ExpectedFullName: &expected})
		}
	}
	return joined
}

// IsIdentityValid reports whether the payment matched a member.
func IsIdentityValid(j JoinedRecord) bool {
	return j.ExpectedFullName != nil
}

// IsNameConsistent reports whether the payment name is absent or matches the
// expected name after normalization.
func IsNameConsistent(j JoinedRecord) bool {
	if j.FullName == nil {
		return true
	}
	return Normalize(j.FullName) == Normalize(j.ExpectedFullName)
}

// Classify returns the partition reason for a joined record.
// Identity failures take precedence over name conflicts.
func Classify(j JoinedRecord) Reason {
	switch {
	case !IsIdentityValid(j):
		return ReasonUnknownMember
	case !IsNameConsistent(j):
		return ReasonNameMismatch
	default:
		return ReasonValid
	}
}

// Validate joins and partitions the payments. The split is total and disjoint,
// and both partitions keep the payment input order.
func Validate(members []MemberRecord, payments []PaymentRecord) (valid, invalid []JoinedRecord) {
	valid = []JoinedRecord{}
	invalid = []JoinedRecord{}
	for _, j := range Join(members, payments) {
		if IsIdentityValid(j) && IsNameConsistent(j) {
			valid = append(valid, j)
		} else {
			invalid = append(invalid, j)
		}
	}
	return valid, invalid
}

// Transform shapes valid records into cleaned output rows.
// The payment's own name is kept verbatim when present; otherwise the expected name is used.
func Transform(valid []JoinedRecord) []CleanedRecord {
	cleaned := make([]CleanedRecord, 0, len(valid))
	for _, j := range valid {
		var name string
		if j.FullName != nil {
			name = *j.FullName
		} else if j.ExpectedFullName != nil {
			name = *j.ExpectedFullName
		}
		cleaned = append(cleaned, CleanedRecord{
			MemberID:   j.MemberID,
			FullName:   name,
			PaidAmount: j.PaidAmount,
		})
	}
	return cleaned
}

// Reconcile runs validation followed by the transform.
func Reconcile(members []MemberRecord, payments []PaymentRecord) *Result {
	valid, invalid := Validate(members, payments)
	return &Result{
		Valid:   valid,
		Invalid: invalid,
		Cleaned: Transform(valid),
	}
}
