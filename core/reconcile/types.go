package reconcile

import "github.com/shopspring/decimal"

// MemberRecord represents one row of the member source.
type MemberRecord struct {
	// MemberID is the unique key of the member.
	MemberID string `json:"memberId" yaml:"memberId"`

	// FirstName is the member's first name as stored in the source.
	FirstName string `json:"firstName" yaml:"firstName"`

	// LastName is the member's last name as stored in the source.
	LastName string `json:"lastName" yaml:"lastName"`
}

// PaymentRecord represents one payment transaction.
type PaymentRecord struct {
	// MemberID references a MemberRecord. It is not guaranteed to exist.
	MemberID string `json:"memberId" yaml:"memberId"`

	// FullName is the name stored alongside the payment.
	// Nil when the source cell was empty.
	FullName *string `json:"fullName" yaml:"fullName"`

	// PaidAmount is the amount paid.
	PaidAmount decimal.Decimal `json:"paidAmount" yaml:"paidAmount"`
}

// JoinedRecord is a payment left-joined against the member set.
type JoinedRecord struct {
	PaymentRecord

	// ExpectedFullName is the constructed member name.
	// Nil when no member matched the payment's MemberID.
	ExpectedFullName *string `json:"expectedFullName" yaml:"expectedFullName"`
}

// CleanedRecord is the terminal output row for a valid payment.
type CleanedRecord struct {
	MemberID   string          `json:"memberId" yaml:"memberId"`
	FullName   string          `json:"fullName" yaml:"fullName"`
	PaidAmount decimal.Decimal `json:"paidAmount" yaml:"paidAmount"`
}

// Reason explains why a joined record landed in its partition.
type Reason string

const (
	// ReasonValid marks a record that passed both rules.
	ReasonValid Reason = "valid"
	// ReasonUnknownMember marks a payment whose MemberID is absent from the member set.
	ReasonUnknownMember Reason = "unknown_member"
	// ReasonNameMismatch marks a payment whose name conflicts with the member's name.
	ReasonNameMismatch Reason = "name_mismatch"
)

// Result bundles the outputs of a reconciliation run.
type Result struct {
	// Valid contains joined records that passed validation, in payment order.
	Valid []JoinedRecord `json:"valid"`

	// Invalid contains rejected joined records, unmodified, in payment order.
	Invalid []JoinedRecord `json:"invalid"`

	// Cleaned contains one output row per valid record.
	Cleaned []CleanedRecord `json:"cleaned"`
}

// RejectCounts groups the invalid partition by rejection reason.
func (r *Result) RejectCounts() map[Reason]int {
	counts := make(map[Reason]int)
	for _, rec := range r.Invalid {
		counts[Classify(rec)]++
	}
	return counts
}
