package models

import (
	"time"

	"member-reconcile/core/reconcile"

	"github.com/shopspring/decimal"
)

// CleanedPayment is the database row for a cleaned record.
type CleanedPayment struct {
	ID         uint            `gorm:"column:id;primaryKey;autoIncrement"`
	RunID      string          `gorm:"column:run_id;size:36;index"`
	Position   int             `gorm:"column:position"`
	MemberID   string          `gorm:"column:member_id;size:64;index"`
	FullName   string          `gorm:"column:full_name;size:255"`
	PaidAmount decimal.Decimal `gorm:"column:paid_amount;type:decimal(38,18)"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (CleanedPayment) TableName() string {
	return "cleaned_member_payments"
}

// FromCleaned converts a cleaned record into a row for the given run.
func FromCleaned(runID string, position int, c reconcile.CleanedRecord) CleanedPayment {
	return CleanedPayment{
		RunID:      runID,
		Position:   position,
		MemberID:   c.MemberID,
		FullName:   c.FullName,
		PaidAmount: c.PaidAmount,
	}
}

// ToCleaned converts the row back into a cleaned record.
func (p CleanedPayment) ToCleaned() reconcile.CleanedRecord {
	return reconcile.CleanedRecord{
		MemberID:   p.MemberID,
		FullName:   p.FullName,
		PaidAmount: p.PaidAmount,
	}
}
