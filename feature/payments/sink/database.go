package sink

import (
	"context"
	"fmt"

	"member-reconcile/core/reconcile"
	"member-reconcile/feature/payments/models"

	"gorm.io/gorm"
)

// DefaultBatchSize is the number of rows inserted per statement.
const DefaultBatchSize = 500

// Database persists cleaned records into the cleaned_member_payments table.
type Database struct {
	db        *gorm.DB
	batchSize int
}

// NewDatabase creates a database sink.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db, batchSize: DefaultBatchSize}
}

// Migrate creates or updates the target table.
func (d *Database) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(&models.CleanedPayment{}); err != nil {
		return fmt.Errorf("failed to migrate cleaned payments table: %w", err)
	}
	return nil
}

// Save inserts the cleaned records tagged with runID. It returns the number of rows written.
func (d *Database) Save(ctx context.Context, runID string, cleaned []reconcile.CleanedRecord) (int, error) {
	if len(cleaned) == 0 {
		return 0, nil
	}

	rows := make([]models.CleanedPayment, 0, len(cleaned))
	for i, c := range cleaned {
		rows = append(rows, models.FromCleaned(runID, i, c))
	}

	if err := d.db.WithContext(ctx).CreateInBatches(&rows, d.batchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to insert cleaned payments: %w", err)
	}
	return len(rows), nil
}

// Load returns the cleaned records stored for runID in their original order.
func (d *Database) Load(ctx context.Context, runID string) ([]reconcile.CleanedRecord, error) {
	var rows []models.CleanedPayment
	err := d.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load cleaned payments: %w", err)
	}

	out := make([]reconcile.CleanedRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToCleaned())
	}
	return out, nil
}
