package invoice

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles invoice data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates invoice repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new invoice
func (r *Repository) Create(ctx context.Context, inv *Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

// GetByID retrieves invoice by ID, nil when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	var inv Invoice
	err := r.db.WithContext(ctx).First(&inv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// List returns invoices newest first, optionally filtered by status
func (r *Repository) List(ctx context.Context, status Status, limit, offset int) ([]Invoice, error) {
	q := r.db.WithContext(ctx).Model(&Invoice{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var invoices []Invoice
	err := q.Order("issued_at DESC").Limit(limit).Offset(offset).Find(&invoices).Error
	return invoices, err
}

// MarkPaid stamps an invoice as paid
func (r *Repository) MarkPaid(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     StatusPaid,
			"paid_at":    at,
			"updated_at": at,
		}).Error
}
