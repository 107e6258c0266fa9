package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"leadcrm/internal/domain/lead"
)

// CreateInvoiceRequest represents invoice creation
type CreateInvoiceRequest struct {
	LeadID int64   `json:"lead_id" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// LeadStore supplies the lead lookup needed to gate invoicing.
type LeadStore interface {
	GetByID(ctx context.Context, id int64) (*lead.Lead, error)
}

// Store defines the invoice persistence the service needs.
type Store interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id int64) (*Invoice, error)
	List(ctx context.Context, status Status, limit, offset int) ([]Invoice, error)
	MarkPaid(ctx context.Context, id int64, at time.Time) error
}

// Service handles invoice business logic
type Service struct {
	store Store
	leads LeadStore
	now   func() time.Time
}

// NewService creates invoice service
func NewService(store Store, leads LeadStore) *Service {
	return &Service{store: store, leads: leads, now: time.Now}
}

// Create raises an invoice against a won lead
func (s *Service) Create(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error) {
	l, err := s.leads.GetByID(ctx, req.LeadID)
	if err != nil {
		return nil, err
	}
	if l == nil || l.LeadStatus != lead.StatusWon {
		return nil, ErrLeadNotWon
	}

	now := s.now()
	inv := &Invoice{
		Number:    "INV-" + uuid.NewString()[:8],
		LeadID:    req.LeadID,
		Amount:    req.Amount,
		Status:    StatusUnpaid,
		IssuedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// List returns invoices
func (s *Service) List(ctx context.Context, status Status, limit, offset int) ([]Invoice, error) {
	return s.store.List(ctx, status, limit, offset)
}

// MarkPaid settles an invoice
func (s *Service) MarkPaid(ctx context.Context, id int64) error {
	inv, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return ErrInvoiceNotFound
	}
	if inv.Status == StatusPaid {
		return ErrAlreadyPaid
	}

	return s.store.MarkPaid(ctx, id, s.now())
}
