package campaign

import (
	"context"
	"time"

	"leadcrm/internal/domain/lead"
)

// CreateCampaignRequest represents campaign creation
type CreateCampaignRequest struct {
	Name     string  `json:"name" validate:"required"`
	Source   string  `json:"source" validate:"required,oneof=Facebook Instagram Website Google Referral Walk-In Others"`
	Budget   float64 `json:"budget" validate:"gte=0"`
	StartsAt string  `json:"starts_at" validate:"required"` // YYYY-MM-DD
	EndsAt   string  `json:"ends_at"`                       // YYYY-MM-DD, optional
}

// Service handles campaign business logic
type Service struct {
	repo *Repository
	now  func() time.Time
}

// NewService creates campaign service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create creates a campaign
func (s *Service) Create(ctx context.Context, req *CreateCampaignRequest) (*Campaign, error) {
	startsAt, err := time.Parse("2006-01-02", req.StartsAt)
	if err != nil {
		return nil, err
	}

	var endsAt *time.Time
	if req.EndsAt != "" {
		e, err := time.Parse("2006-01-02", req.EndsAt)
		if err != nil {
			return nil, err
		}
		endsAt = &e
	}

	now := s.now()
	c := &Campaign{
		Name:      req.Name,
		Source:    lead.Source(req.Source),
		Budget:    req.Budget,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns campaigns
func (s *Service) List(ctx context.Context, limit, offset int) ([]Campaign, error) {
	return s.repo.List(ctx, limit, offset)
}

// GetStats returns a campaign with its captured lead count
func (s *Service) GetStats(ctx context.Context, id int64) (*Stats, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCampaignNotFound
	}

	count, err := s.repo.CountLeads(ctx, c)
	if err != nil {
		return nil, err
	}

	return &Stats{Campaign: *c, LeadCount: count}, nil
}
