package lead

import (
	"context"
	"time"

	"leadcrm/internal/domain/user"
)

// Store defines the lead persistence the service needs.
type Store interface {
	Create(ctx context.Context, l *Lead) error
	GetByID(ctx context.Context, id int64) (*Lead, error)
	ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error)
	List(ctx context.Context, f Filters, limit, offset int) ([]Lead, int64, error)
	Assign(ctx context.Context, id, userID int64, at time.Time) error
	UpdateStatus(ctx context.Context, id int64, status Status, active bool, closedAt, wonAt *time.Time, at time.Time) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

// UserDirectory resolves assignees.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// Service handles lead business logic
type Service struct {
	store       Store
	users       UserDirectory
	placeholder string // email domain for phone-derived addresses
	now         func() time.Time
}

// NewService creates lead service
func NewService(store Store, users UserDirectory, placeholderDomain string) *Service {
	return &Service{
		store:       store,
		users:       users,
		placeholder: placeholderDomain,
		now:         time.Now,
	}
}

// CreateLead creates a lead from manual intake.
// Defaults mirror the bulk-import record builder: city falls back to
// Others, a missing email is synthesized from the phone, and closure
// timestamps are derived from the status.
func (s *Service) CreateLead(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	email := req.Email
	if email == "" {
		email = PlaceholderEmail(req.Phone, s.placeholder)
	}

	exists, err := s.store.ExistsByPhoneOrEmail(ctx, req.Phone, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateLead
	}

	assignee, err := s.users.GetByID(ctx, req.AssignedUserID)
	if err != nil {
		return nil, err
	}
	if assignee == nil || !assignee.Active {
		return nil, ErrAssigneeInactive
	}

	now := s.now()
	status := Status(req.LeadStatus)

	city := City(req.City)
	if city == "" {
		city = CityOthers
	}

	l := &Lead{
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              email,
		LeadSource:         Source(req.LeadSource),
		LeadStatus:         status,
		City:               city,
		AssignedUserID:     assignee.ID,
		FollowupHour:       req.FollowupHour,
		FollowupMinute:     req.FollowupMinute,
		FollowupPeriod:     Period(req.FollowupPeriod),
		LeadActiveStatus:   !status.IsClosed(),
		NotificationStatus: true,
		AssignedAt:         now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if req.FollowupDate != "" {
		if d, err := time.Parse("2006-01-02", req.FollowupDate); err == nil {
			l.FollowupDate = &d
		}
	}

	if status.IsClosed() {
		l.ClosedAt = &now
	}
	if status == StatusWon {
		l.WonAt = &now
	}

	if err := s.store.Create(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// GetByID returns lead by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Lead, error) {
	l, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

// List returns leads with optional filters
func (s *Service) List(ctx context.Context, f Filters, limit, offset int) ([]Lead, int64, error) {
	return s.store.List(ctx, f, limit, offset)
}

// Assign re-assigns a lead to an active user
func (s *Service) Assign(ctx context.Context, id, userID int64) error {
	l, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrLeadNotFound
	}

	assignee, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if assignee == nil || !assignee.Active {
		return ErrAssigneeInactive
	}

	return s.store.Assign(ctx, id, userID, s.now())
}

// UpdateStatus changes a lead's status and derives the lifecycle fields:
// Lost and Non-Potential close the lead and stamp closed_at, Won stamps
// won_at. Interactive status changes stamp won_at; the bulk import
// deliberately does not (it only takes won_at from an explicit column).
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) error {
	l, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrLeadNotFound
	}

	now := s.now()

	var closedAt, wonAt *time.Time
	if status.IsClosed() {
		closedAt = &now
	}
	if status == StatusWon {
		wonAt = &now
	}

	return s.store.UpdateStatus(ctx, id, status, !status.IsClosed(), closedAt, wonAt, now)
}

// Stats returns lead counts by status
func (s *Service) Stats(ctx context.Context) (map[Status]int64, error) {
	return s.store.CountByStatus(ctx)
}
