package lead

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles lead data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates lead repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new lead
func (r *Repository) Create(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// GetByID retrieves lead by ID, nil when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*Lead, error) {
	var l Lead
	err := r.db.WithContext(ctx).First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ExistsByPhoneOrEmail reports whether any lead matches the phone or email.
// This is the duplicate check the import pipeline runs per row.
func (r *Repository) ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Lead{}).
		Where("phone = ? OR email = ?", phone, email).
		Count(&count).Error
	return count > 0, err
}

// Filters narrows List results; zero values are ignored.
type Filters struct {
	Status         Status
	Source         Source
	AssignedUserID int64
	ActiveOnly     bool
}

// List returns leads with optional filters, newest first
func (r *Repository) List(ctx context.Context, f Filters, limit, offset int) ([]Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&Lead{})

	if f.Status != "" {
		q = q.Where("lead_status = ?", f.Status)
	}
	if f.Source != "" {
		q = q.Where("lead_source = ?", f.Source)
	}
	if f.AssignedUserID != 0 {
		q = q.Where("assigned_user_id = ?", f.AssignedUserID)
	}
	if f.ActiveOnly {
		q = q.Where("lead_active_status = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []Lead
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	return leads, total, err
}

// Assign moves a lead to another user and stamps assigned_at
func (r *Repository) Assign(ctx context.Context, id, userID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Lead{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"assigned_user_id": userID,
			"assigned_at":      at,
			"updated_at":       at,
		}).Error
}

// UpdateStatus updates lead status along with the derived lifecycle fields
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status, active bool, closedAt, wonAt *time.Time, at time.Time) error {
	updates := map[string]interface{}{
		"lead_status":        status,
		"lead_active_status": active,
		"updated_at":         at,
	}
	if closedAt != nil {
		updates["closed_at"] = *closedAt
	}
	if wonAt != nil {
		updates["won_at"] = *wonAt
	}

	return r.db.WithContext(ctx).
		Model(&Lead{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// CountByStatus returns lead counts grouped by status
func (r *Repository) CountByStatus(ctx context.Context) (map[Status]int64, error) {
	type row struct {
		LeadStatus Status
		Count      int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&Lead{}).
		Select("lead_status, COUNT(*) as count").
		Group("lead_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[Status]int64, len(rows))
	for _, r := range rows {
		counts[r.LeadStatus] = r.Count
	}
	return counts, nil
}
