package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles user data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates user repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user
func (r *Repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// GetByID retrieves user by ID, nil when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindActiveByName resolves an active user by exact name match, nil when
// absent. Inactive accounts are excluded by the query, not filtered after
// the fact. On duplicate names the first row wins.
func (r *Repository) FindActiveByName(ctx context.Context, name string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Where("name = ? AND active = ?", name, true).
		Limit(1).
		Find(&u).Error
	if err != nil {
		return nil, err
	}
	if u.ID == 0 {
		return nil, nil
	}
	return &u, nil
}

// ListActive returns all active users
func (r *Repository) ListActive(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}
