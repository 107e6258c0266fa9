package campaign

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Repository handles campaign data access
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates campaign repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new campaign and populates its ID. RETURNING works on
// both sqlite and postgres; LastInsertId does not exist on the pgx driver.
func (r *Repository) Create(ctx context.Context, c *Campaign) error {
	query := r.db.Rebind(`
		INSERT INTO campaigns (name, source, budget, starts_at, ends_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	return r.db.QueryRowContext(ctx, query,
		c.Name, c.Source, c.Budget, c.StartsAt, c.EndsAt, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

// GetByID retrieves campaign by ID, nil when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*Campaign, error) {
	var c Campaign
	query := r.db.Rebind(`SELECT * FROM campaigns WHERE id = ?`)
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns campaigns newest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Campaign, error) {
	var campaigns []Campaign
	query := r.db.Rebind(`SELECT * FROM campaigns ORDER BY starts_at DESC LIMIT ? OFFSET ?`)
	err := r.db.SelectContext(ctx, &campaigns, query, limit, offset)
	return campaigns, err
}

// CountLeads counts leads from the campaign's source created inside its
// window. Open-ended campaigns count everything since the start.
func (r *Repository) CountLeads(ctx context.Context, c *Campaign) (int64, error) {
	var count int64
	if c.EndsAt != nil {
		query := r.db.Rebind(`
			SELECT COUNT(*) FROM leads
			WHERE lead_source = ? AND created_at >= ? AND created_at < ?
		`)
		err := r.db.GetContext(ctx, &count, query, c.Source, c.StartsAt, *c.EndsAt)
		return count, err
	}

	query := r.db.Rebind(`
		SELECT COUNT(*) FROM leads
		WHERE lead_source = ? AND created_at >= ?
	`)
	err := r.db.GetContext(ctx, &count, query, c.Source, c.StartsAt)
	return count, err
}
