package campaign

import (
	"time"

	"leadcrm/internal/domain/lead"
)

// Campaign represents a marketing campaign tracked against one lead source
type Campaign struct {
	ID        int64       `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	Source    lead.Source `db:"source" json:"source"`
	Budget    float64     `db:"budget" json:"budget"`
	StartsAt  time.Time   `db:"starts_at" json:"starts_at"`
	EndsAt    *time.Time  `db:"ends_at" json:"ends_at,omitempty"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// Stats pairs a campaign with the leads captured during its window
type Stats struct {
	Campaign  Campaign `json:"campaign"`
	LeadCount int64    `json:"lead_count"`
}
