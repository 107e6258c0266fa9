package invoice

import "time"

// Status represents invoice payment status
type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

// Invoice represents a bill raised against a won lead
type Invoice struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Number    string     `json:"number"`
	LeadID    int64      `json:"lead_id"`
	Amount    float64    `json:"amount"`
	Status    Status     `json:"status"`
	IssuedAt  time.Time  `json:"issued_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }
