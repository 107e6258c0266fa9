package user

import "time"

// Role represents a CRM account role
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleConsultant Role = "consultant"
)

// User represents a CRM account eligible for lead assignment when active
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
