package lead

// CreateLeadRequest represents manual lead intake
type CreateLeadRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`

	LeadSource string `json:"lead_source" validate:"required,oneof=Facebook Instagram Website Google Referral Walk-In Others"`
	LeadStatus string `json:"lead_status" validate:"required,oneof=Query Initiated Follow-Up Visit Won Lost Non-Potential"`
	City       string `json:"city" validate:"omitempty,oneof=Lahore Karachi Islamabad Rawalpindi Faisalabad Multan Peshawar Quetta Others"`

	AssignedUserID int64 `json:"assigned_user_id" validate:"required"`

	FollowupDate   string `json:"followup_date"` // YYYY-MM-DD
	FollowupHour   string `json:"followup_hour" validate:"omitempty,numeric"`
	FollowupMinute string `json:"followup_minute" validate:"omitempty,numeric"`
	FollowupPeriod string `json:"followup_period" validate:"omitempty,oneof=AM PM"`
}

// AssignLeadRequest represents lead re-assignment
type AssignLeadRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

// UpdateStatusRequest represents a status change
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Query Initiated Follow-Up Visit Won Lost Non-Potential"`
}

// ListResponse represents a paginated lead list
type ListResponse struct {
	Leads []Lead `json:"leads"`
	Total int64  `json:"total"`
}
