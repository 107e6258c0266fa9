package lead

import (
	"strings"
	"time"
)

// Source represents where a lead came from
type Source string

const (
	SourceFacebook  Source = "Facebook"
	SourceInstagram Source = "Instagram"
	SourceWebsite   Source = "Website"
	SourceGoogle    Source = "Google"
	SourceReferral  Source = "Referral"
	SourceWalkIn    Source = "Walk-In"
	SourceOthers    Source = "Others"
)

// Status represents lead status
type Status string

const (
	StatusQuery        Status = "Query"
	StatusInitiated    Status = "Initiated"
	StatusFollowUp     Status = "Follow-Up"
	StatusVisit        Status = "Visit"
	StatusWon          Status = "Won"
	StatusLost         Status = "Lost"
	StatusNonPotential Status = "Non-Potential"
)

// Period represents the AM/PM half of a follow-up time
type Period string

const (
	PeriodAM Period = "AM"
	PeriodPM Period = "PM"
)

// City is the canonical city list; anything outside it falls back to CityOthers.
type City string

const (
	CityLahore     City = "Lahore"
	CityKarachi    City = "Karachi"
	CityIslamabad  City = "Islamabad"
	CityRawalpindi City = "Rawalpindi"
	CityFaisalabad City = "Faisalabad"
	CityMultan     City = "Multan"
	CityPeshawar   City = "Peshawar"
	CityQuetta     City = "Quetta"
	CityOthers     City = "Others"
)

// Canonical value lists. These are the single source of truth for enum
// validation; keep the oneof strings below in sync with them.
var (
	Sources  = []Source{SourceFacebook, SourceInstagram, SourceWebsite, SourceGoogle, SourceReferral, SourceWalkIn, SourceOthers}
	Statuses = []Status{StatusQuery, StatusInitiated, StatusFollowUp, StatusVisit, StatusWon, StatusLost, StatusNonPotential}
	Cities   = []City{CityLahore, CityKarachi, CityIslamabad, CityRawalpindi, CityFaisalabad, CityMultan, CityPeshawar, CityQuetta, CityOthers}
)

// Space-separated lists for validator/v10 oneof tags.
const (
	SourceOneOf = "Facebook Instagram Website Google Referral Walk-In Others"
	StatusOneOf = "Query Initiated Follow-Up Visit Won Lost Non-Potential"
	CityOneOf   = "Lahore Karachi Islamabad Rawalpindi Faisalabad Multan Peshawar Quetta Others"
	PeriodOneOf = "AM PM"
)

// IsClosed reports whether the status closes a lead.
func (s Status) IsClosed() bool {
	return s == StatusLost || s == StatusNonPotential
}

func ValidSource(v string) bool {
	for _, s := range Sources {
		if string(s) == v {
			return true
		}
	}
	return false
}

func ValidStatus(v string) bool {
	for _, s := range Statuses {
		if string(s) == v {
			return true
		}
	}
	return false
}

func ValidCity(v string) bool {
	for _, c := range Cities {
		if string(c) == v {
			return true
		}
	}
	return false
}

// ParseActiveStatus maps the textual open/closed flag onto a bool.
// The second return value is false for anything that is neither.
func ParseActiveStatus(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "open":
		return true, true
	case "closed":
		return false, true
	}
	return false, false
}

// Lead represents a prospective customer record
type Lead struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	LeadSource Source `json:"lead_source"`
	LeadStatus Status `json:"lead_status"`
	City       City   `json:"city"`

	AssignedUserID int64 `json:"assigned_user_id"`

	FollowupDate   *time.Time `json:"followup_date,omitempty"`
	FollowupHour   string     `json:"followup_hour,omitempty"`
	FollowupMinute string     `json:"followup_minute,omitempty"`
	FollowupPeriod Period     `json:"followup_period,omitempty"`

	LeadActiveStatus   bool `json:"lead_active_status"`
	NotificationStatus bool `json:"notification_status"`

	AssignedAt time.Time  `json:"assigned_at"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
	WonAt      *time.Time `json:"won_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// PlaceholderEmail derives the synthesized email for a lead without one.
func PlaceholderEmail(phone, domain string) string {
	return phone + "@" + domain
}
