package importer

import (
	"fmt"
	"strings"

	"leadcrm/internal/pkg/validator"
)

// rowInput carries the Validation Gate rules for one sheet row. The
// oneof lists must stay in sync with the canonical enums in
// internal/domain/lead (SourceOneOf and friends).
type rowInput struct {
	Name             string `validate:"required"`
	Phone            string `validate:"required"`
	Email            string `validate:"omitempty,email"`
	LeadSource       string `validate:"required,oneof=Facebook Instagram Website Google Referral Walk-In Others"`
	LeadStatus       string `validate:"required,oneof=Query Initiated Follow-Up Visit Won Lost Non-Potential"`
	LeadActiveStatus string `validate:"required,oneof=open closed"`
	AssignedUser     string `validate:"required"`
	City             string `validate:"omitempty,oneof=Lahore Karachi Islamabad Rawalpindi Faisalabad Multan Peshawar Quetta Others"`
	FollowupPeriod   string `validate:"omitempty,oneof=AM PM"`
}

// validateRow applies the declarative field rules to one row and returns
// human-readable messages templated with the sheet row number. An empty
// result means the row may proceed to normalization and building.
func validateRow(rowNum int, row Row) []string {
	in := rowInput{
		Name:             row["name"],
		Phone:            coerceNumeric(row["phone"]),
		Email:            row["email"],
		LeadSource:       row["lead_source"],
		LeadStatus:       row["lead_status"],
		LeadActiveStatus: strings.ToLower(strings.TrimSpace(row["lead_active_status"])),
		AssignedUser:     row["assigned_user"],
		City:             row["city"],
		FollowupPeriod:   strings.ToUpper(strings.TrimSpace(row["followup_period"])),
	}

	var msgs []string
	for _, msg := range validator.Messages(&in) {
		msgs = append(msgs, fmt.Sprintf("row %d: %s", rowNum, msg))
	}
	return msgs
}
