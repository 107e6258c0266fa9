package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Name       string  `validate:"required"`
	Email      string  `validate:"omitempty,email"`
	LeadSource string  `validate:"required,oneof=Facebook Instagram Website"`
	Amount     float64 `validate:"gt=0"`
}

func TestValidateReadableMessages(t *testing.T) {
	errs := Validate(&sampleInput{Email: "nope", LeadSource: "Fax", Amount: -1})

	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "lead_source must be one of: Facebook, Instagram, Website", errs["lead_source"])
	assert.Equal(t, "amount must be greater than 0", errs["amount"])
}

func TestValidatePasses(t *testing.T) {
	assert.Nil(t, Validate(&sampleInput{Name: "Ali", LeadSource: "Facebook", Amount: 5}))
}

func TestMessagesDeclarationOrder(t *testing.T) {
	msgs := Messages(&sampleInput{LeadSource: "Fax", Amount: -1})

	assert.Equal(t, []string{
		"name is required",
		"lead_source must be one of: Facebook, Instagram, Website",
		"amount must be greater than 0",
	}, msgs)
}

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"Name":           "name",
		"LeadSource":     "lead_source",
		"AssignedUserID": "assigned_user_id",
		"FollowupPeriod": "followup_period",
	}
	for in, want := range cases {
		assert.Equal(t, want, toSnake(in), in)
	}
}
