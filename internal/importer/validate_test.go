package importer

import (
	"strings"
	"testing"
)

func validRow() Row {
	return Row{
		"name":               "Ali Khan",
		"phone":              "03001234567",
		"lead_source":        "Facebook",
		"lead_status":        "Query",
		"lead_active_status": "open",
		"assigned_user":      "Sara Ahmed",
	}
}

func TestValidateRow_ValidRowPasses(t *testing.T) {
	if msgs := validateRow(2, validRow()); msgs != nil {
		t.Fatalf("expected no messages, got %v", msgs)
	}
}

func TestValidateRow_MissingRequiredFields(t *testing.T) {
	row := validRow()
	delete(row, "name")
	delete(row, "phone")

	msgs := validateRow(4, row)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %v", msgs)
	}

	joined := strings.Join(msgs, "; ")
	if !strings.Contains(joined, "row 4: name is required") {
		t.Errorf("missing name message, got %q", joined)
	}
	if !strings.Contains(joined, "row 4: phone is required") {
		t.Errorf("missing phone message, got %q", joined)
	}
}

func TestValidateRow_BadStatusListsAllowedValues(t *testing.T) {
	row := validRow()
	row["lead_status"] = "Maybe"

	msgs := validateRow(3, row)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", msgs)
	}
	if !strings.Contains(msgs[0], "row 3:") || !strings.Contains(msgs[0], "Non-Potential") {
		t.Fatalf("message should carry the row and allowed values, got %q", msgs[0])
	}
}

func TestValidateRow_ActiveStatusCaseInsensitive(t *testing.T) {
	row := validRow()
	row["lead_active_status"] = "  CLOSED "
	if msgs := validateRow(2, row); msgs != nil {
		t.Fatalf("expected no messages, got %v", msgs)
	}

	row["lead_active_status"] = "ajar"
	if msgs := validateRow(2, row); len(msgs) != 1 {
		t.Fatalf("expected rejection for %q", row["lead_active_status"])
	}
}

func TestValidateRow_OptionalFields(t *testing.T) {
	row := validRow()
	row["email"] = "not-an-email"
	if msgs := validateRow(2, row); len(msgs) != 1 {
		t.Fatalf("expected invalid email rejection, got %v", msgs)
	}

	row = validRow()
	row["city"] = "Atlantis"
	if msgs := validateRow(2, row); len(msgs) != 1 {
		t.Fatalf("expected invalid city rejection, got %v", msgs)
	}

	row = validRow()
	row["followup_period"] = "pm" // normalized before validation
	if msgs := validateRow(2, row); msgs != nil {
		t.Fatalf("expected lowercase period to pass, got %v", msgs)
	}
}

func TestValidateRow_NumericLookingPhoneAccepted(t *testing.T) {
	row := validRow()
	row["phone"] = "3001234567.0"
	if msgs := validateRow(2, row); msgs != nil {
		t.Fatalf("expected coerced numeric phone to pass, got %v", msgs)
	}
}
