package importer

import (
	"errors"
	"strings"
	"testing"
)

func TestReadRows_HeaderMapping(t *testing.T) {
	csv := "Name,Phone,Lead Source,Lead Status,Lead Active Status,Assigned User,Notes\n" +
		"Ali Khan,03001234567,Facebook,Query,open,Sara Ahmed,call after 6\n"

	rows, err := ReadRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRows returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row["name"] != "Ali Khan" {
		t.Errorf("name = %q", row["name"])
	}
	if row["lead_source"] != "Facebook" {
		t.Errorf("lead_source = %q", row["lead_source"])
	}
	if _, ok := row["notes"]; ok {
		t.Error("unknown column should be ignored")
	}
}

func TestReadRows_MissingPhoneHeader(t *testing.T) {
	csv := "name,email\nAli Khan,ali@example.com\n"
	if _, err := ReadRows(strings.NewReader(csv)); !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("expected ErrMissingHeader, got %v", err)
	}
}

func TestReadRows_EmptyFile(t *testing.T) {
	if _, err := ReadRows(strings.NewReader("")); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}

func TestReadRows_BlankLinesSkipped(t *testing.T) {
	csv := "name,phone\nAli Khan,03001234567\n,,\n  , \nZara Shah,03007654321\n"
	rows, err := ReadRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRows returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestReadRows_ShortRecordTolerated(t *testing.T) {
	csv := "name,phone,email\nAli Khan,03001234567\n"
	rows, err := ReadRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRows returned error: %v", err)
	}
	if rows[0]["email"] != "" {
		t.Errorf("missing trailing cell should be empty, got %q", rows[0]["email"])
	}
}
