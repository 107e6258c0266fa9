package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Spreadsheets store dates as a day count from this epoch (the 1900 date
// system, offset by two days so the fictional 1900-02-29 cancels out).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Serials outside this window are not plausible sheet dates (1 is
// 1899-12-31, 200000 is deep in the 25th century) and are rejected so
// garbage numerics degrade the field like garbage strings do.
const (
	minSerial = 1
	maxSerial = 200000
)

// Layouts tried in order for human-readable date cells. Day-first slash
// forms, matching how the sheets are filled in.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// coerceNumeric turns a numeric-looking cell into its plain string form.
// Spreadsheet exports render numbers as floats ("3001234567.0") or in
// scientific notation; plain digit strings keep their leading zeros.
func coerceNumeric(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || isDigits(v) {
		return v
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	if f != math.Trunc(f) || f < 0 {
		return v
	}
	return strconv.FormatInt(int64(f), 10)
}

func isDigits(v string) bool {
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(v) > 0
}

// parseCellTime converts a date cell into a time. Numeric cells are
// treated as spreadsheet serials, anything else goes through the layout
// list. The zero time plus an error means the cell was unparseable.
func parseCellTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}

	if f, err := strconv.ParseFloat(v, 64); err == nil {
		if f < minSerial || f >= maxSerial {
			return time.Time{}, fmt.Errorf("date serial %q out of range", v)
		}
		days := math.Trunc(f)
		frac := f - days
		t := serialEpoch.AddDate(0, 0, int(days))
		t = t.Add(time.Duration(math.Round(frac * 24 * float64(time.Hour))))
		return t, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable date value %q", v)
}

// dateOnly truncates a time to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
