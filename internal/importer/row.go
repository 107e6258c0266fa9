package importer

import (
	"encoding/csv"
	"io"
	"strings"
)

// Row is one spreadsheet line mapped from the header row onto canonical
// column names. Values are raw cell text; normalization happens later.
type Row map[string]string

// Canonical column names recognized in the header row. Unknown columns
// are ignored.
var columns = map[string]bool{
	"name":               true,
	"phone":              true,
	"email":              true,
	"lead_source":        true,
	"lead_status":        true,
	"lead_active_status": true,
	"assigned_user":      true,
	"city":               true,
	"followup_date":      true,
	"followup_hour":      true,
	"followup_minute":    true,
	"followup_period":    true,
	"won_at":             true,
	"closed_at":          true,
}

// ReadRows parses a CSV stream into header-mapped rows. The first record
// must be a header naming at least the name and phone columns.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, err
	}

	// index in the record -> canonical column name
	mapping := make(map[int]string, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		name = strings.ReplaceAll(name, " ", "_")
		if columns[name] {
			mapping[i] = name
		}
	}
	if _, ok := hasColumn(mapping, "name"); !ok {
		return nil, ErrMissingHeader
	}
	if _, ok := hasColumn(mapping, "phone"); !ok {
		return nil, ErrMissingHeader
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(record) {
			continue
		}

		row := make(Row, len(mapping))
		for i, name := range mapping {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func hasColumn(mapping map[int]string, name string) (int, bool) {
	for i, n := range mapping {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
