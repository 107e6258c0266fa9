package importer

// RowError describes a single failed row.
type RowError struct {
	Row    int    `json:"row"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// Report is the outcome of one import run. Every data row lands in
// exactly one bucket: accepted, skipped (duplicate) or failed.
type Report struct {
	RunID    string     `json:"run_id"`
	Total    int        `json:"total"`
	Accepted int        `json:"accepted"`
	Skipped  int        `json:"skipped"`
	Failed   []RowError `json:"failed,omitempty"`
}

func (r *Report) fail(row int, field, reason string) {
	r.Failed = append(r.Failed, RowError{Row: row, Field: field, Reason: reason})
}
