package importer

import (
	"errors"
	"fmt"
)

var (
	ErrMissingHeader = errors.New("import file has no recognizable header row")
	ErrEmptyFile     = errors.New("import file is empty")
	ErrTooManyRows   = errors.New("import file exceeds the configured row limit")
)

// AssigneeNotFoundError aborts the run by default: a lead that cannot be
// assigned must never be dropped silently.
type AssigneeNotFoundError struct {
	Row  int
	Name string
}

func (e *AssigneeNotFoundError) Error() string {
	return fmt.Sprintf("row %d: assigned user %q not found or inactive", e.Row, e.Name)
}
