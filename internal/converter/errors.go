package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSheet is returned when the workbook contains no worksheet.
	ErrNoSheet = errors.New("no sheet found in workbook")

	// ErrEmptyHeader is returned when the first worksheet has no header row.
	ErrEmptyHeader = errors.New("empty sheet (no header row)")
)

// MissingColumnError reports a required input column absent from the header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Column)
}
