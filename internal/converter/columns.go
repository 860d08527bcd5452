package converter

import "strings"

// RequiredColumns are the input header names that must be present, checked in
// this order.
var RequiredColumns = []string{
	"Voornaam",
	"Naam",
	"Straat",
	"Huisnummer",
	"Mobiel nummer",
	"E-mailadres",
}

// ColumnIndex maps a trimmed header name to its zero-based column position.
type ColumnIndex map[string]int

// ResolveColumns builds a ColumnIndex from the header row. Blank headers are
// skipped; a duplicate name overwrites the earlier position (last wins).
func ResolveColumns(header []Cell) ColumnIndex {
	index := make(ColumnIndex, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cell.Canonical())
		if name != "" {
			index[name] = i
		}
	}
	return index
}

// Require reports the first name in RequiredColumns order that is absent from
// the index.
func (ci ColumnIndex) Require() error {
	for _, name := range RequiredColumns {
		if _, ok := ci[name]; !ok {
			return &MissingColumnError{Column: name}
		}
	}
	return nil
}

// Field reads the named column from a row and returns its trimmed canonical
// text. A column missing from the index or a row too short to hold it yields
// an empty string, never an error.
func (ci ColumnIndex) Field(row []Cell, name string) string {
	i, ok := ci[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i].Canonical())
}
