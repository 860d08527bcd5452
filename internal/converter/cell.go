package converter

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind classifies a decoded worksheet cell.
type CellKind int

const (
	CellText CellKind = iota
	CellNumber
	CellBool
	CellBlank
	CellOther
)

// Cell is one decoded worksheet cell. Exactly one of Text, Number or Bool is
// meaningful, selected by Kind.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

// Canonical returns the canonical text form of a cell. Text passes through
// unmodified (callers trim), integral numbers render without a decimal point,
// booleans render as "true"/"false", blank and unsupported kinds render empty.
// Total: no input produces an error.
func (c Cell) Canonical() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		if c.Number == math.Trunc(c.Number) && !math.IsInf(c.Number, 0) {
			return strconv.FormatInt(int64(c.Number), 10)
		}
		return strconv.FormatFloat(c.Number, 'g', -1, 64)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// decodeCell builds a Cell from an excelize cell type and its raw value.
// Stored booleans arrive as "1"/"0"; numbers arrive unformatted. Dates and
// error cells have no canonical text and map to CellOther.
func decodeCell(t excelize.CellType, raw string) Cell {
	switch t {
	case excelize.CellTypeBool:
		return Cell{Kind: CellBool, Bool: raw == "1" || strings.EqualFold(raw, "true")}
	case excelize.CellTypeNumber:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return Cell{Kind: CellNumber, Number: n}
		}
		return Cell{Kind: CellText, Text: raw}
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		if raw == "" {
			return Cell{Kind: CellBlank}
		}
		return Cell{Kind: CellText, Text: raw}
	case excelize.CellTypeDate, excelize.CellTypeError:
		return Cell{Kind: CellOther}
	default:
		// Writers often leave plain numeric cells untyped.
		if raw == "" {
			return Cell{Kind: CellBlank}
		}
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return Cell{Kind: CellNumber, Number: n}
		}
		return Cell{Kind: CellText, Text: raw}
	}
}
