package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textRow(values ...string) []Cell {
	row := make([]Cell, len(values))
	for i, v := range values {
		if v == "" {
			row[i] = Cell{Kind: CellBlank}
		} else {
			row[i] = Cell{Kind: CellText, Text: v}
		}
	}
	return row
}

func TestResolveColumns(t *testing.T) {
	t.Run("Trims names and skips blanks", func(t *testing.T) {
		index := ResolveColumns(textRow(" Voornaam ", "", "Naam"))

		assert.Equal(t, ColumnIndex{"Voornaam": 0, "Naam": 2}, index)
	})

	t.Run("Duplicate name keeps the last position", func(t *testing.T) {
		index := ResolveColumns(textRow("Naam", "Straat", "Naam"))

		assert.Equal(t, 2, index["Naam"])
	})

	t.Run("Numeric header cell resolves by canonical text", func(t *testing.T) {
		index := ResolveColumns([]Cell{{Kind: CellNumber, Number: 2024}})

		assert.Equal(t, ColumnIndex{"2024": 0}, index)
	})
}

func TestRequire(t *testing.T) {
	t.Run("All present", func(t *testing.T) {
		index := ResolveColumns(textRow(
			"Voornaam", "Naam", "Straat", "Huisnummer", "Mobiel nummer", "E-mailadres",
		))

		assert.NoError(t, index.Require())
	})

	t.Run("Reports first missing column in declaration order", func(t *testing.T) {
		// Both Naam and Mobiel nummer are missing; Naam is declared first.
		index := ResolveColumns(textRow("Voornaam", "Straat", "Huisnummer", "E-mailadres"))

		err := index.Require()
		var missing *MissingColumnError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Naam", missing.Column)
		assert.Equal(t, "missing required column: Naam", err.Error())
	})
}

func TestField(t *testing.T) {
	index := ColumnIndex{"Voornaam": 0, "Naam": 1, "Straat": 5}
	row := textRow("  Jan  ", "Peeters")

	t.Run("Trims the canonical value", func(t *testing.T) {
		assert.Equal(t, "Jan", index.Field(row, "Voornaam"))
	})

	t.Run("Unknown column yields empty string", func(t *testing.T) {
		assert.Equal(t, "", index.Field(row, "Huisnummer"))
	})

	t.Run("Row shorter than resolved position yields empty string", func(t *testing.T) {
		assert.Equal(t, "", index.Field(row, "Straat"))
	})
}

func TestRequiredColumnsMissingIsTyped(t *testing.T) {
	err := ColumnIndex{}.Require()

	var missing *MissingColumnError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, RequiredColumns[0], missing.Column)
}
