package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputHeader(t *testing.T) {
	header := OutputHeader()

	require.Len(t, header, 33)
	assert.Equal(t, "Tel/Ref.", header[0])
	assert.Equal(t, "Naam", header[2])
	assert.Equal(t, "Voornaam", header[3])
	assert.Equal(t, "Adres incl huisnummer", header[4])
	assert.Equal(t, "Type Contact", header[31])
	assert.Equal(t, "GPS coördinaten", header[32])
}

func TestMapRow(t *testing.T) {
	index := ResolveColumns(textRow(
		"Voornaam", "Naam", "Straat", "Huisnummer", "Mobiel nummer", "E-mailadres",
	))
	row := textRow(
		"Jan", "Peeters", "Dorpsstraat", "12 Bus 3", "0470 12 34 56", "jan@example.com",
	)

	record := MapRow(index, row)

	require.Len(t, record, 33)

	assert.Equal(t, "0032470123456", record[0], "Tel/Ref.")
	assert.Equal(t, "Peeters", record[2], "position 3 carries the last name")
	assert.Equal(t, "Jan", record[3], "position 4 carries the first name")
	assert.Equal(t, "Dorpsstraat 12", record[4], "Adres incl huisnummer")
	assert.Equal(t, "3570", record[6], "Postcode")
	assert.Equal(t, "Alken", record[7], "Gemeente")
	assert.Equal(t, "jan@example.com", record[9], "Email")
	assert.Equal(t, "NL", record[28], "Taal")
	assert.Equal(t, "BE", record[29], "Land")
	assert.Equal(t, "0", record[30], "Rode lijst")
	assert.Equal(t, "P", record[31], "Type Contact")

	// Everything else stays permanently empty.
	for _, i := range []int{1, 5, 8, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 32} {
		assert.Emptyf(t, record[i], "column %d (%s)", i, OutputHeader()[i])
	}
}

func TestMapRowEmptyHouseNumber(t *testing.T) {
	index := ResolveColumns(textRow(
		"Voornaam", "Naam", "Straat", "Huisnummer", "Mobiel nummer", "E-mailadres",
	))
	row := textRow("Jan", "Peeters", "Dorpsstraat", "Onbekend", "", "")

	record := MapRow(index, row)

	assert.Equal(t, "Dorpsstraat", record[4], "no trailing space after street")
	assert.Equal(t, "", record[0], "empty phone stays empty")
}

func TestMapRowShortRow(t *testing.T) {
	index := ResolveColumns(textRow(
		"Voornaam", "Naam", "Straat", "Huisnummer", "Mobiel nummer", "E-mailadres",
	))

	// Trailing blank cells are often dropped entirely by the decoder.
	record := MapRow(index, textRow("Jan"))

	require.Len(t, record, 33)
	assert.Equal(t, "Jan", record[3])
	assert.Equal(t, "", record[2])
	assert.Equal(t, "", record[4])
	assert.Equal(t, "3570", record[6], "constants are stamped regardless of input")
}
