package converter

// Fixed values stamped into every output record.
const (
	fixedPostcode    = "3570"
	fixedGemeente    = "Alken"
	fixedTaal        = "NL"
	fixedLand        = "BE"
	fixedRodeLijst   = "0"
	fixedTypeContact = "P"
)

// contact holds the per-row values that vary; everything else in the output
// record is constant or permanently empty.
type contact struct {
	telRef    string
	lastName  string
	firstName string
	address   string
	email     string
}

// outputSchema pairs each output header with the producer of its value, in
// the exact 33-column order the platform expects. Header emission and row
// emission both walk this list, so they cannot drift apart.
//
// Note the "Naam"/"Voornaam" labels: the platform ingests these two positions
// in the opposite order of their labels (an upstream labeling error the feed
// must reproduce), so position 3 carries the last name under the "Naam"
// header and position 4 the first name under "Voornaam".
var outputSchema = []struct {
	header string
	value  func(c contact) string
}{
	{"Tel/Ref.", func(c contact) string { return c.telRef }},
	{"Civilité", blank},
	{"Naam", func(c contact) string { return c.lastName }},
	{"Voornaam", func(c contact) string { return c.firstName }},
	{"Adres incl huisnummer", func(c contact) string { return c.address }},
	{"Bijkomend adres", blank},
	{"Postcode", constant(fixedPostcode)},
	{"Gemeente", constant(fixedGemeente)},
	{"Geboortedatum", blank},
	{"Email", func(c contact) string { return c.email }},
	{"FAX", blank},
	{"FAX2", blank},
	{"FAX3", blank},
	{"Verdieping", blank},
	{"Aantal inwoners", blank},
	{"Telefoon 2", blank},
	{"Telefoon 3", blank},
	{"Telefoon 4", blank},
	{"Telefoon 5", blank},
	{"Telefoone 6", blank},
	{"Telefoon 7", blank},
	{"SMS", blank},
	{"SMS 2", blank},
	{"SMS 3", blank},
	{"Pager", blank},
	{"Zone libre 1", blank},
	{"Zone libre 2", blank},
	{"Zone libre 3", blank},
	{"Taal", constant(fixedTaal)},
	{"Land", constant(fixedLand)},
	{"Rode lijst", constant(fixedRodeLijst)},
	{"Type Contact", constant(fixedTypeContact)},
	{"GPS coördinaten", blank},
}

func blank(contact) string { return "" }

func constant(v string) func(contact) string {
	return func(contact) string { return v }
}

// OutputHeader returns the fixed 33-column header row.
func OutputHeader() []string {
	header := make([]string, len(outputSchema))
	for i, col := range outputSchema {
		header[i] = col.header
	}
	return header
}

// MapRow turns one input data row into one 33-field output record. Every
// transform is total over arbitrary text, so this cannot fail; absent source
// cells propagate as empty strings.
func MapRow(index ColumnIndex, row []Cell) []string {
	street := index.Field(row, "Straat")
	houseNumber := ExtractHouseNumber(index.Field(row, "Huisnummer"))

	c := contact{
		telRef:    NormalizePhone(index.Field(row, "Mobiel nummer")),
		lastName:  index.Field(row, "Naam"),
		firstName: index.Field(row, "Voornaam"),
		address:   ComposeAddress(street, houseNumber),
		email:     index.Field(row, "E-mailadres"),
	}

	record := make([]string, len(outputSchema))
	for i, col := range outputSchema {
		record[i] = col.value(c)
	}
	return record
}
