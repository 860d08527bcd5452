package converter

import "strings"

// ExtractHouseNumber keeps only the leading digits of a house-number field:
// "11A" -> "11", "12 Bus 3" -> "12", "A12" -> "". The scan stops at the first
// non-digit; digits later in the string are never picked up.
func ExtractHouseNumber(raw string) string {
	trimmed := strings.TrimSpace(raw)
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	return trimmed[:end]
}

// NormalizePhone rewrites a Belgian phone number to the 0032 form expected by
// the alerting platform. Punctuation, spaces and letters are stripped first
// (digits and '+' survive), then the first matching rule applies:
//
//	"+32..." -> "0032" + rest
//	"0..."   -> "0032" + rest after the single leading zero
//	"4..."   -> "0032" + the whole string (source dropped the leading zero)
//	anything else passes through unchanged
//
// Pure string transform; digit counts are not validated.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	s := b.String()

	switch {
	case s == "":
		return ""
	case strings.HasPrefix(s, "+32"):
		return "0032" + s[3:]
	case strings.HasPrefix(s, "0"):
		return "0032" + s[1:]
	case strings.HasPrefix(s, "4"):
		return "0032" + s
	default:
		return s
	}
}

// ComposeAddress joins a street name and house number with a single space.
// An empty house number leaves just the trimmed street, no dangling space.
func ComposeAddress(street, houseNumber string) string {
	return strings.TrimSpace(street + " " + houseNumber)
}
