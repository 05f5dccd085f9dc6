package author

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode canonical composition form (NFC) with
// leading and trailing whitespace removed. Names and affiliations are
// compared only after normalization.
func Normalize(s string) string {
	return normalizeForm(norm.NFC, s)
}

func normalizeForm(form norm.Form, s string) string {
	// Trim both sides of the composition: NFKC can turn compatibility
	// spaces into plain ones.
	return strings.TrimSpace(form.String(strings.TrimSpace(s)))
}

// ParseForm maps a profile setting ("nfc", "nfkc") to a normalization form.
func ParseForm(name string) (norm.Form, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "nfc":
		return norm.NFC, true
	case "nfkc":
		return norm.NFKC, true
	default:
		return norm.NFC, false
	}
}
