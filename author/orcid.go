package author

import (
	"regexp"
	"strings"
)

var orcidRegex = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

var orcidURLPrefixes = []string{
	"https://orcid.org/",
	"http://orcid.org/",
	"orcid.org/",
}

func trimORCIDURL(id string) string {
	for _, prefix := range orcidURLPrefixes {
		if len(id) > len(prefix) && strings.EqualFold(id[:len(prefix)], prefix) {
			return id[len(prefix):]
		}
	}
	return id
}

// ValidORCID reports whether id is a well-formed ORCID iD with a correct
// ISO 7064 MOD 11-2 check character.
func ValidORCID(id string) bool {
	if !orcidRegex.MatchString(id) {
		return false
	}
	digits := strings.ReplaceAll(id, "-", "")

	total := 0
	for _, c := range digits[:len(digits)-1] {
		total = (total + int(c-'0')) * 2
	}
	check := (12 - total%11) % 11

	want := byte('0' + check)
	if check == 10 {
		want = 'X'
	}
	return digits[len(digits)-1] == want
}
