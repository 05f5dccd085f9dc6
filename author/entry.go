// Package author holds the author and affiliation registry behind an MNRAS
// author block: it deduplicates affiliations into a stable 1-based numbering,
// keeps authors in entry order and renders the LaTeX markup.
package author

// Entry is one author as read from the input table.
type Entry struct {
	// Name is the author's display name (required)
	Name string

	// Affiliations in the order the author listed them
	Affiliations []string

	// Notes are rendered as \thanks{} footnotes
	Notes []string

	// Email is optional; missing emails produce a warning
	Email string

	// ORCID is a bare iD or an https://orcid.org/ URL
	ORCID string
}

// Author is a registered author as exposed by Registry.Authors.
type Author struct {
	Name         string
	Affiliations []int
	Notes        []string
	Email        string
	ORCID        string
}

// WarningKind identifies a non-fatal input problem.
type WarningKind string

const (
	WarningMissingAffiliation WarningKind = "missing_affiliation"
	WarningMissingEmail       WarningKind = "missing_email"
	WarningInvalidORCID       WarningKind = "invalid_orcid"
)

// Warning records a non-fatal problem found while adding an author.
type Warning struct {
	Kind   WarningKind
	Author string
	Detail string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Detail == "" {
		return string(w.Kind) + ": " + w.Author
	}
	return string(w.Kind) + ": " + w.Author + " (" + w.Detail + ")"
}
