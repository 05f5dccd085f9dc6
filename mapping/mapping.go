// Package mapping provides column-mapping profiles that tell the CSV reader
// which headers hold author data and supply rendering defaults.
package mapping

import (
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/authorblock/author"
)

const (
	// DefaultMaxAffiliationColumns is the number of affiliation columns read per row.
	DefaultMaxAffiliationColumns = 4

	// DefaultMaxNoteColumns is the number of note columns read per row.
	DefaultMaxNoteColumns = 1

	// indexPlaceholder marks where the column number goes in numbered columns.
	indexPlaceholder = "{n}"
)

// Profile is a named mapping configuration for an author table.
type Profile struct {
	// Name is the profile identifier
	Name string `yaml:"name" json:"name"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Columns maps author fields to CSV header names
	Columns Columns `yaml:"columns" json:"columns"`

	// Options contains reader and renderer defaults
	Options ProfileOptions `yaml:"options,omitempty" json:"options,omitempty"`
}

// Columns holds the header names for each author field. Header matching is
// case-insensitive. Affiliation and Note are patterns where "{n}" is
// replaced by the 1-based column number; without a placeholder the number
// is appended after a space.
type Columns struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Affiliation string `yaml:"affiliation,omitempty" json:"affiliation,omitempty"`
	Note        string `yaml:"note,omitempty" json:"note,omitempty"`
	Email       string `yaml:"email,omitempty" json:"email,omitempty"`
	ORCID       string `yaml:"orcid,omitempty" json:"orcid,omitempty"`
}

// ProfileOptions contains reader and renderer defaults.
type ProfileOptions struct {
	// MaxAffiliationColumns is how many numbered affiliation columns to read;
	// unset means DefaultMaxAffiliationColumns, 0 reads none
	MaxAffiliationColumns *int `yaml:"max_affiliation_columns,omitempty" json:"max_affiliation_columns,omitempty"`

	// MaxNoteColumns is how many numbered note columns to read;
	// unset means DefaultMaxNoteColumns, 0 reads none
	MaxNoteColumns *int `yaml:"max_note_columns,omitempty" json:"max_note_columns,omitempty"`

	// WithORCID enables ORCID badges by default
	WithORCID *bool `yaml:"with_orcid,omitempty" json:"with_orcid,omitempty"`

	// ORCIDLogo is the graphics file used in ORCID badges
	ORCIDLogo string `yaml:"orcid_logo,omitempty" json:"orcid_logo,omitempty"`

	// Normalization is the Unicode form used for comparisons ("nfc" or "nfkc")
	Normalization string `yaml:"normalization,omitempty" json:"normalization,omitempty"`
}

// DefaultColumns returns the header names used when a profile leaves them blank.
func DefaultColumns() Columns {
	return Columns{
		Name:        "name",
		Affiliation: "affiliation {n}",
		Note:        "note {n}",
		Email:       "email",
		ORCID:       "orcid",
	}
}

// ResolvedColumns returns the profile's columns with defaults filled in.
// A nil profile yields DefaultColumns.
func (p *Profile) ResolvedColumns() Columns {
	cols := DefaultColumns()
	if p == nil {
		return cols
	}
	if p.Columns.Name != "" {
		cols.Name = p.Columns.Name
	}
	if p.Columns.Affiliation != "" {
		cols.Affiliation = p.Columns.Affiliation
	}
	if p.Columns.Note != "" {
		cols.Note = p.Columns.Note
	}
	if p.Columns.Email != "" {
		cols.Email = p.Columns.Email
	}
	if p.Columns.ORCID != "" {
		cols.ORCID = p.Columns.ORCID
	}
	return cols
}

// GetMaxAffiliationColumns returns the affiliation column count with a default.
func (p *Profile) GetMaxAffiliationColumns() int {
	if p != nil && p.Options.MaxAffiliationColumns != nil {
		return *p.Options.MaxAffiliationColumns
	}
	return DefaultMaxAffiliationColumns
}

// GetMaxNoteColumns returns the note column count with a default.
func (p *Profile) GetMaxNoteColumns() int {
	if p != nil && p.Options.MaxNoteColumns != nil {
		return *p.Options.MaxNoteColumns
	}
	return DefaultMaxNoteColumns
}

// GetWithORCID reports whether ORCID badges are enabled; unset means false.
func (p *Profile) GetWithORCID() bool {
	return p != nil && p.Options.WithORCID != nil && *p.Options.WithORCID
}

// GetORCIDLogo returns the ORCID badge graphic with a default.
func (p *Profile) GetORCIDLogo() string {
	if p != nil && p.Options.ORCIDLogo != "" {
		return p.Options.ORCIDLogo
	}
	return author.DefaultORCIDLogo
}

// Numbered expands a numbered column pattern for column n (1-based).
func Numbered(pattern string, n int) string {
	num := strconv.Itoa(n)
	if strings.Contains(pattern, indexPlaceholder) {
		return strings.ReplaceAll(pattern, indexPlaceholder, num)
	}
	return pattern + " " + num
}
