// Package format defines the interfaces for author-table readers and
// author-block writers.
package format

import (
	"io"

	"github.com/lehigh-university-libraries/authorblock/author"
	"github.com/lehigh-university-libraries/authorblock/mapping"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "csv", "latex", "json")
	Name() string

	// Description returns a human-readable format description
	Description() string
}

// Parser is a format that reads author entries.
type Parser interface {
	Format

	// Parse reads input and returns author entries in row order.
	Parse(r io.Reader, opts *ParseOptions) ([]author.Entry, error)
}

// Serializer is a format that writes a populated registry.
type Serializer interface {
	Format

	// Serialize writes the registry to the output.
	Serialize(w io.Writer, reg *author.Registry, opts *SerializeOptions) error
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// Profile supplies column names; nil uses mapping.DefaultColumns
	Profile *mapping.Profile

	// MaxAffiliationColumns overrides the profile's affiliation column count
	// when non-nil; zero reads no affiliation columns
	MaxAffiliationColumns *int

	// MaxNoteColumns overrides the profile's note column count when non-nil
	MaxNoteColumns *int

	// SourceName is an identifier for the source (for error messages)
	SourceName string
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// Render controls ORCID badges in LaTeX output
	Render author.RenderOptions

	// Pretty enables pretty-printing (for JSON output)
	Pretty bool
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{
		SourceName: "stdin",
	}
}

// AffiliationColumns returns the effective affiliation column count.
func (o *ParseOptions) AffiliationColumns() int {
	if o.MaxAffiliationColumns != nil {
		return *o.MaxAffiliationColumns
	}
	return o.Profile.GetMaxAffiliationColumns()
}

// NoteColumns returns the effective note column count.
func (o *ParseOptions) NoteColumns() int {
	if o.MaxNoteColumns != nil {
		return *o.MaxNoteColumns
	}
	return o.Profile.GetMaxNoteColumns()
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		Render: author.RenderOptions{ORCIDLogo: author.DefaultORCIDLogo},
	}
}
