// Package csv provides a format plugin that reads author tables from CSV.
package csv

import (
	"github.com/lehigh-university-libraries/authorblock/format"
)

// Format implements the CSV author table format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format = (*Format)(nil)
	_ format.Parser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Author table as comma-separated values (Name, Affiliation N, Note N, Email, ORCID)"
}

func init() {
	format.Register(&Format{})
}
