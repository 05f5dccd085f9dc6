// Package manifest provides a format plugin that exports a populated
// registry as JSON, for tooling that needs the author table rather than
// the typeset block.
package manifest

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/authorblock/author"
	"github.com/lehigh-university-libraries/authorblock/format"
)

// Format implements the JSON manifest format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "json"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "JSON manifest of authors with affiliation indices and the affiliation table"
}

// Serialize writes the manifest document.
func (f *Format) Serialize(w io.Writer, reg *author.Registry, opts *format.SerializeOptions) error {
	pretty := opts != nil && opts.Pretty
	return Write(w, reg, pretty)
}

// Build converts the registry into a Struct of the form
//
//	{"authors": [{"name", "affiliations": [1, 2], "notes", "email", "orcid"}],
//	 "affiliations": [{"index": 1, "name": "..."}]}
//
// Empty notes, email and orcid are omitted.
func Build(reg *author.Registry) (*structpb.Struct, error) {
	authors := make([]any, 0, reg.Len())
	for _, a := range reg.Authors() {
		indices := make([]any, len(a.Affiliations))
		for i, idx := range a.Affiliations {
			indices[i] = idx
		}

		entry := map[string]any{
			"name":         a.Name,
			"affiliations": indices,
		}
		if len(a.Notes) > 0 {
			notes := make([]any, len(a.Notes))
			for i, n := range a.Notes {
				notes[i] = n
			}
			entry["notes"] = notes
		}
		if a.Email != "" {
			entry["email"] = a.Email
		}
		if a.ORCID != "" {
			entry["orcid"] = a.ORCID
		}
		authors = append(authors, entry)
	}

	affiliations := make([]any, 0)
	for i, name := range reg.Affiliations() {
		affiliations = append(affiliations, map[string]any{
			"index": i + 1,
			"name":  name,
		})
	}

	doc, err := structpb.NewStruct(map[string]any{
		"authors":      authors,
		"affiliations": affiliations,
	})
	if err != nil {
		return nil, fmt.Errorf("building manifest: %w", err)
	}
	return doc, nil
}

// Write encodes the registry manifest as JSON followed by a newline.
func Write(w io.Writer, reg *author.Registry, pretty bool) error {
	doc, err := Build(reg)
	if err != nil {
		return err
	}

	marshaler := protojson.MarshalOptions{}
	if pretty {
		marshaler.Multiline = true
		marshaler.Indent = "  "
	}

	data, err := marshaler.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func init() {
	format.Register(&Format{})
}
