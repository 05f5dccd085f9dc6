// Package latex provides a format plugin that writes the MNRAS author and
// affiliation block.
package latex

import (
	"io"

	"github.com/lehigh-university-libraries/authorblock/author"
	"github.com/lehigh-university-libraries/authorblock/format"
)

// Format implements the MNRAS LaTeX output format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "latex"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "MNRAS \\author{} body: names with affiliation marks, then numbered affiliations"
}

// Serialize writes the author block followed by the affiliation block.
func (f *Format) Serialize(w io.Writer, reg *author.Registry, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}
	_, err := io.WriteString(w, reg.Render(opts.Render)+"\n")
	return err
}

func init() {
	format.Register(&Format{})
}
