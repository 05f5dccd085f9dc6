// Package email provides a format plugin that writes the author email list.
package email

import (
	"io"

	"github.com/lehigh-university-libraries/authorblock/author"
	"github.com/lehigh-university-libraries/authorblock/format"
)

// Format implements the email address list format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "emails"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return `Comma-separated "Name" <address> list for authors with an email`
}

// Serialize writes the email list on a single line.
func (f *Format) Serialize(w io.Writer, reg *author.Registry, _ *format.SerializeOptions) error {
	_, err := io.WriteString(w, reg.RenderEmailList()+"\n")
	return err
}

func init() {
	format.Register(&Format{})
}
