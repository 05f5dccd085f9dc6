package author

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, entries ...Entry) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, e := range entries {
		require.NoError(t, r.Add(e))
	}
	return r
}

func TestRenderAuthors_TwoAuthors(t *testing.T) {
	r := newRegistry(t,
		Entry{Name: "Alice Smith", Affiliations: []string{"MIT"}},
		Entry{Name: "Bob Jones", Affiliations: []string{"MIT", "Caltech"}},
	)

	want := []string{
		`Alice~Smith,\textsuperscript{1}`,
		`and`,
		`Bob~Jones\thinspace\textsuperscript{1,2}`,
		`\\`,
	}
	assert.Equal(t, want, r.RenderAuthors(RenderOptions{}))

	assert.Equal(t, []string{
		`$^{1}$MIT \\`,
		`$^{2}$Caltech \\`,
	}, r.RenderAffiliations())
}

func TestRenderAuthors_ManyAuthors(t *testing.T) {
	r := newRegistry(t,
		Entry{Name: "A One", Affiliations: []string{"X"}},
		Entry{Name: "B Two", Affiliations: []string{"Y"}},
		Entry{Name: "C Three", Affiliations: []string{"X"}},
		Entry{Name: "D Four", Affiliations: []string{"Z", "Y"}},
	)

	want := []string{
		`A~One,\textsuperscript{1}`,
		`B~Two,\textsuperscript{2}`,
		`C~Three\thinspace\textsuperscript{1}`,
		`and`,
		`D~Four\thinspace\textsuperscript{3,2}`,
		`\\`,
	}
	got := r.RenderAuthors(RenderOptions{})
	assert.Equal(t, want, got)

	var ands int
	for _, line := range got {
		if line == "and" {
			ands++
		}
	}
	assert.Equal(t, 1, ands)
}

func TestRenderAuthors_SingleAuthorWithoutAffiliation(t *testing.T) {
	r := newRegistry(t, Entry{Name: "Solo  Author"})

	assert.Equal(t, []string{`Solo~Author\thinspace`, `\\`}, r.RenderAuthors(RenderOptions{}))
	assert.Empty(t, r.RenderAffiliations())
}

func TestRenderAuthors_Empty(t *testing.T) {
	assert.Equal(t, []string{`\\`}, NewRegistry().RenderAuthors(RenderOptions{}))
}

func TestRenderAuthors_Notes(t *testing.T) {
	r := newRegistry(t,
		Entry{Name: "Ann Lee", Affiliations: []string{"X"}, Notes: []string{"E-mail: ann@x.org", "Hubble Fellow"}},
	)

	want := "Ann~Lee\\thinspace\\textsuperscript{1}%\n\\thanks{E-mail: ann@x.org}\n\\thanks{Hubble Fellow}"
	assert.Equal(t, []string{want, `\\`}, r.RenderAuthors(RenderOptions{}))
}

func TestRenderAuthors_ORCID(t *testing.T) {
	r := newRegistry(t,
		Entry{Name: "Ann Lee", Affiliations: []string{"X"}, ORCID: "0000-0002-1825-0097"},
		Entry{Name: "Ben Kim", Affiliations: []string{"X"}},
	)

	badge := "%\n\\textsuperscript{\\href{https://orcid.org/0000-0002-1825-0097}{\\includegraphics[width=2.5mm]{logo.pdf}}}%\n"

	tests := []struct {
		name string
		opts RenderOptions
		want string
	}{
		{
			name: "disabled",
			opts: RenderOptions{ORCIDLogo: "logo.pdf"},
			want: `Ann~Lee,\textsuperscript{1}`,
		},
		{
			name: "enabled",
			opts: RenderOptions{WithORCID: true, ORCIDLogo: "logo.pdf"},
			want: "Ann~Lee" + badge + `,\textsuperscript{1}`,
		},
		{
			name: "default logo",
			opts: RenderOptions{WithORCID: true},
			want: "Ann~Lee" + strings.ReplaceAll(badge, "logo.pdf", DefaultORCIDLogo) + `,\textsuperscript{1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := r.RenderAuthors(tt.opts)
			require.Len(t, lines, 4)
			assert.Equal(t, tt.want, lines[0])
			assert.Equal(t, `Ben~Kim\thinspace\textsuperscript{1}`, lines[2])
		})
	}
}

func TestRender(t *testing.T) {
	r := newRegistry(t,
		Entry{Name: "Alice Smith", Affiliations: []string{"MIT"}},
		Entry{Name: "Bob Jones", Affiliations: []string{"MIT", "Caltech"}},
	)

	want := `Alice~Smith,\textsuperscript{1}
and
Bob~Jones\thinspace\textsuperscript{1,2}
\\
$^{1}$MIT \\
$^{2}$Caltech \\`
	assert.Equal(t, want, r.Render(RenderOptions{}))
}

func TestRenderEmailList(t *testing.T) {
	r := newRegistry(t,
		Entry{Name: "Alice Smith", Affiliations: []string{"MIT"}, Email: "a@x.edu"},
		Entry{Name: "Bob Jones", Affiliations: []string{"MIT"}},
	)
	assert.Equal(t, `"Alice Smith" <a@x.edu>`, r.RenderEmailList())

	require.NoError(t, r.Add(Entry{Name: "Carol White", Affiliations: []string{"ESO"}, Email: " c@eso.org "}))
	assert.Equal(t, `"Alice Smith" <a@x.edu>, "Carol White" <c@eso.org>`, r.RenderEmailList())
}

func TestTexifyName(t *testing.T) {
	assert.Equal(t, "Jean-Luc~de~la~Tour", texifyName("Jean-Luc  de\tla Tour"))
}
