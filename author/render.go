package author

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultORCIDLogo is the badge image used when RenderOptions.ORCIDLogo is empty.
const DefaultORCIDLogo = "orcid-ID.png"

// RenderOptions controls author line rendering.
type RenderOptions struct {
	// WithORCID adds a hyperlinked ORCID badge after names that have an iD
	WithORCID bool

	// ORCIDLogo is the graphics file referenced by the badge
	ORCIDLogo string
}

// RenderAuthors returns the author block, one line per author in entry
// order, followed by a closing \\ line.
//
// Authors before the last two are followed by a comma, the last two by
// \thinspace, and an "and" line separates the final pair. With exactly two
// authors the first keeps its comma.
func (r *Registry) RenderAuthors(opts RenderOptions) []string {
	names := r.authors.Keys()
	n := len(names)
	lines := make([]string, 0, n+2)

	for i, name := range names {
		line := texifyName(name)
		if opts.WithORCID {
			if id, ok := r.orcids[name]; ok {
				line += orcidBadge(id, opts.ORCIDLogo)
			}
		}

		indices, _ := r.authors.Get(name)
		marks := affiliationMarks(indices)
		if notes := r.notes[name]; len(notes) > 0 {
			marks += "%\n" + thanks(notes)
		}

		if i < n-2 || (n == 2 && i == 0) {
			lines = append(lines, line+","+marks)
		} else {
			lines = append(lines, line+`\thinspace`+marks)
		}
		if i == n-2 {
			lines = append(lines, "and")
		}
	}

	lines = append(lines, `\\`)
	return lines
}

// RenderAffiliations returns one line per affiliation in index order.
func (r *Registry) RenderAffiliations() []string {
	lines := make([]string, 0, r.affiliations.Len())
	for _, affil := range r.affiliations.Keys() {
		idx, _ := r.affiliations.Get(affil)
		lines = append(lines, fmt.Sprintf(`$^{%d}$%s \\`, idx, affil))
	}
	return lines
}

// Render returns the author block followed by the affiliation block.
func (r *Registry) Render(opts RenderOptions) string {
	lines := r.RenderAuthors(opts)
	lines = append(lines, r.RenderAffiliations()...)
	return strings.Join(lines, "\n")
}

// RenderEmailList returns `"Name" <email>` pairs for every author with an
// email, in entry order, separated by ", ".
func (r *Registry) RenderEmailList() string {
	pairs := make([]string, 0, len(r.emails))
	for _, name := range r.authors.Keys() {
		email, ok := r.emails[name]
		if !ok {
			continue
		}
		pairs = append(pairs, `"`+name+`" <`+email+`>`)
	}
	return strings.Join(pairs, ", ")
}

// texifyName joins the words of a name with non-breaking spaces.
func texifyName(name string) string {
	return strings.Join(strings.Fields(name), "~")
}

func orcidBadge(id, logo string) string {
	if logo == "" {
		logo = DefaultORCIDLogo
	}
	return "%\n" +
		`\textsuperscript{\href{https://orcid.org/` + id + `}` +
		`{\includegraphics[width=2.5mm]{` + logo + `}}}` +
		"%\n"
}

func affiliationMarks(indices []int) string {
	if len(indices) == 0 {
		return ""
	}
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return `\textsuperscript{` + strings.Join(parts, ",") + `}`
}

func thanks(notes []string) string {
	parts := make([]string, len(notes))
	for i, note := range notes {
		parts[i] = `\thanks{` + note + `}`
	}
	return strings.Join(parts, "\n")
}
