package author

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrDuplicateAuthor is returned by Add when the normalized name is
	// already registered.
	ErrDuplicateAuthor = errors.New("duplicate author name")

	// ErrMissingName is returned by Add for a blank name.
	ErrMissingName = errors.New("author name is empty")
)

// Registry accumulates authors and numbers their affiliations.
// It is not safe for concurrent use.
type Registry struct {
	logger *slog.Logger
	form   norm.Form

	authors      *orderedMap[string, []int]
	affiliations *orderedMap[string, int]
	notes        map[string][]string
	emails       map[string]string
	orcids       map[string]string
	warnings     []Warning
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that receives warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithNormalization overrides the default NFC normalization form.
func WithNormalization(form norm.Form) Option {
	return func(r *Registry) {
		r.form = form
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		form:         norm.NFC,
		authors:      newOrderedMap[string, []int](),
		affiliations: newOrderedMap[string, int](),
		notes:        make(map[string][]string),
		emails:       make(map[string]string),
		orcids:       make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) normalize(s string) string {
	return normalizeForm(r.form, s)
}

// Add registers an author. A name that collides with an existing author
// after normalization fails with ErrDuplicateAuthor and leaves the registry
// untouched.
func (r *Registry) Add(e Entry) error {
	name := r.normalize(e.Name)
	if name == "" {
		return ErrMissingName
	}
	if r.authors.Has(name) {
		return fmt.Errorf("%w %q", ErrDuplicateAuthor, name)
	}

	indices := make([]int, 0, len(e.Affiliations))
	for _, affil := range e.Affiliations {
		affil = r.normalize(affil)
		if affil == "" {
			continue
		}
		idx, ok := r.affiliations.Get(affil)
		if !ok {
			idx = r.affiliations.Len() + 1
			r.affiliations.Set(affil, idx)
		}
		indices = append(indices, idx)
	}
	if len(indices) == 0 {
		r.warn(WarningMissingAffiliation, name, "")
	}
	r.authors.Set(name, indices)

	if len(e.Notes) > 0 {
		r.notes[name] = slices.Clone(e.Notes)
	}

	if email := strings.TrimSpace(e.Email); email != "" {
		r.emails[name] = email
	} else {
		r.warn(WarningMissingEmail, name, "")
	}

	if id := strings.TrimSpace(e.ORCID); id != "" {
		id = trimORCIDURL(id)
		if !ValidORCID(id) {
			r.warn(WarningInvalidORCID, name, id)
		}
		r.orcids[name] = id
	}

	return nil
}

func (r *Registry) warn(kind WarningKind, name, detail string) {
	w := Warning{Kind: kind, Author: name, Detail: detail}
	r.warnings = append(r.warnings, w)

	switch kind {
	case WarningMissingAffiliation:
		r.logger.Warn("Empty affiliation list for author", "author", name)
	case WarningMissingEmail:
		r.logger.Warn("No email specified for author", "author", name)
	case WarningInvalidORCID:
		r.logger.Warn("ORCID iD failed validation", "author", name, "orcid", detail)
	}
}

// Len returns the number of registered authors.
func (r *Registry) Len() int {
	return r.authors.Len()
}

// Authors returns the registered authors in entry order.
func (r *Registry) Authors() []Author {
	out := make([]Author, 0, r.authors.Len())
	for _, name := range r.authors.Keys() {
		indices, _ := r.authors.Get(name)
		out = append(out, Author{
			Name:         name,
			Affiliations: slices.Clone(indices),
			Notes:        slices.Clone(r.notes[name]),
			Email:        r.emails[name],
			ORCID:        r.orcids[name],
		})
	}
	return out
}

// Affiliations returns the normalized affiliations; element i has index i+1.
func (r *Registry) Affiliations() []string {
	return slices.Clone(r.affiliations.Keys())
}

// AffiliationIndex looks up the index assigned to an affiliation.
func (r *Registry) AffiliationIndex(affiliation string) (int, bool) {
	return r.affiliations.Get(r.normalize(affiliation))
}

// Warnings returns the non-fatal problems recorded so far.
func (r *Registry) Warnings() []Warning {
	return slices.Clone(r.warnings)
}
