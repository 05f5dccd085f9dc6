package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/authorblock/author"
	"github.com/lehigh-university-libraries/authorblock/format"
	"github.com/lehigh-university-libraries/authorblock/mapping"
)

// ErrMissingColumn is returned when the header lacks the name column.
var ErrMissingColumn = errors.New("missing required column")

const utf8BOM = "\ufeff"

// columnLayout holds header positions; -1 marks an absent column.
type columnLayout struct {
	name         int
	affiliations []int
	notes        []int
	email        int
	orcid        int
}

// Parse reads a CSV author table. The first row is the header; header names
// are matched case-insensitively. Rows with a blank name are skipped.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]author.Entry, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	layout, err := buildLayout(header, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.SourceName, err)
	}

	var entries []author.Entry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing CSV: %w", err)
		}

		entry, ok := rowToEntry(row, layout)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func buildLayout(header []string, opts *format.ParseOptions) (columnLayout, error) {
	positions := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		key := strings.ToLower(strings.TrimSpace(col))
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	lookup := func(col string) int {
		if i, ok := positions[strings.ToLower(strings.TrimSpace(col))]; ok {
			return i
		}
		slog.Debug("Column not found in CSV header", "column", col, "source", opts.SourceName)
		return -1
	}

	cols := opts.Profile.ResolvedColumns()

	nameCol, ok := positions[strings.ToLower(strings.TrimSpace(cols.Name))]
	if !ok {
		return columnLayout{}, fmt.Errorf("%w %q", ErrMissingColumn, cols.Name)
	}

	layout := columnLayout{
		name:  nameCol,
		email: lookup(cols.Email),
		orcid: lookup(cols.ORCID),
	}
	for i := 1; i <= opts.AffiliationColumns(); i++ {
		layout.affiliations = append(layout.affiliations, lookup(mapping.Numbered(cols.Affiliation, i)))
	}
	for i := 1; i <= opts.NoteColumns(); i++ {
		layout.notes = append(layout.notes, lookup(mapping.Numbered(cols.Note, i)))
	}

	return layout, nil
}

func rowToEntry(row []string, layout columnLayout) (author.Entry, bool) {
	name := cell(row, layout.name)
	if name == "" {
		return author.Entry{}, false
	}

	entry := author.Entry{
		Name:         name,
		Affiliations: nonBlank(row, layout.affiliations),
		Notes:        nonBlank(row, layout.notes),
		Email:        cell(row, layout.email),
		ORCID:        cell(row, layout.orcid),
	}
	return entry, true
}

func nonBlank(row []string, positions []int) []string {
	var values []string
	for _, pos := range positions {
		if v := cell(row, pos); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// cell returns the trimmed value at pos, or "" for absent columns and short rows.
func cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}
