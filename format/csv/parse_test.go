package csv

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/lehigh-university-libraries/authorblock/author"
	"github.com/lehigh-university-libraries/authorblock/format"
	"github.com/lehigh-university-libraries/authorblock/mapping"
)

func TestParse(t *testing.T) {
	input := `Name,Affiliation 1,Affiliation 2,Affiliation 3,Affiliation 4,Note 1,Email,ORCID
Alice Smith,MIT,,,,,a@x.edu,0000-0002-1825-0097
 Bob Jones ,MIT, Caltech ,,,Corresponding author,,
,Nobody's Institute,,,,,,
Carol White,"ESO, Garching",,,,,c@eso.org,
`

	f := &Format{}
	entries, err := f.Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []author.Entry{
		{Name: "Alice Smith", Affiliations: []string{"MIT"}, Email: "a@x.edu", ORCID: "0000-0002-1825-0097"},
		{Name: "Bob Jones", Affiliations: []string{"MIT", "Caltech"}, Notes: []string{"Corresponding author"}},
		{Name: "Carol White", Affiliations: []string{"ESO, Garching"}, Email: "c@eso.org"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Parse() mismatch\ngot:  %s\nwant: %s", spew.Sdump(entries), spew.Sdump(want))
	}
}

func TestParse_CaseInsensitiveHeaderAndBOM(t *testing.T) {
	input := "\ufeffNAME, email ,AFFILIATION 1\nAlice,a@x.edu,MIT\n"

	entries, err := (&Format{}).Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %s", len(entries), spew.Sdump(entries))
	}
	e := entries[0]
	if e.Name != "Alice" || e.Email != "a@x.edu" || len(e.Affiliations) != 1 || e.Affiliations[0] != "MIT" {
		t.Errorf("unexpected entry: %s", spew.Sdump(e))
	}
	if e.ORCID != "" || e.Notes != nil {
		t.Errorf("absent columns should be empty: %s", spew.Sdump(e))
	}
}

func TestParse_ColumnLimits(t *testing.T) {
	input := `name,affiliation 1,affiliation 2,affiliation 3,note 1,note 2
Alice,A,B,C,n1,n2
`

	tests := []struct {
		name       string
		opts       *format.ParseOptions
		wantAffils []string
		wantNotes  []string
	}{
		{
			name:       "defaults",
			opts:       format.NewParseOptions(),
			wantAffils: []string{"A", "B", "C"},
			wantNotes:  []string{"n1"},
		},
		{
			name:       "overrides",
			opts:       &format.ParseOptions{MaxAffiliationColumns: intPtr(2), MaxNoteColumns: intPtr(2)},
			wantAffils: []string{"A", "B"},
			wantNotes:  []string{"n1", "n2"},
		},
		{
			name: "profile",
			opts: &format.ParseOptions{Profile: &mapping.Profile{
				Options: mapping.ProfileOptions{MaxAffiliationColumns: intPtr(1), MaxNoteColumns: intPtr(2)},
			}},
			wantAffils: []string{"A"},
			wantNotes:  []string{"n1", "n2"},
		},
		{
			name:       "zero overrides",
			opts:       &format.ParseOptions{MaxAffiliationColumns: intPtr(0), MaxNoteColumns: intPtr(0)},
			wantAffils: nil,
			wantNotes:  nil,
		},
		{
			name: "profile without notes",
			opts: &format.ParseOptions{Profile: &mapping.Profile{
				Options: mapping.ProfileOptions{MaxNoteColumns: intPtr(0)},
			}},
			wantAffils: []string{"A", "B", "C"},
			wantNotes:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := (&Format{}).Parse(strings.NewReader(input), tt.opts)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(entries) != 1 {
				t.Fatalf("got %d entries", len(entries))
			}
			if !reflect.DeepEqual(entries[0].Affiliations, tt.wantAffils) {
				t.Errorf("Affiliations = %v, want %v", entries[0].Affiliations, tt.wantAffils)
			}
			if !reflect.DeepEqual(entries[0].Notes, tt.wantNotes) {
				t.Errorf("Notes = %v, want %v", entries[0].Notes, tt.wantNotes)
			}
		})
	}
}

func intPtr(n int) *int { return &n }

func TestParse_ProfileColumns(t *testing.T) {
	profile, err := mapping.LoadProfileFromString(`
name: roster
columns:
  name: Author
  affiliation: "Inst{n}"
  email: Mail
`)
	if err != nil {
		t.Fatal(err)
	}

	input := "Author,Inst1,Inst2,Mail\nDana Ray,Leiden,,d@leiden.nl\n"
	entries, err := (&Format{}).Parse(strings.NewReader(input), &format.ParseOptions{Profile: profile})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []author.Entry{{Name: "Dana Ray", Affiliations: []string{"Leiden"}, Email: "d@leiden.nl"}}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Parse() = %s", spew.Sdump(entries))
	}
}

func TestParse_ShortRows(t *testing.T) {
	input := "name,affiliation 1,email\nAlice\nBob,MIT\n"
	entries, err := (&Format{}).Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Affiliations != nil || entries[1].Affiliations[0] != "MIT" {
		t.Errorf("unexpected entries: %s", spew.Sdump(entries))
	}
}

func TestParse_MissingNameColumn(t *testing.T) {
	_, err := (&Format{}).Parse(strings.NewReader("author,email\nAlice,a@x.edu\n"), nil)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Parse() error = %v, want ErrMissingColumn", err)
	}
	if !strings.Contains(err.Error(), "stdin") {
		t.Errorf("error should name the source: %v", err)
	}
}

func TestParse_Empty(t *testing.T) {
	entries, err := (&Format{}).Parse(strings.NewReader(""), nil)
	if err != nil || entries != nil {
		t.Errorf("Parse(\"\") = %v, %v; want nil, nil", entries, err)
	}
}

func TestRegistered(t *testing.T) {
	p, err := format.GetParser("CSV")
	if err != nil {
		t.Fatalf("GetParser() error = %v", err)
	}
	if p.Name() != "csv" {
		t.Errorf("Name() = %q", p.Name())
	}
}
