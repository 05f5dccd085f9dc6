package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/authorblock/format"
)

var (
	validateInput       string
	validateProfileName string
	validateProfileFile string
	validateMaxAffil    int
	validateMaxNote     int
	validateStrict      bool
	validateVerbose     bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an author table without rendering",
	Long: `Validate an author table by loading it into the author registry.

Duplicate author names fail validation. Authors without affiliations or
email addresses, and malformed ORCID iDs, are reported as warnings; with
--strict any warning fails validation.

Input defaults to stdin.

Examples:
  authorblock validate -i authors.csv
  authorblock validate -i authors.csv --verbose
  cat authors.csv | authorblock validate --strict`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input CSV file (default: stdin)")
	validateCmd.Flags().StringVarP(&validateProfileName, "profile", "p", "", "Mapping profile name (default: mnras)")
	validateCmd.Flags().StringVar(&validateProfileFile, "profile-file", "", "Custom profile YAML file")
	validateCmd.Flags().IntVar(&validateMaxAffil, "max-affil", 4, "Maximum number of affiliation columns in the CSV file")
	validateCmd.Flags().IntVar(&validateMaxNote, "max-note", 1, "Maximum number of note columns in the CSV file")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show each author")
	validateCmd.MarkFlagsMutuallyExclusive("profile", "profile-file")
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	input, inputName, closeInput, err := openInput(validateInput, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeInput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	profile, err := loadProfile(validateProfileName, validateProfileFile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	parseOpts := &format.ParseOptions{
		Profile:    profile,
		SourceName: inputName,
	}
	if parseOpts.MaxAffiliationColumns, err = columnOverride(cmd.Flags(), "max-affil", validateMaxAffil); err != nil {
		return err
	}
	if parseOpts.MaxNoteColumns, err = columnOverride(cmd.Flags(), "max-note", validateMaxNote); err != nil {
		return err
	}

	// Warnings are listed below, so keep them out of the log.
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg, err := buildRegistry(input, parseOpts, quiet)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	warnings := reg.Warnings()
	fmt.Fprintf(out, "Parsed %d authors with %d affiliations from %s\n", reg.Len(), len(reg.Affiliations()), inputName)

	if validateVerbose {
		fmt.Fprintln(out, "\nAuthors:")
		for i, a := range reg.Authors() {
			fmt.Fprintf(out, "  %d. %s %v\n", i+1, truncate(a.Name, 60), a.Affiliations)
		}
		fmt.Fprintln(out, "\nAffiliations:")
		for i, affil := range reg.Affiliations() {
			fmt.Fprintf(out, "  %d. %s\n", i+1, truncate(affil, 70))
		}
	}

	if len(warnings) > 0 {
		fmt.Fprintf(out, "\n%d warnings:\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	if validateStrict && len(warnings) > 0 {
		return fmt.Errorf("validation failed: %d warnings", len(warnings))
	}
	return nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
