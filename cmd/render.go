package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/authorblock/author"
	"github.com/lehigh-university-libraries/authorblock/format"

	// Register all format plugins
	_ "github.com/lehigh-university-libraries/authorblock/format/csv"
	_ "github.com/lehigh-university-libraries/authorblock/format/email"
	_ "github.com/lehigh-university-libraries/authorblock/format/latex"
	_ "github.com/lehigh-university-libraries/authorblock/format/manifest"
)

var (
	inputFile    string
	outputFile   string
	profileName  string
	profileFile  string
	emailsOnly   bool
	maxAffil     int
	maxNote      int
	withORCID    bool
	orcidLogo    string
	outputFormat string
	pretty       bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the MNRAS author and affiliation block",
	Long: `Render the MNRAS author block from a CSV author table.

Authors appear in row order. Affiliations are numbered in order of first
appearance and shared by every author who lists them. Duplicate author names
(after Unicode normalization) abort the run without output.

Input defaults to stdin, output defaults to stdout.

Examples:
  authorblock render < authors.csv
  authorblock render -i authors.csv -o authors.tex --with-orcid
  authorblock render -i authors.csv --emails   (same as --format emails)
  authorblock render -i authors.csv --format json --pretty`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file (default: stdin)")
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().StringVarP(&profileName, "profile", "p", "", "Mapping profile name (default: mnras)")
	renderCmd.Flags().StringVar(&profileFile, "profile-file", "", "Custom profile YAML file")
	renderCmd.Flags().BoolVarP(&emailsOnly, "emails", "e", false, "Output names and emails instead of LaTeX")
	renderCmd.Flags().IntVar(&maxAffil, "max-affil", 4, "Maximum number of affiliation columns in the CSV file")
	renderCmd.Flags().IntVar(&maxNote, "max-note", 1, "Maximum number of note columns in the CSV file")
	renderCmd.Flags().BoolVar(&withORCID, "with-orcid", false, "Output ORCID iD badges")
	renderCmd.Flags().StringVar(&orcidLogo, "orcid-logo", author.DefaultORCIDLogo, "Filename of the ORCID iD logo")
	renderCmd.Flags().StringVarP(&outputFormat, "format", "f", "latex", "Output format (latex, json, emails; see 'authorblock formats')")
	renderCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	renderCmd.MarkFlagsMutuallyExclusive("emails", "format")
	renderCmd.MarkFlagsMutuallyExclusive("profile", "profile-file")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	input, inputName, closeInput, err := openInput(inputFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeInput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	profile, err := loadProfile(profileName, profileFile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	// Explicit flags win over profile settings.
	flags := cmd.Flags()
	parseOpts := &format.ParseOptions{
		Profile:    profile,
		SourceName: inputName,
	}
	if parseOpts.MaxAffiliationColumns, err = columnOverride(flags, "max-affil", maxAffil); err != nil {
		return err
	}
	if parseOpts.MaxNoteColumns, err = columnOverride(flags, "max-note", maxNote); err != nil {
		return err
	}

	serializeOpts := format.NewSerializeOptions()
	serializeOpts.Pretty = pretty
	serializeOpts.Render.WithORCID = profile.GetWithORCID()
	serializeOpts.Render.ORCIDLogo = profile.GetORCIDLogo()
	if flags.Changed("with-orcid") {
		serializeOpts.Render.WithORCID = withORCID
	}
	if flags.Changed("orcid-logo") {
		serializeOpts.Render.ORCIDLogo = orcidLogo
	}

	formatName := outputFormat
	if emailsOnly {
		formatName = "emails"
	}
	serializer, err := format.GetSerializer(formatName)
	if err != nil {
		return fmt.Errorf("unknown output format %q: %w", formatName, err)
	}

	reg, err := buildRegistry(input, parseOpts, slog.Default())
	if err != nil {
		return err
	}

	// Render fully before touching the destination so a failure leaves no
	// partial output behind.
	var buf bytes.Buffer
	if err := serializer.Serialize(&buf, reg, serializeOpts); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}

	return writeOutput(outputFile, cmd.OutOrStdout(), buf.Bytes())
}

func writeOutput(path string, fallback io.Writer, data []byte) (err error) {
	if path == "" {
		_, err = fallback.Write(data)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
