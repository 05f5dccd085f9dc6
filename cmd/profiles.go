package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/authorblock/mapping"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage mapping profiles",
	Long: `List and inspect the mapping profiles that describe CSV column names and
rendering defaults. User profiles are read from ~/.authorblock/profiles.

With --profile-file the file is merged over the mnras profile and listed
alongside the others; show and columns default to it when no name is given.`,
}

var profilesFile string

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, _, err := profileRegistry(profilesFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available profiles:")
		for _, name := range registry.List() {
			profile, _ := registry.Get(name)
			desc := ""
			if profile.Description != "" {
				desc = " - " + profile.Description
			}
			fmt.Fprintf(out, "  %s%s\n", name, desc)
		}

		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show profile details",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectProfile(args)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(profile)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var profilesColumnsCmd = &cobra.Command{
	Use:   "columns [profile]",
	Short: "List the CSV header names a profile reads",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectProfile(args)
		if err != nil {
			return err
		}

		cols := profile.ResolvedColumns()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Columns read by %s profile:\n\n", profile.Name)
		fmt.Fprintf(out, "%-14s %s\n", "Field", "CSV Header")
		fmt.Fprintf(out, "%-14s %s\n", "-----", "----------")
		fmt.Fprintf(out, "%-14s %s\n", "name", cols.Name)
		for i := 1; i <= profile.GetMaxAffiliationColumns(); i++ {
			fmt.Fprintf(out, "%-14s %s\n", fmt.Sprintf("affiliation %d", i), mapping.Numbered(cols.Affiliation, i))
		}
		for i := 1; i <= profile.GetMaxNoteColumns(); i++ {
			fmt.Fprintf(out, "%-14s %s\n", fmt.Sprintf("note %d", i), mapping.Numbered(cols.Note, i))
		}
		fmt.Fprintf(out, "%-14s %s\n", "email", cols.Email)
		fmt.Fprintf(out, "%-14s %s\n", "orcid", cols.ORCID)

		return nil
	},
}

// selectProfile returns the profile named in args, or the --profile-file
// profile when no name is given.
func selectProfile(args []string) (*mapping.Profile, error) {
	registry, fileProfile, err := profileRegistry(profilesFile)
	if err != nil {
		return nil, err
	}

	name := fileProfile
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return nil, fmt.Errorf("profile name required (or use --profile-file)")
	}

	profile, ok := registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", name)
	}
	return profile, nil
}

func init() {
	profilesCmd.PersistentFlags().StringVar(&profilesFile, "profile-file", "", "Custom profile YAML file to include")
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesColumnsCmd)
}
