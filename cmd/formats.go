package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/authorblock/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List registered input and output formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available formats:")
		for _, name := range format.DefaultRegistry.List() {
			f, ok := format.Get(name)
			if !ok {
				continue
			}
			fmt.Fprintf(out, "  %-10s %-7s %s\n", name, formatKind(f), f.Description())
		}
		return nil
	},
}

// formatKind reports whether f reads input, writes output, or both.
func formatKind(f format.Format) string {
	_, reads := f.(format.Parser)
	_, writes := f.(format.Serializer)
	switch {
	case reads && writes:
		return "in/out"
	case reads:
		return "input"
	default:
		return "output"
	}
}
