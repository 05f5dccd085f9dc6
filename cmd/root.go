// Package cmd provides CLI commands for authorblock.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/authorblock/mapping"
)

var configDir string

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "authorblock",
	Short: "Generate MNRAS author lists from CSV",
	Long: `authorblock turns a spreadsheet of paper authors into the MNRAS LaTeX
author block: names joined with commas and "and", superscript affiliation
numbers, \thanks{} notes and optional ORCID badges, followed by the numbered
affiliation list.

The CSV needs a header row with Name, Affiliation 1..N, Note 1..N, Email and
ORCID columns (case-insensitive). Other layouts can be described with a
mapping profile.

Examples:
  authorblock render < authors.csv
  authorblock render -i authors.csv --with-orcid --orcid-logo orcid.pdf
  authorblock render -i authors.csv --emails
  authorblock validate -i authors.csv`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configDir != "" {
			mapping.SetConfigDir(configDir)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default: ~/.authorblock)")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(formatsCmd)
}
