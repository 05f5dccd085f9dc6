package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/lehigh-university-libraries/authorblock/author"
	"github.com/lehigh-university-libraries/authorblock/format"
	"github.com/lehigh-university-libraries/authorblock/mapping"
)

// openInput returns the named file, or fallback when path is empty.
// The returned close function is never nil.
func openInput(path string, fallback io.Reader) (io.Reader, string, func() error, error) {
	if path == "" {
		return fallback, "stdin", func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening input file: %w", err)
	}
	return f, path, f.Close, nil
}

// loadProfile resolves the mapping profile from a file, a name, or the
// embedded default. Any profile other than the default is merged over it, so
// profiles only need to list what differs.
func loadProfile(name, file string) (*mapping.Profile, error) {
	registry, fileProfile, err := profileRegistry(file)
	if err != nil {
		return nil, err
	}

	base, ok := registry.Get(mapping.DefaultProfileName)
	if !ok {
		return nil, fmt.Errorf("default profile %q is missing", mapping.DefaultProfileName)
	}

	if fileProfile != "" {
		name = fileProfile
	}
	if name == "" || name == mapping.DefaultProfileName {
		return base, nil
	}

	p, ok := registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s (not found in user or embedded profiles)", name)
	}
	return mapping.MergeProfiles(base, p), nil
}

// profileRegistry loads the embedded and user profiles. A profile file, when
// given, is merged over the default profile and registered; its name is
// returned.
func profileRegistry(file string) (*mapping.ProfileRegistry, string, error) {
	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		return nil, "", err
	}
	dir, err := mapping.ProfilesDir()
	if err != nil {
		return nil, "", err
	}
	if err := registry.LoadFromDirectory(dir); err != nil {
		return nil, "", fmt.Errorf("loading user profiles: %w", err)
	}

	if file == "" {
		return registry, "", nil
	}

	custom, err := mapping.LoadProfile(file)
	if err != nil {
		return nil, "", err
	}
	base, ok := registry.Get(mapping.DefaultProfileName)
	if !ok {
		return nil, "", fmt.Errorf("default profile %q is missing", mapping.DefaultProfileName)
	}
	merged := mapping.MergeProfiles(base, custom)
	registry.Register(merged)
	return registry, merged.Name, nil
}

// columnOverride returns the value of an int flag the user set explicitly,
// or nil when the flag was left at its default.
func columnOverride(flags *pflag.FlagSet, name string, value int) (*int, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	if value < 0 {
		return nil, fmt.Errorf("--%s must not be negative, got %d", name, value)
	}
	return &value, nil
}

// buildRegistry parses the CSV input and adds every entry to a new registry.
// The first duplicate author aborts the build.
func buildRegistry(r io.Reader, parseOpts *format.ParseOptions, logger *slog.Logger) (*author.Registry, error) {
	var normalization string
	if parseOpts.Profile != nil {
		normalization = parseOpts.Profile.Options.Normalization
	}
	form, ok := author.ParseForm(normalization)
	if !ok {
		return nil, fmt.Errorf("unknown normalization %q in profile %s", normalization, parseOpts.Profile.Name)
	}

	parser, err := format.GetParser("csv")
	if err != nil {
		return nil, err
	}

	entries, err := parser.Parse(r, parseOpts)
	if err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	logger.Debug("Parsed author entries", "count", len(entries), "source", parseOpts.SourceName)

	reg := author.NewRegistry(author.WithLogger(logger), author.WithNormalization(form))
	for _, entry := range entries {
		if err := reg.Add(entry); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
