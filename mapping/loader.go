package mapping

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var embeddedProfiles embed.FS

// DefaultProfileName is the embedded profile used when none is selected.
const DefaultProfileName = "mnras"

// ProfileRegistry holds loaded profiles.
type ProfileRegistry struct {
	profiles map[string]*Profile
}

// NewProfileRegistry creates a new profile registry with embedded profiles loaded.
func NewProfileRegistry() (*ProfileRegistry, error) {
	r := &ProfileRegistry{
		profiles: make(map[string]*Profile),
	}

	entries, err := embeddedProfiles.ReadDir("profiles")
	if err != nil {
		return nil, fmt.Errorf("reading embedded profiles: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := embeddedProfiles.ReadFile("profiles/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded profile %s: %w", entry.Name(), err)
		}

		profile, err := parseProfile(data)
		if err != nil {
			return nil, fmt.Errorf("embedded profile %s: %w", entry.Name(), err)
		}

		if profile.Name == "" {
			profile.Name = strings.TrimSuffix(entry.Name(), ".yaml")
		}
		r.profiles[profile.Name] = profile
	}

	return r, nil
}

// LoadProfile loads a profile from a file path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	profile, err := parseProfile(data)
	if err != nil {
		return nil, err
	}
	if profile.Name == "" {
		profile.Name = profileNameFromFile(path)
	}
	return profile, nil
}

// LoadProfileFromString loads a profile from YAML content.
func LoadProfileFromString(content string) (*Profile, error) {
	return parseProfile([]byte(content))
}

func parseProfile(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}
	if negative(profile.Options.MaxAffiliationColumns) || negative(profile.Options.MaxNoteColumns) {
		return nil, fmt.Errorf("profile %q: column counts must not be negative", profile.Name)
	}
	return &profile, nil
}

func negative(n *int) bool {
	return n != nil && *n < 0
}

func profileNameFromFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
}

// Get retrieves a profile by name.
func (r *ProfileRegistry) Get(name string) (*Profile, bool) {
	p, ok := r.profiles[name]
	return p, ok
}

// Register adds a profile to the registry.
func (r *ProfileRegistry) Register(profile *Profile) {
	r.profiles[profile.Name] = profile
}

// List returns all registered profile names in sorted order.
func (r *ProfileRegistry) List() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFromDirectory loads all profiles from a directory. A missing directory
// is not an error; unreadable or invalid files are.
func (r *ProfileRegistry) LoadFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading profile directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}

		profile, err := LoadProfile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("loading %s: %w", name, err)
		}
		r.profiles[profile.Name] = profile
	}

	return nil
}

// MergeProfiles merges a custom profile over a base profile.
// Non-empty strings and any option the custom profile sets (including 0 and
// false) override base values.
func MergeProfiles(base, custom *Profile) *Profile {
	merged := *base
	merged.Name = custom.Name
	if custom.Description != "" {
		merged.Description = custom.Description
	}

	if custom.Columns.Name != "" {
		merged.Columns.Name = custom.Columns.Name
	}
	if custom.Columns.Affiliation != "" {
		merged.Columns.Affiliation = custom.Columns.Affiliation
	}
	if custom.Columns.Note != "" {
		merged.Columns.Note = custom.Columns.Note
	}
	if custom.Columns.Email != "" {
		merged.Columns.Email = custom.Columns.Email
	}
	if custom.Columns.ORCID != "" {
		merged.Columns.ORCID = custom.Columns.ORCID
	}

	if custom.Options.MaxAffiliationColumns != nil {
		merged.Options.MaxAffiliationColumns = custom.Options.MaxAffiliationColumns
	}
	if custom.Options.MaxNoteColumns != nil {
		merged.Options.MaxNoteColumns = custom.Options.MaxNoteColumns
	}
	if custom.Options.WithORCID != nil {
		merged.Options.WithORCID = custom.Options.WithORCID
	}
	if custom.Options.ORCIDLogo != "" {
		merged.Options.ORCIDLogo = custom.Options.ORCIDLogo
	}
	if custom.Options.Normalization != "" {
		merged.Options.Normalization = custom.Options.Normalization
	}

	return &merged
}

// configDirOverride holds a user-specified configuration directory.
// When empty, the default $HOME/.authorblock is used.
var configDirOverride string

// SetConfigDir overrides the default configuration directory.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the authorblock configuration directory.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".authorblock"), nil
}

// ProfilesDir returns the user profiles directory.
func ProfilesDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "profiles"), nil
}
