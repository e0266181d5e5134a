package userdata

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Preferences represents user-wide defaults stored in preferences.yaml.
// Color and Verbose are pointers so an absent key is distinguishable from
// an explicit false.
type Preferences struct {
	OutputFormat string `yaml:"output_format,omitempty"`
	Color        *bool  `yaml:"color,omitempty"`
	Verbose      *bool  `yaml:"verbose,omitempty"`

	// Extras holds arbitrary user-defined fields.
	Extras map[string]interface{} `yaml:",inline"`
}

// LoadPreferences reads and parses preferences.yaml.
func LoadPreferences() (*Preferences, error) {
	path, err := GetPreferencesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	return &p, nil
}

// SavePreferences writes preferences.yaml, creating the home directory
// when needed.
func SavePreferences(p *Preferences) error {
	if err := EnsureHome(); err != nil {
		return err
	}
	path, err := GetPreferencesPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}
