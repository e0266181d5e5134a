package userdata

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// FormatVersion is the data-file format version this build writes.
const FormatVersion = "1.0.0"

// Meta is the sidecar record written next to the data file. It identifies
// the format version and app build that last wrote the data, so older
// builds can warn before reading a newer layout.
type Meta struct {
	FormatVersion string `yaml:"format_version"`
	WrittenBy     string `yaml:"written_by,omitempty"`
}

// LoadMeta reads and parses meta.yaml. A missing file returns nil with no
// error; data written before sidecars existed is treated as compatible.
func LoadMeta() (*Meta, error) {
	path, err := GetMetaPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading meta: %w", err)
	}

	var m Meta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing meta: %w", err)
	}
	return &m, nil
}

// SaveMeta writes meta.yaml recording the current format version and the
// app version doing the writing.
func SaveMeta(appVersion string) error {
	if err := EnsureHome(); err != nil {
		return err
	}
	path, err := GetMetaPath()
	if err != nil {
		return err
	}

	m := Meta{FormatVersion: FormatVersion, WrittenBy: appVersion}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling meta: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing meta: %w", err)
	}
	return nil
}
