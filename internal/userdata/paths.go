package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillfolio-labs/skillfolio/internal/branding"
)

// File name constants for the home directory layout.
const (
	DataFile        = "skills_data.json"
	MetaFile        = "meta.yaml"
	PreferencesFile = "preferences.yaml"
)

// GetHomeRoot returns the path to the skillfolio home directory.
// It checks the SKILLFOLIO_HOME environment variable first, then falls
// back to ~/.skillfolio.
func GetHomeRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetDataPath returns the path to the skills data file. It checks the
// SKILLFOLIO_DATA_FILE environment variable first.
func GetDataPath() (string, error) {
	if v := os.Getenv(branding.EnvVar("DATA_FILE")); v != "" {
		return v, nil
	}
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, DataFile), nil
}

// GetMetaPath returns the path to the format-version sidecar file.
func GetMetaPath() (string, error) {
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, MetaFile), nil
}

// GetPreferencesPath returns the path to preferences.yaml.
func GetPreferencesPath() (string, error) {
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, PreferencesFile), nil
}

// EnsureHome creates the home directory if it does not exist.
func EnsureHome() error {
	root, err := GetHomeRoot()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating home directory %s: %w", root, err)
	}
	return nil
}
