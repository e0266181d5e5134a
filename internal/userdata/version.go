package userdata

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareFormatVersions compares two format version strings using semver.
// Returns -1 if current < recorded, 0 if equal, 1 if current > recorded.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareFormatVersions(current, recorded string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current format version %q: %w", current, err)
	}
	rv, err := parseSemver(recorded)
	if err != nil {
		return 0, fmt.Errorf("parsing recorded format version %q: %w", recorded, err)
	}
	return cv.Compare(rv), nil
}

// FormatIsNewer reports whether the recorded format has a newer major
// version than this build writes. A newer major means the data layout may
// not be readable; minor and patch bumps stay compatible.
func FormatIsNewer(current, recorded string) (bool, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return false, fmt.Errorf("parsing current format version %q: %w", current, err)
	}
	rv, err := parseSemver(recorded)
	if err != nil {
		return false, fmt.Errorf("parsing recorded format version %q: %w", recorded, err)
	}
	return rv.Major() > cv.Major(), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
