package cli

import (
	"strconv"

	"github.com/skillfolio-labs/skillfolio/internal/config"
	"github.com/skillfolio-labs/skillfolio/internal/userdata"
)

// settings are the effective display options for one invocation, resolved
// from lowest to highest precedence: preferences.yaml, config/env, flags.
type settings struct {
	Verbose      bool
	Color        bool
	OutputFormat string
}

// current holds the settings resolved by preRun for the running command.
// Defaults apply when a command runs without the cobra lifecycle (tests
// calling helpers directly).
var current = settings{Color: true}

// resolveSettings layers preferences, config, and flags into the effective
// display settings.
func resolveSettings() settings {
	s := settings{Color: true}

	if prefs, err := userdata.LoadPreferences(); err == nil {
		if prefs.Verbose != nil {
			s.Verbose = *prefs.Verbose
		}
		if prefs.Color != nil {
			s.Color = *prefs.Color
		}
		if prefs.OutputFormat != "" {
			s.OutputFormat = prefs.OutputFormat
		}
	}

	config.Load()
	if v := config.Get(config.KeyVerbose); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Verbose = b
		}
	}
	if v := config.Get(config.KeyColor); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Color = b
		}
	}

	if verboseFlag {
		s.Verbose = true
	}
	return s
}
