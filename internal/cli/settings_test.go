package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/skillfolio-labs/skillfolio/internal/branding"
	"github.com/skillfolio-labs/skillfolio/internal/userdata"
)

func TestResolveSettings_Defaults(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	s := resolveSettings()
	if s.Verbose {
		t.Error("Verbose defaults to false")
	}
	if !s.Color {
		t.Error("Color defaults to true")
	}
	if s.OutputFormat != "" {
		t.Errorf("OutputFormat = %q, want empty", s.OutputFormat)
	}
}

func TestResolveSettings_FromPreferences(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	yes, no := true, false
	if err := userdata.SavePreferences(&userdata.Preferences{
		OutputFormat: "json",
		Verbose:      &yes,
		Color:        &no,
	}); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	s := resolveSettings()
	if !s.Verbose {
		t.Error("Verbose preference not applied")
	}
	if s.Color {
		t.Error("Color preference not applied")
	}
	if s.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want json", s.OutputFormat)
	}
}

func TestResolveSettings_EnvOverridesPreferences(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	no := false
	if err := userdata.SavePreferences(&userdata.Preferences{Verbose: &no}); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	t.Setenv(branding.EnvVar("VERBOSE"), "true")

	if s := resolveSettings(); !s.Verbose {
		t.Error("config/env verbose did not override preferences")
	}
}

func TestResolveSettings_FlagWins(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())
	t.Setenv(branding.EnvVar("VERBOSE"), "false")

	verboseFlag = true
	defer func() { verboseFlag = false }()

	if s := resolveSettings(); !s.Verbose {
		t.Error("--verbose flag did not override config")
	}
}

func TestPaint_RespectsColorSetting(t *testing.T) {
	saved := current
	defer func() { current = saved }()

	st := lipgloss.NewStyle().Bold(true)
	current.Color = false
	if got := paint(st, "plain"); got != "plain" {
		t.Errorf("paint with color disabled = %q, want unstyled text", got)
	}
}
