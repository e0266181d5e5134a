package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillfolio-labs/skillfolio/internal/branding"
	"github.com/skillfolio-labs/skillfolio/internal/userdata"
)

// execute runs the root command with args and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestEndToEndFlow(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	if _, err := execute(t, "category", "add", "Programming"); err != nil {
		t.Fatalf("category add: %v", err)
	}

	out, err := execute(t, "skill", "add", "Programming", "Rust", "--kind", "hard", "--level", "35")
	if err != nil {
		t.Fatalf("skill add: %v", err)
	}
	if !strings.Contains(out, "Added skill") {
		t.Errorf("skill add output missing confirmation:\n%s", out)
	}

	out, err = execute(t, "skill", "show", "Programming", "Rust")
	if err != nil {
		t.Fatalf("skill show: %v", err)
	}
	if !strings.Contains(out, "Young Tree") {
		t.Errorf("show output missing XP stage:\n%s", out)
	}
	if !strings.Contains(out, "Level: 35") {
		t.Errorf("show output missing level:\n%s", out)
	}

	out, err = execute(t, "skill", "set-level", "Programming", "Rust", "65")
	if err != nil {
		t.Fatalf("set-level: %v", err)
	}
	if !strings.Contains(out, "65") {
		t.Errorf("set-level output missing new level:\n%s", out)
	}

	out, err = execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Mature Tree") {
		t.Errorf("list output missing updated stage:\n%s", out)
	}
}

func TestSkillAdd_InvalidLevel(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	if _, err := execute(t, "category", "add", "Programming"); err != nil {
		t.Fatalf("category add: %v", err)
	}
	if _, err := execute(t, "skill", "add", "Programming", "Go", "--kind", "hard", "--level", "150"); err == nil {
		t.Fatal("expected error for level 150")
	}
}

func TestSkillAdd_UnknownKind(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	if _, err := execute(t, "skill", "add", "Programming", "Go", "--kind", "medium", "--level", "10"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestExportCommand(t *testing.T) {
	out, err := execute(t, "export", "pdf")
	if err != nil {
		t.Fatalf("export pdf: %v", err)
	}
	if !strings.Contains(out, "conceptual") {
		t.Errorf("export output not marked conceptual:\n%s", out)
	}

	if _, err := execute(t, "export", "word"); err == nil {
		t.Fatal("expected error for unknown export format")
	}
}

func TestVerboseFromEnvShowsInfoSignals(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())
	t.Setenv(branding.EnvVar("VERBOSE"), "true")

	out, err := execute(t, "category", "list")
	if err != nil {
		t.Fatalf("category list: %v", err)
	}
	if !strings.Contains(out, "Starting fresh") {
		t.Errorf("verbose env setting did not surface info signals:\n%s", out)
	}
}

func TestVerboseFromPreferences(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	yes := true
	if err := userdata.SavePreferences(&userdata.Preferences{Verbose: &yes}); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	out, err := execute(t, "category", "list")
	if err != nil {
		t.Fatalf("category list: %v", err)
	}
	if !strings.Contains(out, "Starting fresh") {
		t.Errorf("verbose preference did not surface info signals:\n%s", out)
	}
}

func TestListUsesOutputFormatPreference(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	if err := userdata.SavePreferences(&userdata.Preferences{OutputFormat: "json"}); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	if _, err := execute(t, "category", "add", "Programming"); err != nil {
		t.Fatalf("category add: %v", err)
	}
	if _, err := execute(t, "skill", "add", "Programming", "Go", "--kind", "hard", "--level", "50"); err != nil {
		t.Fatalf("skill add: %v", err)
	}

	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, `"metaphor"`) {
		t.Errorf("output_format preference did not switch list to JSON:\n%s", out)
	}
}

func TestNewerFormatBanner(t *testing.T) {
	home := t.TempDir()
	t.Setenv(branding.EnvVar("HOME"), home)

	metaPath := filepath.Join(home, userdata.MetaFile)
	if err := os.WriteFile(metaPath, []byte("format_version: \"2.0.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "category", "list")
	if err != nil {
		t.Fatalf("category list: %v", err)
	}
	if !strings.Contains(out, "newer format") {
		t.Errorf("expected newer-format banner:\n%s", out)
	}

	// Commands that never touch the data file skip the banner.
	out, err = execute(t, "export", "pdf")
	if err != nil {
		t.Fatalf("export pdf: %v", err)
	}
	if strings.Contains(out, "newer format") {
		t.Errorf("banner shown for data-free command:\n%s", out)
	}
}

func TestDoctorReportsOlderFormat(t *testing.T) {
	home := t.TempDir()
	t.Setenv(branding.EnvVar("HOME"), home)

	metaPath := filepath.Join(home, userdata.MetaFile)
	if err := os.WriteFile(metaPath, []byte("format_version: \"0.9.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !strings.Contains(out, "older than") {
		t.Errorf("doctor did not flag older data format:\n%s", out)
	}
}

func TestSuggestCommand(t *testing.T) {
	out, err := execute(t, "suggest", "github", "octocat")
	if err != nil {
		t.Fatalf("suggest github: %v", err)
	}
	if !strings.Contains(out, "octocat") {
		t.Errorf("suggest output missing subject:\n%s", out)
	}
}
