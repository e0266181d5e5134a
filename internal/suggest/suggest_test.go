package suggest

import (
	"strings"
	"testing"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		in   string
		want Source
		ok   bool
	}{
		{"github", GitHub, true},
		{"vscode", VSCode, true},
		{"stackoverflow", StackOverflow, true},
		{"gitlab", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSource(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseSource(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRun_IncludesSubject(t *testing.T) {
	tests := []struct {
		src     Source
		subject string
	}{
		{GitHub, "octocat"},
		{VSCode, "/home/u/.vscode/usage.json"},
		{StackOverflow, "12345"},
	}
	for _, tt := range tests {
		lines, err := Run(tt.src, tt.subject)
		if err != nil {
			t.Errorf("Run(%s) error: %v", tt.src, err)
			continue
		}
		joined := strings.Join(lines, "\n")
		if !strings.Contains(joined, tt.subject) {
			t.Errorf("Run(%s) output does not mention subject %q:\n%s", tt.src, tt.subject, joined)
		}
		if !strings.Contains(joined, "conceptual") {
			t.Errorf("Run(%s) output does not mark itself conceptual", tt.src)
		}
	}
}

func TestRun_EmptySubject(t *testing.T) {
	for _, src := range AllSources() {
		if _, err := Run(src, ""); err == nil {
			t.Errorf("Run(%s, \"\") expected error", src)
		}
	}
}
