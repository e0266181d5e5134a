package skill

import (
	"errors"
	"testing"
)

func TestNew_LevelBounds(t *testing.T) {
	valid := []int{0, 1, 50, 99, 100}
	for _, level := range valid {
		s, err := New(Soft, "Communication", level, "")
		if err != nil {
			t.Errorf("New(level=%d) unexpected error: %v", level, err)
			continue
		}
		if s.Level != level {
			t.Errorf("New(level=%d) stored level %d", level, s.Level)
		}
	}

	invalid := []int{-1, -100, 101, 1000}
	for _, level := range invalid {
		_, err := New(Soft, "Communication", level, "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("New(level=%d) expected ValidationError, got %v", level, err)
		}
	}
}

func TestNew_RejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		_, err := New(Hard, name, 10, "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("New(name=%q) expected ValidationError, got %v", name, err)
		}
	}
}

func TestNew_RejectsUnknownKind(t *testing.T) {
	_, err := New(Kind("MediumSkill"), "Juggling", 10, "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for unknown kind, got %v", err)
	}
}

func TestUpdateLevel(t *testing.T) {
	s, err := New(Soft, "Listening", 40, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.UpdateLevel(75); err != nil {
		t.Fatalf("UpdateLevel(75): %v", err)
	}
	if s.Level != 75 {
		t.Errorf("level = %d, want 75", s.Level)
	}

	// Rejected updates leave the previous level in place.
	if err := s.UpdateLevel(101); err == nil {
		t.Fatal("UpdateLevel(101) expected error")
	}
	if s.Level != 75 {
		t.Errorf("level after rejected update = %d, want 75", s.Level)
	}
	if err := s.UpdateLevel(-1); err == nil {
		t.Fatal("UpdateLevel(-1) expected error")
	}
	if s.Level != 75 {
		t.Errorf("level after rejected update = %d, want 75", s.Level)
	}
}

func TestVisualMetaphor_SoftSkill(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Mana: [░░░░░░░░░░] (0%)"},
		{45, "Mana: [████░░░░░░] (45%)"},
		{50, "Mana: [█████░░░░░] (50%)"},
		{99, "Mana: [█████████░] (99%)"},
		{100, "Mana: [██████████] (100%)"},
	}
	for _, tt := range tests {
		s, err := New(Soft, "Empathy", tt.level, "")
		if err != nil {
			t.Fatalf("New(level=%d): %v", tt.level, err)
		}
		if got := s.VisualMetaphor(); got != tt.want {
			t.Errorf("VisualMetaphor(level=%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestStage_Boundaries(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Seed"},
		{9, "Seed"},
		{10, "Sapling"},
		{29, "Sapling"},
		{30, "Young Tree"},
		{45, "Young Tree"},
		{59, "Young Tree"},
		{60, "Mature Tree"},
		{89, "Mature Tree"},
		{90, "Ancient Tree"},
		{100, "Ancient Tree"},
	}
	for _, tt := range tests {
		s, err := New(Hard, "Rust", tt.level, "")
		if err != nil {
			t.Fatalf("New(level=%d): %v", tt.level, err)
		}
		if got := s.Stage(); got != tt.want {
			t.Errorf("Stage(level=%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestVisualMetaphor_HardSkill(t *testing.T) {
	s, err := New(Hard, "Go", 35, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := "XP Tree: Young Tree (Level: 35)"
	if got := s.VisualMetaphor(); got != want {
		t.Errorf("VisualMetaphor = %q, want %q", got, want)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"soft", Soft, true},
		{"SoftSkill", Soft, true},
		{"soft-skill", Soft, true},
		{"hard", Hard, true},
		{"HardSkill", Hard, true},
		{" HARD ", Hard, true},
		{"medium", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseKind(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
