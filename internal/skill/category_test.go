package skill

import (
	"errors"
	"testing"
)

func mustSkill(t *testing.T, kind Kind, name string, level int) *Skill {
	t.Helper()
	s, err := New(kind, name, level, "")
	if err != nil {
		t.Fatalf("New(%s): %v", name, err)
	}
	return s
}

func TestCategory_AddAndGet(t *testing.T) {
	cat := NewCategory("Programming")
	rep := &Report{}
	cat.Add(mustSkill(t, Hard, "Go", 60), rep)

	if rep.HasWarnings() {
		t.Errorf("unexpected warnings on first add: %+v", rep.Signals)
	}
	got := cat.Get("Go")
	if got == nil || got.Level != 60 {
		t.Fatalf("Get(Go) = %+v, want level 60", got)
	}
	if cat.Get("Zig") != nil {
		t.Error("Get(Zig) expected nil for absent skill")
	}
}

func TestCategory_AddOverwriteWarns(t *testing.T) {
	cat := NewCategory("Programming")
	cat.Add(mustSkill(t, Hard, "Go", 60), &Report{})

	rep := &Report{}
	cat.Add(mustSkill(t, Hard, "Go", 80), rep)

	if !rep.HasWarnings() {
		t.Error("expected a duplicate warning on overwrite")
	}
	if got := cat.Get("Go").Level; got != 80 {
		t.Errorf("overwrite kept level %d, want 80", got)
	}
	if cat.Len() != 1 {
		t.Errorf("Len = %d, want 1", cat.Len())
	}
}

func TestCategory_InsertionOrder(t *testing.T) {
	cat := NewCategory("Languages")
	names := []string{"Go", "Rust", "Python", "C"}
	for i, name := range names {
		cat.Add(mustSkill(t, Hard, name, 10*i), &Report{})
	}

	skills := cat.Skills()
	if len(skills) != len(names) {
		t.Fatalf("Skills() returned %d items, want %d", len(skills), len(names))
	}
	for i, s := range skills {
		if s.Name != names[i] {
			t.Errorf("skills[%d] = %q, want %q", i, s.Name, names[i])
		}
	}

	// Overwriting keeps the original position.
	cat.Add(mustSkill(t, Hard, "Rust", 90), &Report{})
	if got := cat.Skills()[1].Name; got != "Rust" {
		t.Errorf("skills[1] after overwrite = %q, want Rust", got)
	}
}

func TestCategory_Remove(t *testing.T) {
	cat := NewCategory("Programming")
	cat.Add(mustSkill(t, Soft, "Pairing", 30), &Report{})

	rep := &Report{}
	if err := cat.Remove("Pairing", rep); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if cat.Get("Pairing") != nil {
		t.Error("skill still present after Remove")
	}
	if len(cat.Skills()) != 0 {
		t.Error("Skills() not empty after Remove")
	}
}

func TestCategory_RemoveMissing(t *testing.T) {
	cat := NewCategory("Programming")
	rep := &Report{}
	err := cat.Remove("Ghost", rep)

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !rep.HasErrors() {
		t.Error("expected an error signal for missing skill")
	}
}
