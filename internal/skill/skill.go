package skill

import (
	"fmt"
	"strings"
)

// Kind discriminates the two skill variants. Its values double as the
// "type" tag written to the data file.
type Kind string

const (
	// Soft skills render as a mana bar proportional to level.
	Soft Kind = "SoftSkill"
	// Hard skills render as an XP tree that grows through fixed stages.
	Hard Kind = "HardSkill"
)

// ParseKind converts a user-supplied string to a Kind, returning false if
// invalid. It accepts both the wire tags and short CLI spellings.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soft", "softskill", "soft-skill":
		return Soft, true
	case "hard", "hardskill", "hard-skill":
		return Hard, true
	default:
		return "", false
	}
}

// xpStage is one entry of the XP tree growth table.
type xpStage struct {
	Threshold int
	Name      string
}

// xpStages maps level thresholds to growth stages, ascending. A hard
// skill's stage is the name of the highest threshold at or below its level.
var xpStages = []xpStage{
	{0, "Seed"},
	{10, "Sapling"},
	{30, "Young Tree"},
	{60, "Mature Tree"},
	{90, "Ancient Tree"},
}

// Skill is a single tracked capability. The zero value is not usable;
// construct with New so the level invariant holds for the whole lifetime.
type Skill struct {
	Name        string
	Level       int
	Description string
	Kind        Kind
}

// New constructs a skill, validating that the name is non-empty and the
// level is within [0,100].
func New(kind Kind, name string, level int, description string) (*Skill, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Value: name, Reason: "must not be empty"}
	}
	if kind != Soft && kind != Hard {
		return nil, &ValidationError{Field: "kind", Value: string(kind), Reason: "must be SoftSkill or HardSkill"}
	}
	if err := validateLevel(level); err != nil {
		return nil, err
	}
	return &Skill{Name: name, Level: level, Description: description, Kind: kind}, nil
}

// UpdateLevel replaces the level after the same bound check as New. It is
// the only mutator; a rejected update leaves the skill unchanged.
func (s *Skill) UpdateLevel(newLevel int) error {
	if err := validateLevel(newLevel); err != nil {
		return err
	}
	s.Level = newLevel
	return nil
}

// ManaValue returns the mana bar value of a soft skill. It is derived from
// the level on every call, never stored.
func (s *Skill) ManaValue() int {
	return s.Level
}

// Stage returns the XP tree stage of a hard skill: the name of the highest
// crossed threshold. The 0 entry makes "Unknown" unreachable in practice.
func (s *Skill) Stage() string {
	stage := "Unknown"
	for _, st := range xpStages {
		if s.Level >= st.Threshold {
			stage = st.Name
		} else {
			break
		}
	}
	return stage
}

// VisualMetaphor renders the variant-specific level summary: a 10-segment
// mana bar for soft skills, the XP tree stage for hard skills.
func (s *Skill) VisualMetaphor() string {
	switch s.Kind {
	case Soft:
		mana := s.ManaValue()
		filled := mana / 10
		return fmt.Sprintf("Mana: [%s%s] (%d%%)",
			strings.Repeat("█", filled), strings.Repeat("░", 10-filled), mana)
	case Hard:
		return fmt.Sprintf("XP Tree: %s (Level: %d)", s.Stage(), s.Level)
	default:
		return fmt.Sprintf("Level: %d", s.Level)
	}
}
