package skill

import (
	"errors"
	"io/fs"
	"sort"

	"github.com/skillfolio-labs/skillfolio/internal/store"
)

// Store is the persistence backend the manager saves to and loads from.
// Read reports a missing file with an error wrapping fs.ErrNotExist.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Path() string
}

// Manager owns every category and persists the full state after each
// mutation. Construct once per session, call Load, then serve operations.
type Manager struct {
	store      Store
	categories map[string]*Category
	order      []string
}

// NewManager returns an empty manager backed by the given store.
func NewManager(st Store) *Manager {
	return &Manager{store: st, categories: make(map[string]*Category)}
}

// AddCategory creates an empty category and persists. Adding an existing
// name is a warning no-op that leaves the category untouched.
func (m *Manager) AddCategory(name string) (*Report, error) {
	rep := &Report{}
	if _, exists := m.categories[name]; exists {
		rep.Warnf("Category %q already exists.", name)
		return rep, nil
	}
	m.categories[name] = NewCategory(name)
	m.order = append(m.order, name)
	rep.Successf("Category %q added.", name)
	return rep, m.save(rep)
}

// GetCategory returns the named category, or nil if absent.
func (m *Manager) GetCategory(name string) *Category {
	return m.categories[name]
}

// RemoveCategory deletes the named category and persists. A missing
// category is an error signal, not a fatal condition.
func (m *Manager) RemoveCategory(name string) (*Report, error) {
	rep := &Report{}
	if _, ok := m.categories[name]; !ok {
		rep.Errorf("Category %q not found.", name)
		return rep, &NotFoundError{Kind: "category", Name: name}
	}
	delete(m.categories, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	rep.Successf("Category %q removed.", name)
	return rep, m.save(rep)
}

// Categories returns all categories in insertion order.
func (m *Manager) Categories() []*Category {
	out := make([]*Category, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.categories[name])
	}
	return out
}

// AddSkill constructs a skill and adds it to the named category, then
// persists. Name collisions overwrite with a warning; an invalid level or
// kind is a ValidationError and nothing is stored.
func (m *Manager) AddSkill(category string, kind Kind, name string, level int, description string) (*Report, error) {
	rep := &Report{}
	cat, ok := m.categories[category]
	if !ok {
		rep.Errorf("Category %q not found.", category)
		return rep, &NotFoundError{Kind: "category", Name: category}
	}
	s, err := New(kind, name, level, description)
	if err != nil {
		rep.Errorf("Error: %v", err)
		return rep, err
	}
	cat.Add(s, rep)
	return rep, m.save(rep)
}

// GetSkill returns the named skill from the named category, or nil when
// either is absent.
func (m *Manager) GetSkill(category, name string) *Skill {
	cat := m.categories[category]
	if cat == nil {
		return nil
	}
	return cat.Get(name)
}

// RemoveSkill deletes a skill from a category and persists.
func (m *Manager) RemoveSkill(category, name string) (*Report, error) {
	rep := &Report{}
	cat, ok := m.categories[category]
	if !ok {
		rep.Errorf("Category %q not found.", category)
		return rep, &NotFoundError{Kind: "category", Name: category}
	}
	if err := cat.Remove(name, rep); err != nil {
		return rep, err
	}
	return rep, m.save(rep)
}

// UpdateSkillLevel sets a skill's level and persists. An out-of-range
// level is a ValidationError and the skill keeps its previous level.
func (m *Manager) UpdateSkillLevel(category, name string, newLevel int) (*Report, error) {
	rep := &Report{}
	s := m.GetSkill(category, name)
	if s == nil {
		rep.Errorf("Skill %q not found in category %q.", name, category)
		return rep, &NotFoundError{Kind: "skill", Name: name}
	}
	if err := s.UpdateLevel(newLevel); err != nil {
		rep.Errorf("Error: %v", err)
		return rep, err
	}
	rep.Infof("Updated %q level to %d.", name, newLevel)
	return rep, m.save(rep)
}

// Save serializes the full state and writes it through the store.
func (m *Manager) Save() (*Report, error) {
	rep := &Report{}
	return rep, m.save(rep)
}

func (m *Manager) save(rep *Report) error {
	data, err := store.Encode(m.document())
	if err != nil {
		rep.Errorf("Error saving data: %v", err)
		return &PersistenceError{Op: "save", Path: m.store.Path(), Err: err}
	}
	if err := m.store.Write(data); err != nil {
		rep.Errorf("Error saving data: %v", err)
		return &PersistenceError{Op: "save", Path: m.store.Path(), Err: err}
	}
	rep.Successf("Skill data saved to %s", m.store.Path())
	return nil
}

// Load replaces the in-memory state with the persisted document. A missing
// file leaves the manager empty with an informational signal. A read or
// parse failure leaves the current state untouched. Records with an
// unrecognized type or an invalid level are skipped with a warning while
// the rest of the document loads.
func (m *Manager) Load() (*Report, error) {
	rep := &Report{}
	data, err := m.store.Read()
	if errors.Is(err, fs.ErrNotExist) {
		rep.Infof("No data file found at %s. Starting fresh.", m.store.Path())
		return rep, nil
	}
	if err != nil {
		rep.Errorf("Error loading data: %v", err)
		return rep, &PersistenceError{Op: "load", Path: m.store.Path(), Err: err}
	}
	doc, err := store.Decode(data)
	if err != nil {
		rep.Errorf("Error decoding JSON from %s: %v", m.store.Path(), err)
		return rep, &PersistenceError{Op: "load", Path: m.store.Path(), Err: err}
	}

	categories := make(map[string]*Category, len(doc))
	order := make([]string, 0, len(doc))

	// JSON objects carry no ordering, so categories load in sorted key
	// order for deterministic listings.
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, catName := range names {
		record := doc[catName]
		if record.Name != "" && record.Name != catName {
			rep.Warnf("Category %q declares name %q; using the key.", catName, record.Name)
		}
		cat := NewCategory(catName)
		for _, rec := range record.Skills {
			var kind Kind
			switch rec.Type {
			case string(Soft):
				kind = Soft
			case string(Hard):
				kind = Hard
			default:
				rep.Warnf("Unknown skill type %q for skill %q. Skipping.", rec.Type, rec.Name)
				continue
			}
			s, err := New(kind, rec.Name, rec.Level, rec.Description)
			if err != nil {
				rep.Warnf("Invalid skill record %q: %v. Skipping.", rec.Name, err)
				continue
			}
			cat.Add(s, &Report{}) // load feedback is summarized, not per skill
		}
		categories[catName] = cat
		order = append(order, catName)
	}

	m.categories = categories
	m.order = order
	rep.Successf("Skill data loaded from %s", m.store.Path())
	return rep, nil
}

// document projects the full state into the persisted document form.
func (m *Manager) document() store.Document {
	doc := make(store.Document, len(m.categories))
	for _, cat := range m.Categories() {
		rec := store.CategoryRecord{Name: cat.Name}
		for _, s := range cat.Skills() {
			rec.Skills = append(rec.Skills, store.SkillRecord{
				Name:        s.Name,
				Level:       s.Level,
				Description: s.Description,
				Type:        string(s.Kind),
			})
		}
		doc[cat.Name] = rec
	}
	return doc
}
