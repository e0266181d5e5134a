package skill

// Category groups skills under a name. Skills are keyed by name and listed
// in insertion order.
type Category struct {
	Name string

	skills map[string]*Skill
	order  []string
}

// NewCategory returns an empty category.
func NewCategory(name string) *Category {
	return &Category{Name: name, skills: make(map[string]*Skill)}
}

// Add inserts a skill, overwriting any existing skill with the same name.
// An overwrite is reported as a warning signal; the add still proceeds.
func (c *Category) Add(s *Skill, rep *Report) {
	if _, exists := c.skills[s.Name]; exists {
		rep.Warnf("Skill %q already exists in category %q.", s.Name, c.Name)
	} else {
		c.order = append(c.order, s.Name)
	}
	c.skills[s.Name] = s
	rep.Successf("Added skill %q to category %q.", s.Name, c.Name)
}

// Get returns the skill with the given name, or nil if absent.
func (c *Category) Get(name string) *Skill {
	return c.skills[name]
}

// Remove deletes the named skill. A missing skill is reported as an error
// signal and returned as a NotFoundError; the caller is expected to
// continue either way.
func (c *Category) Remove(name string, rep *Report) error {
	if _, ok := c.skills[name]; !ok {
		rep.Errorf("Skill %q not found in category %q.", name, c.Name)
		return &NotFoundError{Kind: "skill", Name: name}
	}
	delete(c.skills, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	rep.Successf("Removed skill %q from category %q.", name, c.Name)
	return nil
}

// Skills returns the category's skills in insertion order.
func (c *Category) Skills() []*Skill {
	out := make([]*Skill, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.skills[name])
	}
	return out
}

// Len returns the number of skills in the category.
func (c *Category) Len() int { return len(c.skills) }
