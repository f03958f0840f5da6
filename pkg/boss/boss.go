// Package boss holds the static boss registry. Bosses are referenced by
// id from rooms and combat sessions; the registry is the single owner
// of boss definitions.
package boss

import "fmt"

// Skill is one attack in a boss's repertoire. Selection during combat
// is uniform over the set; order carries no meaning.
type Skill struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Damage int    `json:"damage" yaml:"damage"`

	// Hint flavors the narration of the skill; it is never shown raw.
	Hint string `json:"taunt_hint,omitempty" yaml:"taunt_hint,omitempty"`
}

// Boss is a static boss definition. Current HP lives in world state and
// combat sessions, never here.
type Boss struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	MaxHP  int     `json:"max_hp" yaml:"max_hp"`
	Skills []Skill `json:"skills" yaml:"skills"`

	// Voice references the synthesis profile for pre-generated skill audio.
	Voice string `json:"voice,omitempty" yaml:"voice,omitempty"`
}

// Validate checks structural invariants of a boss definition.
func (b *Boss) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("boss has no id")
	}
	if b.Name == "" {
		return fmt.Errorf("boss %q has no name", b.ID)
	}
	if b.MaxHP <= 0 {
		return fmt.Errorf("boss %q has non-positive max hp", b.ID)
	}
	if len(b.Skills) == 0 {
		return fmt.Errorf("boss %q has no skills", b.ID)
	}
	seen := make(map[string]bool, len(b.Skills))
	for _, s := range b.Skills {
		if s.ID == "" {
			return fmt.Errorf("boss %q has a skill with no id", b.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("boss %q has duplicate skill id %q", b.ID, s.ID)
		}
		seen[s.ID] = true
		if s.Damage < 0 {
			return fmt.Errorf("boss %q skill %q has negative damage", b.ID, s.ID)
		}
	}
	return nil
}

// Registry is the read-only boss lookup.
type Registry struct {
	bosses map[string]*Boss
	order  []string
}

// NewRegistry validates and indexes boss definitions.
func NewRegistry(bosses []Boss) (*Registry, error) {
	r := &Registry{bosses: make(map[string]*Boss, len(bosses))}
	for idx := range bosses {
		b := bosses[idx]
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, ok := r.bosses[b.ID]; ok {
			return nil, fmt.Errorf("duplicate boss id %q", b.ID)
		}
		r.bosses[b.ID] = &b
		r.order = append(r.order, b.ID)
	}
	return r, nil
}

// Get returns the boss definition for id.
func (r *Registry) Get(id string) (*Boss, bool) {
	b, ok := r.bosses[id]
	return b, ok
}

// All returns every boss in definition order.
func (r *Registry) All() []*Boss {
	out := make([]*Boss, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bosses[id])
	}
	return out
}
