package item

import "fmt"

// Registry is the read-only item lookup, shared by reference after load.
type Registry struct {
	items    map[string]*Item
	order    []string
	sentinel string
}

// NewRegistry validates the item definitions and indexes them by id.
// Exactly one sentinel weapon is required.
func NewRegistry(items []Item) (*Registry, error) {
	r := &Registry{items: make(map[string]*Item, len(items))}

	for idx := range items {
		it := items[idx]
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, ok := r.items[it.ID]; ok {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		r.items[it.ID] = &it
		r.order = append(r.order, it.ID)
		if it.Sentinel {
			if r.sentinel != "" {
				return nil, fmt.Errorf("multiple sentinel weapons: %q and %q", r.sentinel, it.ID)
			}
			r.sentinel = it.ID
		}
	}

	if r.sentinel == "" {
		return nil, fmt.Errorf("no sentinel weapon defined")
	}
	return r, nil
}

// Get returns the item definition for id.
func (r *Registry) Get(id string) (*Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// SentinelID returns the id of the always-equipped default weapon.
func (r *Registry) SentinelID() string {
	return r.sentinel
}

// All returns every item in definition order.
func (r *Registry) All() []*Item {
	out := make([]*Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// ScatterIDs returns the ids of items eligible for first-run placement.
func (r *Registry) ScatterIDs() []string {
	var out []string
	for _, id := range r.order {
		if r.items[id].Scatter {
			out = append(out, id)
		}
	}
	return out
}

// Name returns the display name for id, or the id itself when unknown.
// Narration prompts should never fail on a stale id.
func (r *Registry) Name(id string) string {
	if it, ok := r.items[id]; ok {
		return it.Name
	}
	return id
}
