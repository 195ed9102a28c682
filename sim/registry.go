package sim

// Registry holds live entities in spawn order.
type Registry struct {
	entities []*Entity
}

// Append stores e at the end. It has no other effect.
func (r *Registry) Append(e *Entity) {
	r.entities = append(r.entities, e)
}

// Clear empties the registry and then calls teardown once for every entity it
// held, in spawn order. Teardown runs over a snapshot, so it may touch the
// registry freely. Clearing an empty registry does nothing.
func (r *Registry) Clear(teardown func(*Entity)) int {
	snapshot := r.entities
	r.entities = nil
	if teardown != nil {
		for _, e := range snapshot {
			teardown(e)
		}
	}
	return len(snapshot)
}

func (r *Registry) Len() int {
	return len(r.entities)
}

// Entities returns a copy of the registry contents.
func (r *Registry) Entities() []*Entity {
	return append([]*Entity(nil), r.entities...)
}

func (r *Registry) Each(fn func(*Entity)) {
	for _, e := range r.entities {
		fn(e)
	}
}
