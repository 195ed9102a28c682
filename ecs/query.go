package ecs

import (
	"sort"

	"github.com/milk9111/shapedrop/ecs/component"
)

// Query returns live entities that carry every listed kind, in slot order.
func (w *World) Query(kinds ...component.Kinded) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	ids := make([]int, 0, sets[0].Len())
outer:
	for _, id := range sets[0].denseEntities {
		for _, s := range sets[1:] {
			if !s.Has(id) {
				continue outer
			}
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-slot entity carrying kind.
func (w *World) First(kind component.Kinded) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
