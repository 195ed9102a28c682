package ecs

import (
	"testing"

	"github.com/milk9111/shapedrop/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_create_destroy_middle", 3, 1, 2},
		{"none_destroy", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
			}
			if w.Len() != c.wantAlive {
				t.Fatalf("expected %d alive, got %d", c.wantAlive, w.Len())
			}
		})
	}
}

func TestWorldReusesSlotWithNewGeneration(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.DestroyEntity(first)
	second := w.CreateEntity()

	if first.id() != second.id() {
		t.Fatalf("expected slot reuse, got ids %d and %d", first.id(), second.id())
	}
	if first == second {
		t.Fatalf("recycled handle must differ from the stale one")
	}
	if w.IsAlive(first) {
		t.Fatalf("stale handle reported alive")
	}
	if !w.IsAlive(second) {
		t.Fatalf("new handle reported dead")
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity must be invalid")
	}
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
				if Has(w, e3, h2) {
					t.Fatalf("e3 should not have string component")
				}
			},
		},
		{
			name:  "overwrite_int",
			setup: func() error { return Add(w, e1, h1, 11) },
			check: func(t *testing.T) {
				if v, _ := Get(w, e1, h1); v != 11 {
					t.Fatalf("expected 11, got %d", v)
				}
			},
		},
		{
			name:  "query_intersection",
			setup: func() error { return Add(w, e3, h1, 3) },
			check: func(t *testing.T) {
				got := w.Query(h1.Kind(), h2.Kind())
				if len(got) != 1 || got[0] != e1 {
					t.Fatalf("expected only e1, got %v", got)
				}
				if first, ok := w.First(h2.Kind()); !ok || first != e1 {
					t.Fatalf("expected First to be e1, got %v ok=%v", first, ok)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestWorldDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[float64]()

	e := w.CreateEntity()
	if err := Add(w, e, h, 1.5); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(e)

	if _, ok := Get(w, e, h); ok {
		t.Fatalf("component readable through a dead handle")
	}
	if got := w.Query(h.Kind()); len(got) != 0 {
		t.Fatalf("query returned destroyed entity: %v", got)
	}
	if err := Add(w, e, h, 2); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}

	// The recycled slot must start without the old component.
	next := w.CreateEntity()
	if Has(w, next, h) {
		t.Fatalf("recycled entity inherited a component")
	}
}

func TestForEachMutatesInPlace(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 3; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, h, i); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	ForEach(w, h, func(_ Entity, v *int) {
		*v *= 10
	})

	sum := 0
	ForEach(w, h, func(_ Entity, v *int) {
		sum += *v
	})
	if sum != 30 {
		t.Fatalf("expected 30, got %d", sum)
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()
	e := w.CreateEntity()
	_ = Add(w, e, h, "x")

	if !Remove(w, e, h) {
		t.Fatalf("expected remove to report true")
	}
	if Remove(w, e, h) {
		t.Fatalf("expected second remove to report false")
	}
	if !w.IsAlive(e) {
		t.Fatalf("removing a component must not kill the entity")
	}
}
