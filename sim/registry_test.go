package sim

import "testing"

func TestRegistryClear(t *testing.T) {
	cases := []struct {
		name  string
		count int
	}{
		{"empty", 0},
		{"one", 1},
		{"many", 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var r Registry
			var want []*Entity
			for i := 0; i < c.count; i++ {
				e := &Entity{}
				r.Append(e)
				want = append(want, e)
			}

			var torn []*Entity
			removed := r.Clear(func(e *Entity) {
				if r.Len() != 0 {
					t.Fatalf("registry must be empty while tearing down")
				}
				torn = append(torn, e)
			})
			if removed != c.count || len(torn) != c.count {
				t.Fatalf("expected %d teardowns, got %d (returned %d)", c.count, len(torn), removed)
			}
			for i := range want {
				if torn[i] != want[i] {
					t.Fatalf("teardown %d out of spawn order", i)
				}
			}

			if r.Clear(func(*Entity) { t.Fatalf("second clear must not tear down") }) != 0 {
				t.Fatalf("second clear reported removals")
			}
		})
	}
}

func TestRegistryEntitiesIsCopy(t *testing.T) {
	var r Registry
	a, b := &Entity{}, &Entity{}
	r.Append(a)
	r.Append(b)

	got := r.Entities()
	got[0] = nil
	if r.Entities()[0] != a {
		t.Fatalf("mutating the copy changed the registry")
	}

	var seen []*Entity
	r.Each(func(e *Entity) { seen = append(seen, e) })
	if len(seen) != 2 || seen[0] != a || seen[1] != b {
		t.Fatalf("Each out of order: %v", seen)
	}
}
