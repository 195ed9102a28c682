package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/shapedrop/engine"
)

func countItems(items []DrawItem, n engine.Node, l layer) int {
	count := 0
	for _, it := range items {
		if it.Node == n && it.Layer == l {
			count++
		}
	}
	return count
}

func TestRendererCapturesDrawList(t *testing.T) {
	s := New()
	ground := s.AddGround(20, testMaterial())

	ball := s.CreateMesh(SphereGeometry(0), testMaterial())
	s.SetTransform(ball, engine.Vec3{-1, 2, 0}, mgl64.QuatIdent(), engine.Vec3{1, 1, 1})
	s.SetCastShadow(ball, true)
	s.AddToScene(ball)

	crate := s.CreateMesh(BoxGeometry(), testMaterial())
	s.SetTransform(crate, engine.Vec3{1, 0.5, 0}, mgl64.QuatIdent(), engine.Vec3{1, 1, 1})
	s.AddToScene(crate)

	hidden := s.CreateMesh(BoxGeometry(), testMaterial())
	s.SetTransform(hidden, engine.Vec3{0, 1, 0}, mgl64.QuatIdent(), engine.Vec3{1, 1, 1})

	r := NewRenderer(s, NewCamera(50, 800, 600), DefaultLight())
	r.Render()

	items := r.Items()
	if r.Frames() != 1 {
		t.Fatalf("expected one frame, got %d", r.Frames())
	}
	if countItems(items, ground, layerGround) != 1 {
		t.Fatalf("expected the ground polygon")
	}
	if countItems(items, ball, layerSolid) != 2 {
		t.Fatalf("expected sphere disc and highlight")
	}
	if countItems(items, ball, layerShadow) != 1 {
		t.Fatalf("expected the sphere shadow")
	}
	// a unit cube seen from above and in front shows between one and three faces
	if faces := countItems(items, crate, layerSolid); faces < 1 || faces > 3 {
		t.Fatalf("expected 1..3 visible box faces, got %d", faces)
	}
	if countItems(items, crate, layerShadow) != 0 {
		t.Fatalf("box without cast shadow produced a shadow")
	}
	for _, it := range items {
		if it.Node == hidden {
			t.Fatalf("node outside the scene was drawn")
		}
	}

	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.Layer > cur.Layer || (prev.Layer == cur.Layer && prev.Depth < cur.Depth) {
			t.Fatalf("draw list not sorted back to front at %d", i)
		}
	}
}

func TestRendererRebuildsEachFrame(t *testing.T) {
	s := New()
	n := s.CreateMesh(SphereGeometry(0), testMaterial())
	s.AddToScene(n)
	r := NewRenderer(s, NewCamera(50, 640, 480), DefaultLight())

	r.Render()
	before := len(r.Items())
	s.RemoveFromScene(n)
	r.Render()
	if len(r.Items()) >= before || len(r.Items()) != 0 {
		t.Fatalf("expected empty draw list after removal, got %d", len(r.Items()))
	}
	if r.Frames() != 2 {
		t.Fatalf("expected two frames, got %d", r.Frames())
	}
}

func TestRendererClipsGroundAtNearPlane(t *testing.T) {
	eyes := []struct {
		name string
		eye  engine.Vec3
	}{
		{"default", engine.Vec3{0, 4, 12}},
		{"behind", engine.Vec3{0, 4, -12}},
		{"side low", engine.Vec3{12, 1.5, 3}},
	}
	for _, tc := range eyes {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			ground := s.AddGround(40, testMaterial())
			cam := NewCamera(45, 1280, 720)
			cam.Eye = tc.eye
			r := NewRenderer(s, cam, DefaultLight())
			r.Render()

			var found *DrawItem
			for i, it := range r.Items() {
				if it.Node == ground && it.Layer == layerGround {
					found = &r.Items()[i]
				}
			}
			if found == nil {
				t.Fatalf("ground plane was not drawn")
			}
			if len(found.Points) < 3 || found.Depth < cam.Near {
				t.Fatalf("unexpected ground polygon %+v", *found)
			}
			for _, p := range found.Points {
				if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
					t.Fatalf("ground point not finite: %v", p)
				}
			}
		})
	}
}

func TestCameraClipNear(t *testing.T) {
	c := NewCamera(45, 640, 480)
	tests := []struct {
		name string
		poly []mgl64.Vec4
		want int
	}{
		{"all in front", []mgl64.Vec4{{0, 0, 0, 1}, {1, 0, 0, 1}, {0, 1, 0, 2}}, 3},
		{"one behind", []mgl64.Vec4{{0, 0, 0, 1}, {1, 0, 0, 1}, {0, 0, 0, -1}}, 4},
		{"all behind", []mgl64.Vec4{{0, 0, 0, -1}, {1, 0, 0, -2}, {0, 1, 0, 0}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.clipNear(tt.poly)
			if len(got) != tt.want {
				t.Fatalf("expected %d vertices, got %d: %v", tt.want, len(got), got)
			}
			for _, v := range got {
				if v.W() < c.Near {
					t.Fatalf("vertex %v behind the near plane", v)
				}
			}
		})
	}
}

func TestRendererSkipsNonFiniteTransforms(t *testing.T) {
	s := New()
	broken := s.CreateMesh(BoxGeometry(), testMaterial())
	s.SetTransform(broken, engine.Vec3{math.NaN(), math.NaN(), 0}, mgl64.QuatIdent(), engine.Vec3{1, 1, 1})
	s.SetCastShadow(broken, true)
	s.AddToScene(broken)

	healthy := s.CreateMesh(BoxGeometry(), testMaterial())
	s.SetTransform(healthy, engine.Vec3{0, 0.5, 0}, mgl64.QuatIdent(), engine.Vec3{1, 1, 1})
	s.AddToScene(healthy)

	r := NewRenderer(s, NewCamera(45, 1280, 720), DefaultLight())
	r.Render()

	for _, it := range r.Items() {
		if it.Node == broken {
			t.Fatalf("non-finite node was drawn: %+v", it)
		}
	}
	if countItems(r.Items(), healthy, layerSolid) == 0 {
		t.Fatalf("healthy box was not drawn")
	}
}
