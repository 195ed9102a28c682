package scene

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/shapedrop/ecs/component"
	"github.com/milk9111/shapedrop/engine"
)

type layer int

const (
	layerGround layer = iota
	layerShadow
	layerSolid
)

const shadowSegments = 16

var shadowColor = color.RGBA{A: 90}

// DrawItem is one flat primitive of a captured frame: a filled polygon, or a
// filled disc when Radius is non-zero.
type DrawItem struct {
	Node    engine.Node
	Layer   layer
	Depth   float64
	Points  [][2]float64
	CenterX float64
	CenterY float64
	Radius  float64
	Color   color.RGBA
}

// Renderer implements engine.Renderer. Render captures a draw list from the
// scene; Draw paints the latest list onto an ebiten image.
type Renderer struct {
	Background color.RGBA

	scene  *Scene
	camera *Camera
	light  Light

	items  []DrawItem
	frames int

	white *ebiten.Image
}

func NewRenderer(s *Scene, camera *Camera, light Light) *Renderer {
	return &Renderer{
		Background: color.RGBA{R: 24, G: 26, B: 33, A: 255},
		scene:      s,
		camera:     camera,
		light:      light,
	}
}

func (r *Renderer) Camera() *Camera {
	return r.camera
}

func (r *Renderer) Resize(width, height int) {
	r.camera.Resize(width, height)
}

// Frames returns how many times Render has run.
func (r *Renderer) Frames() int {
	return r.frames
}

// Items returns the draw list captured by the last Render, back to front.
func (r *Renderer) Items() []DrawItem {
	return r.items
}

func (r *Renderer) Render() {
	r.frames++
	r.items = r.items[:0]

	w := r.scene.World()
	for _, e := range w.Query(component.SceneMemberComponent.Kind(), component.MeshComponent.Kind(), component.TransformComponent.Kind()) {
		mesh, _ := r.scene.Mesh(engine.Node(e))
		tr, _ := r.scene.Transform(engine.Node(e))
		if mesh.Geometry == nil || !finiteTransform(tr) {
			continue
		}
		n := engine.Node(e)

		switch mesh.Geometry.Kind {
		case engine.GeometryPlane:
			r.addPlane(n, tr, mesh.Material)
		case engine.GeometryBox:
			r.addBox(n, tr, mesh.Material)
		case engine.GeometrySphere:
			r.addSphere(n, tr, mesh.Material)
		}

		if shadow, ok := r.scene.Shadow(n); ok && shadow.Cast {
			r.addShadow(n, tr, mesh.Geometry.Kind)
		}
	}

	sort.SliceStable(r.items, func(i, j int) bool {
		if r.items[i].Layer != r.items[j].Layer {
			return r.items[i].Layer < r.items[j].Layer
		}
		return r.items[i].Depth > r.items[j].Depth
	})
}

func (r *Renderer) addPlane(n engine.Node, tr component.Transform, m *engine.Material) {
	pts, depth, ok := r.projectAll(tr, unitPlaneCorners[:])
	if !ok {
		return
	}
	normal := tr.Orientation.Rotate(engine.Vec3{0, 1, 0})
	r.items = append(r.items, DrawItem{Node: n, Layer: layerGround, Depth: depth, Points: pts, Color: r.light.Shade(m, normal)})
}

func (r *Renderer) addBox(n engine.Node, tr component.Transform, m *engine.Material) {
	for _, face := range unitCubeFaces {
		normal := tr.Orientation.Rotate(face.normal)
		corners := make([]engine.Vec3, 4)
		for i, idx := range face.corners {
			corners[i] = unitCubeCorners[idx]
		}
		center := worldPoint(tr, face.normal.Mul(0.5))
		if normal.Dot(center.Sub(r.camera.Eye)) >= 0 {
			continue
		}
		pts, depth, ok := r.projectAll(tr, corners)
		if !ok {
			continue
		}
		r.items = append(r.items, DrawItem{Node: n, Layer: layerSolid, Depth: depth, Points: pts, Color: r.light.Shade(m, normal)})
	}
}

func (r *Renderer) addSphere(n engine.Node, tr component.Transform, m *engine.Material) {
	x, y, depth, ok := r.camera.Project(tr.Position)
	if !ok {
		return
	}
	radius := tr.Scale.X() / 2 * r.camera.PixelsPerUnit(depth)
	toEye := r.camera.Eye.Sub(tr.Position)
	if toEye.Len() > 0 {
		toEye = toEye.Normalize()
	}
	r.items = append(r.items, DrawItem{Node: n, Layer: layerSolid, Depth: depth, CenterX: x, CenterY: y, Radius: radius, Color: r.light.Shade(m, toEye)})

	// lit cap offset toward the light
	lit := r.light.Direction.Mul(-1)
	hx, hy, _, ok := r.camera.Project(tr.Position.Add(lit.Mul(tr.Scale.X() * 0.2)))
	if !ok {
		return
	}
	r.items = append(r.items, DrawItem{Node: n, Layer: layerSolid, Depth: depth - 1e-6, CenterX: hx, CenterY: hy, Radius: radius * 0.55, Color: r.light.Shade(m, lit)})
}

func (r *Renderer) addShadow(n engine.Node, tr component.Transform, kind engine.GeometryKind) {
	center, ok := r.light.ShadowPoint(tr.Position)
	if !ok {
		return
	}
	radius := tr.Scale.X() / 2
	if kind == engine.GeometryBox {
		radius = math.Max(tr.Scale.X(), tr.Scale.Z()) / 2
	}
	ring := make([]engine.Vec3, shadowSegments)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / shadowSegments
		ring[i] = center.Add(engine.Vec3{math.Cos(a) * radius, 0, math.Sin(a) * radius})
	}
	pts, depth, ok := r.projectPolygon(ring)
	if !ok {
		return
	}
	r.items = append(r.items, DrawItem{Node: n, Layer: layerShadow, Depth: depth, Points: pts, Color: shadowColor})
}

// projectPolygon projects a convex polygon of world points, clipped to the
// near plane. depth is the mean view depth of the visible part.
func (r *Renderer) projectPolygon(world []engine.Vec3) ([][2]float64, float64, bool) {
	vp := r.camera.ViewProjection()
	clip := make([]mgl64.Vec4, len(world))
	for i, p := range world {
		clip[i] = vp.Mul4x1(p.Vec4(1))
	}
	clip = r.camera.clipNear(clip)
	if len(clip) < 3 {
		return nil, 0, false
	}

	pts := make([][2]float64, len(clip))
	var depth float64
	for i, c := range clip {
		x, y := r.camera.toScreen(c)
		pts[i] = [2]float64{x, y}
		depth += c.W()
	}
	return pts, depth / float64(len(clip)), true
}

func (r *Renderer) projectAll(tr component.Transform, local []engine.Vec3) ([][2]float64, float64, bool) {
	world := make([]engine.Vec3, len(local))
	for i, l := range local {
		world[i] = worldPoint(tr, l)
	}
	return r.projectPolygon(world)
}

// finiteTransform is false for bodies that blew up, e.g. zero-size shapes
// whose zero moment drives the solver to NaN.
func finiteTransform(tr component.Transform) bool {
	vals := []float64{tr.Orientation.W}
	for i := range 3 {
		vals = append(vals, tr.Position[i], tr.Scale[i], tr.Orientation.V[i])
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func worldPoint(tr component.Transform, local engine.Vec3) engine.Vec3 {
	scaled := engine.Vec3{local.X() * tr.Scale.X(), local.Y() * tr.Scale.Y(), local.Z() * tr.Scale.Z()}
	return tr.Position.Add(tr.Orientation.Rotate(scaled))
}

// Draw paints the draw list captured by the last Render.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.Background)
	for _, it := range r.items {
		if it.Radius > 0 {
			vector.FillCircle(screen, float32(it.CenterX), float32(it.CenterY), float32(it.Radius), it.Color, true)
			continue
		}
		r.fillPolygon(screen, it.Points, it.Color)
	}
}

func (r *Renderer) fillPolygon(screen *ebiten.Image, pts [][2]float64, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255

	verts := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		verts[i] = ebiten.Vertex{
			DstX:   float32(p[0]),
			DstY:   float32(p[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
	indices := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(verts, indices, r.white, nil)
}
