package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/shapedrop/engine"
)

type fakeBody struct {
	pos       engine.Vec3
	orient    engine.Quat
	listeners []engine.CollisionListener
}

func (b *fakeBody) Position() engine.Vec3    { return b.pos }
func (b *fakeBody) Orientation() engine.Quat { return b.orient }
func (b *fakeBody) Velocity() engine.Vec3    { return engine.Vec3{} }

func (b *fakeBody) AddCollisionListener(l engine.CollisionListener) {
	b.listeners = append(b.listeners, l)
}

func (b *fakeBody) RemoveCollisionListener(l engine.CollisionListener) {
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

type stepCall struct {
	fixed, delta float64
	maxSubSteps  int
}

// fakePhysics moves every body down by delta and spins it about Z on each step.
type fakePhysics struct {
	created []*fakeBody
	bodies  map[*fakeBody]bool
	steps   []stepCall
	failErr error
	log     *[]string
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{bodies: make(map[*fakeBody]bool)}
}

func (p *fakePhysics) CreateBody(_ float64, _ engine.Shape, _ *engine.ContactMaterial, position engine.Vec3) (engine.Body, error) {
	if p.failErr != nil {
		return nil, p.failErr
	}
	b := &fakeBody{pos: position, orient: mgl64.QuatIdent()}
	p.created = append(p.created, b)
	return b, nil
}

func (p *fakePhysics) AddBody(b engine.Body) {
	p.bodies[b.(*fakeBody)] = true
}

func (p *fakePhysics) RemoveBody(b engine.Body) {
	delete(p.bodies, b.(*fakeBody))
}

func (p *fakePhysics) Step(fixed, delta float64, maxSubSteps int) int {
	p.steps = append(p.steps, stepCall{fixed, delta, maxSubSteps})
	if p.log != nil {
		*p.log = append(*p.log, "step")
	}
	for b := range p.bodies {
		b.pos = b.pos.Sub(engine.Vec3{0, delta, 0})
		b.orient = mgl64.QuatRotate(delta, engine.Vec3{0, 0, 1}).Mul(b.orient)
	}
	return 1
}

type fakeNode struct {
	geometry *engine.Geometry
	material *engine.Material
	pos      engine.Vec3
	orient   engine.Quat
	scale    engine.Vec3
	cast     bool
	sets     int
}

type fakeScene struct {
	next    engine.Node
	nodes   map[engine.Node]*fakeNode
	inScene map[engine.Node]bool
	log     *[]string
}

func newFakeScene() *fakeScene {
	return &fakeScene{nodes: make(map[engine.Node]*fakeNode), inScene: make(map[engine.Node]bool)}
}

func (s *fakeScene) CreateMesh(g *engine.Geometry, m *engine.Material) engine.Node {
	s.next++
	s.nodes[s.next] = &fakeNode{geometry: g, material: m}
	return s.next
}

func (s *fakeScene) SetTransform(n engine.Node, pos engine.Vec3, orient engine.Quat, scale engine.Vec3) {
	node := s.nodes[n]
	node.pos, node.orient, node.scale = pos, orient, scale
	node.sets++
	if s.log != nil {
		*s.log = append(*s.log, "sync")
	}
}

func (s *fakeScene) SetCastShadow(n engine.Node, cast bool) { s.nodes[n].cast = cast }
func (s *fakeScene) AddToScene(n engine.Node)               { s.inScene[n] = true }
func (s *fakeScene) RemoveFromScene(n engine.Node)          { delete(s.inScene, n) }

type recordingSound struct {
	calls []string
}

func (s *recordingSound) Play()  { s.calls = append(s.calls, "play") }
func (s *recordingSound) Reset() { s.calls = append(s.calls, "reset") }

func (s *recordingSound) plays() int {
	n := 0
	for _, c := range s.calls {
		if c == "play" {
			n++
		}
	}
	return n
}

type recordingStage struct {
	name string
	log  *[]string
}

func (r *recordingStage) Update() { *r.log = append(*r.log, r.name) }
func (r *recordingStage) Render() { *r.log = append(*r.log, r.name) }
