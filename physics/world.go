// Package physics adapts a Chipmunk space to the engine.PhysicsWorld contract.
//
// Chipmunk is a 2D engine: bodies move in the vertical X/Y plane and each body
// keeps the Z it was created with. Orientation is the body angle expressed as a
// rotation about +Z.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/shapedrop/engine"
	"github.com/milk9111/shapedrop/logger"
)

const (
	collisionTypeBody cp.CollisionType = iota + 1
	collisionTypeGround
)

var (
	ErrInvalidMass      = errors.New("physics: mass must be positive")
	ErrUnsupportedShape = errors.New("physics: unsupported shape")
	ErrForeignBody      = errors.New("physics: body belongs to another world")
)

const solverIterations = 20

// Options configures a World.
type Options struct {
	Gravity       float64
	CollisionSlop float64
}

func DefaultOptions() Options {
	return Options{
		Gravity:       -9.82,
		CollisionSlop: 0.002,
	}
}

// World owns the Chipmunk space and every body added to it.
type World struct {
	space         *cp.Space
	handlersReady bool

	bodies map[*cp.Body]*Body
	ground []*cp.Shape

	pending     []contact
	accumulator float64
	time        float64
	steps       int
}

type contact struct {
	a, b   *Body
	speed  float64
	normal cp.Vector
}

// NewWorld creates an empty world.
func NewWorld(opts Options) *World {
	space := cp.NewSpace()
	space.Iterations = solverIterations
	space.SetGravity(cp.Vector{X: 0, Y: opts.Gravity})
	if opts.CollisionSlop > 0 {
		space.SetCollisionSlop(opts.CollisionSlop)
	}

	w := &World{
		space:  space,
		bodies: make(map[*cp.Body]*Body),
	}
	w.setupHandlers()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddGround adds a static floor along y=0 spanning halfWidth either side of x=0.
func (w *World) AddGround(halfWidth float64, material *engine.ContactMaterial) {
	if w == nil || w.space == nil {
		return
	}
	shape := cp.NewSegment(w.space.StaticBody, cp.Vector{X: -halfWidth, Y: 0}, cp.Vector{X: halfWidth, Y: 0}, 0)
	applyMaterial(shape, material)
	shape.SetCollisionType(collisionTypeGround)
	w.space.AddShape(shape)
	w.ground = append(w.ground, shape)
}

// NewBody builds a dynamic body at position. The body is not simulated until
// AddBody is called.
func (w *World) NewBody(mass float64, shape engine.Shape, material *engine.ContactMaterial, position engine.Vec3) (*Body, error) {
	if mass <= 0 || math.IsNaN(mass) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMass, mass)
	}

	var (
		cpBody  *cp.Body
		cpShape *cp.Shape
	)
	switch s := shape.(type) {
	case engine.Sphere:
		cpBody = cp.NewBody(mass, cp.MomentForCircle(mass, 0, s.Radius, cp.Vector{}))
		cpShape = cp.NewCircle(cpBody, s.Radius, cp.Vector{})
	case engine.Box:
		width := s.HalfExtents.X() * 2
		height := s.HalfExtents.Y() * 2
		cpBody = cp.NewBody(mass, cp.MomentForBox(mass, width, height))
		cpShape = cp.NewBox(cpBody, width, height, 0)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, shape)
	}

	cpBody.SetPosition(cp.Vector{X: position.X(), Y: position.Y()})
	cpBody.SetAngle(0)
	cpBody.SetAngularVelocity(0)
	applyMaterial(cpShape, material)
	cpShape.SetCollisionType(collisionTypeBody)

	b := &Body{
		world: w,
		body:  cpBody,
		shape: cpShape,
		kind:  shape,
		z:     position.Z(),
	}
	return b, nil
}

// CreateBody implements engine.PhysicsWorld.
func (w *World) CreateBody(mass float64, shape engine.Shape, material *engine.ContactMaterial, position engine.Vec3) (engine.Body, error) {
	b, err := w.NewBody(mass, shape, material, position)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// AddBody starts simulating b. Adding a body twice is a no-op.
func (w *World) AddBody(b engine.Body) {
	body, err := w.own(b)
	if err != nil {
		logger.Warn("physics: add body", zap.Error(err))
		return
	}
	if body == nil || w.Contains(body) {
		return
	}
	w.space.AddBody(body.body)
	w.space.AddShape(body.shape)
	w.bodies[body.body] = body
}

// RemoveBody stops simulating b. Bodies the world does not hold are ignored.
func (w *World) RemoveBody(b engine.Body) {
	body, err := w.own(b)
	if err != nil || body == nil || !w.Contains(body) {
		return
	}
	w.space.RemoveShape(body.shape)
	w.space.RemoveBody(body.body)
	delete(w.bodies, body.body)
}

// Contains reports whether b is being simulated by w.
func (w *World) Contains(b *Body) bool {
	if w == nil || b == nil {
		return false
	}
	_, ok := w.bodies[b.body]
	return ok
}

// BodyCount returns the number of simulated dynamic bodies.
func (w *World) BodyCount() int {
	if w == nil {
		return 0
	}
	return len(w.bodies)
}

// Time returns the accumulated real time passed to Step.
func (w *World) Time() float64 {
	return w.time
}

// Steps returns the number of fixed steps taken so far.
func (w *World) Steps() int {
	return w.steps
}

func (w *World) own(b engine.Body) (*Body, error) {
	if w == nil || w.space == nil {
		return nil, errors.New("physics: nil world")
	}
	body, ok := b.(*Body)
	if !ok || body == nil {
		return nil, nil
	}
	if body.world != w {
		return nil, ErrForeignBody
	}
	return body, nil
}

func applyMaterial(shape *cp.Shape, material *engine.ContactMaterial) {
	m := engine.DefaultContactMaterial()
	if material != nil {
		m = *material
	}
	// Chipmunk multiplies the coefficients of both shapes in a contact, so each
	// side carries the square root of the pairwise value.
	shape.SetFriction(math.Sqrt(math.Max(m.Friction, 0)))
	shape.SetElasticity(math.Sqrt(math.Max(m.Restitution, 0)))
}
