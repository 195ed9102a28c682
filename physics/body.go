package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/shapedrop/engine"
)

var zAxis = mgl64.Vec3{0, 0, 1}

// Body is a dynamic rigid body. It implements engine.Body.
type Body struct {
	world *World
	body  *cp.Body
	shape *cp.Shape
	kind  engine.Shape
	z     float64

	listeners []engine.CollisionListener
}

func (b *Body) Position() engine.Vec3 {
	p := b.body.Position()
	return engine.Vec3{p.X, p.Y, b.z}
}

func (b *Body) Orientation() engine.Quat {
	return mgl64.QuatRotate(b.body.Angle(), zAxis)
}

func (b *Body) Velocity() engine.Vec3 {
	v := b.body.Velocity()
	return engine.Vec3{v.X, v.Y, 0}
}

// SetVelocity sets the linear velocity; Z is ignored.
func (b *Body) SetVelocity(v engine.Vec3) {
	b.body.SetVelocity(v.X(), v.Y())
}

func (b *Body) AngularVelocity() float64 {
	return b.body.AngularVelocity()
}

func (b *Body) SetAngularVelocity(w float64) {
	b.body.SetAngularVelocity(w)
}

// Shape returns the shape the body was created with.
func (b *Body) Shape() engine.Shape {
	return b.kind
}

// AddCollisionListener registers l. Registering the same listener twice is a no-op.
func (b *Body) AddCollisionListener(l engine.CollisionListener) {
	if l == nil {
		return
	}
	for _, existing := range b.listeners {
		if existing == l {
			return
		}
	}
	b.listeners = append(b.listeners, l)
}

func (b *Body) RemoveCollisionListener(l engine.CollisionListener) {
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registered collision listeners.
func (b *Body) ListenerCount() int {
	return len(b.listeners)
}

func (b *Body) dispatch(evt engine.CollisionEvent) {
	// snapshot so a listener may unregister itself
	listeners := append([]engine.CollisionListener(nil), b.listeners...)
	for _, l := range listeners {
		l.OnCollision(evt)
	}
}
