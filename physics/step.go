package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/shapedrop/engine"
)

// Step advances the world by whole fixed steps. delta is added to an
// accumulator and the number of steps taken is the accumulator rounded to the
// nearest whole step, capped at maxSubSteps. When the cap is hit the remaining
// backlog is dropped so a long stall cannot snowball into later frames.
// It returns the number of fixed steps taken.
func (w *World) Step(fixedStep, delta float64, maxSubSteps int) int {
	if w == nil || w.space == nil || fixedStep <= 0 {
		return 0
	}
	if delta < 0 || math.IsNaN(delta) {
		delta = 0
	}
	if maxSubSteps < 1 {
		maxSubSteps = 1
	}

	w.accumulator += delta
	n := int(math.Round(w.accumulator / fixedStep))
	if n < 0 {
		n = 0
	}
	if n > maxSubSteps {
		n = maxSubSteps
		w.accumulator = 0
	} else {
		w.accumulator -= float64(n) * fixedStep
	}

	for i := 0; i < n; i++ {
		w.space.Step(fixedStep)
		w.steps++
		w.flushContacts()
	}
	w.time += delta
	return n
}

func (w *World) setupHandlers() {
	if w.handlersReady || w.space == nil {
		return
	}

	bodyHandler := w.space.NewCollisionHandler(collisionTypeBody, collisionTypeBody)
	bodyHandler.UserData = w
	bodyHandler.BeginFunc = beginContact

	groundHandler := w.space.NewCollisionHandler(collisionTypeBody, collisionTypeGround)
	groundHandler.UserData = w
	groundHandler.BeginFunc = beginContact

	w.handlersReady = true
}

// beginContact queues the impact of a new contact. Listeners run after the
// space step finishes so they never observe a half-solved space.
func beginContact(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
	world, ok := userData.(*World)
	if !ok || world == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	a := world.bodies[shapeA.Body()]
	b := world.bodies[shapeB.Body()]
	if a == nil && b == nil {
		return true
	}

	var va, vb cp.Vector
	if a != nil {
		va = a.body.Velocity()
	}
	if b != nil {
		vb = b.body.Velocity()
	}
	n := arb.Normal()
	speed := math.Abs(vb.Sub(va).Dot(n))

	world.pending = append(world.pending, contact{a: a, b: b, speed: speed, normal: n})
	return true
}

func (w *World) flushContacts() {
	if len(w.pending) == 0 {
		return
	}
	pending := w.pending
	w.pending = nil
	for _, c := range pending {
		normal := engine.Vec3{c.normal.X, c.normal.Y, 0}
		if c.a != nil {
			c.a.dispatch(engine.CollisionEvent{Body: c.a, Other: asBody(c.b), ImpactSpeed: c.speed, Normal: normal})
		}
		if c.b != nil {
			c.b.dispatch(engine.CollisionEvent{Body: c.b, Other: asBody(c.a), ImpactSpeed: c.speed, Normal: normal.Mul(-1)})
		}
	}
}

// asBody keeps a nil *Body from becoming a non-nil interface.
func asBody(b *Body) engine.Body {
	if b == nil {
		return nil
	}
	return b
}
