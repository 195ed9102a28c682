// Package engine holds the contracts between the simulation loop and the
// collaborators it drives: the physics world, the scene graph, the renderer,
// audio, and the host frame scheduler.
package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

type (
	Vec3 = mgl64.Vec3
	Quat = mgl64.Quat
)

// Node is a scene graph handle. The zero Node is invalid.
type Node uint64

// Body is a rigid body owned by a PhysicsWorld.
type Body interface {
	Position() Vec3
	Orientation() Quat
	Velocity() Vec3
	AddCollisionListener(l CollisionListener)
	RemoveCollisionListener(l CollisionListener)
}

// PhysicsWorld creates, owns and steps bodies.
type PhysicsWorld interface {
	CreateBody(mass float64, shape Shape, material *ContactMaterial, position Vec3) (Body, error)
	AddBody(b Body)
	// RemoveBody is a no-op for bodies the world does not hold.
	RemoveBody(b Body)
	// Step advances by whole fixed steps, using delta as the real elapsed time and
	// running at most maxSubSteps steps per call. It returns the steps taken.
	Step(fixedStep, delta float64, maxSubSteps int) int
}

// SceneGraph creates visual nodes and tracks which of them are in the scene.
type SceneGraph interface {
	CreateMesh(geometry *Geometry, material *Material) Node
	SetTransform(n Node, position Vec3, orientation Quat, scale Vec3)
	SetCastShadow(n Node, cast bool)
	AddToScene(n Node)
	// RemoveFromScene is a no-op for nodes that are not in the scene.
	RemoveFromScene(n Node)
}

// Renderer draws the current scene from the current camera.
type Renderer interface {
	Render()
}

// Controls advances view controls once per frame.
type Controls interface {
	Update()
}

// Sound is a fire-and-forget clip.
type Sound interface {
	Play()
	Reset()
}

// Scheduler runs callback once on the next host frame.
type Scheduler interface {
	RequestNextFrame(callback func())
}

// Clock reports monotonic time elapsed since it started.
type Clock interface {
	Elapsed() time.Duration
}
