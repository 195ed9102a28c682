package engine

// CollisionEvent reports the first contact between a body and another body or
// static geometry. Other is nil for static geometry.
type CollisionEvent struct {
	Body  Body
	Other Body
	// ImpactSpeed is the magnitude of the relative velocity along the contact normal.
	ImpactSpeed float64
	Normal      Vec3
}

// CollisionListener receives collision events during a physics step. Listeners
// are compared by identity, so implementations should be pointer types.
type CollisionListener interface {
	OnCollision(evt CollisionEvent)
}
