package sim

import (
	"fmt"
	"strings"

	"github.com/milk9111/shapedrop/engine"
)

type Kind int

const (
	KindSphere Kind = iota
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sphere":
		return KindSphere, nil
	case "box":
		return KindBox, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Entity pairs one scene node with one physics body. The pairing is fixed for
// the entity's lifetime.
type Entity struct {
	Kind Kind
	// Dimensions holds the radius in X for spheres, and width, height and
	// depth for boxes.
	Dimensions engine.Vec3
	Node       engine.Node
	Body       engine.Body

	scale       engine.Vec3
	orientation engine.Quat
}

// Scale is the node scale that sizes the shared unit geometry to Dimensions.
func (e *Entity) Scale() engine.Vec3 {
	return e.scale
}

func (e *Entity) Position() engine.Vec3 {
	return e.Body.Position()
}

func geometryScale(kind Kind, dims engine.Vec3) engine.Vec3 {
	if kind == KindSphere {
		d := dims.X() * 2
		return engine.Vec3{d, d, d}
	}
	return dims
}

func physicsShape(kind Kind, dims engine.Vec3) (engine.Shape, error) {
	switch kind {
	case KindSphere:
		return engine.Sphere{Radius: dims.X()}, nil
	case KindBox:
		return engine.Box{HalfExtents: dims.Mul(0.5)}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
