package engine

import "image/color"

// Shape is a physics collision shape.
type Shape interface {
	shape()
}

type Sphere struct {
	Radius float64
}

type Box struct {
	HalfExtents Vec3
}

func (Sphere) shape() {}
func (Box) shape()    {}

// ContactMaterial sets friction and restitution for contacts between bodies that
// share it.
type ContactMaterial struct {
	Name        string
	Friction    float64
	Restitution float64
}

// DefaultContactMaterial is the material every spawned body and the ground use.
func DefaultContactMaterial() ContactMaterial {
	return ContactMaterial{Name: "default", Friction: 0.1, Restitution: 0.7}
}

type GeometryKind int

const (
	GeometrySphere GeometryKind = iota
	GeometryBox
	GeometryPlane
)

func (k GeometryKind) String() string {
	switch k {
	case GeometrySphere:
		return "sphere"
	case GeometryBox:
		return "box"
	case GeometryPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Geometry is unit-sized and shared between every node of the same kind;
// nodes size it through their transform scale. Sphere geometry has diameter 1,
// box geometry is the unit cube, plane geometry is the unit square in XZ.
type Geometry struct {
	Kind     GeometryKind
	Segments int
}

// Material is the surface appearance of a mesh.
type Material struct {
	Color     color.RGBA
	Metalness float64
	Roughness float64
}
