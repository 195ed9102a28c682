package component

import "github.com/milk9111/shapedrop/engine"

// Mesh pairs shared geometry with a material.
type Mesh struct {
	Geometry *engine.Geometry
	Material *engine.Material
}

var MeshComponent = NewComponent[Mesh]()
