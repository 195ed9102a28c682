package scene

import "github.com/milk9111/shapedrop/engine"

const defaultSphereSegments = 24

func SphereGeometry(segments int) *engine.Geometry {
	if segments < 3 {
		segments = defaultSphereSegments
	}
	return &engine.Geometry{Kind: engine.GeometrySphere, Segments: segments}
}

func BoxGeometry() *engine.Geometry {
	return &engine.Geometry{Kind: engine.GeometryBox}
}

func PlaneGeometry() *engine.Geometry {
	return &engine.Geometry{Kind: engine.GeometryPlane}
}

var unitCubeCorners = [8]engine.Vec3{
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
	{0.5, 0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5},
}

type cubeFace struct {
	corners [4]int
	normal  engine.Vec3
}

// counter-clockwise when seen from outside
var unitCubeFaces = [6]cubeFace{
	{[4]int{4, 5, 6, 7}, engine.Vec3{0, 0, 1}},
	{[4]int{1, 0, 3, 2}, engine.Vec3{0, 0, -1}},
	{[4]int{5, 1, 2, 6}, engine.Vec3{1, 0, 0}},
	{[4]int{0, 4, 7, 3}, engine.Vec3{-1, 0, 0}},
	{[4]int{7, 6, 2, 3}, engine.Vec3{0, 1, 0}},
	{[4]int{0, 1, 5, 4}, engine.Vec3{0, -1, 0}},
}

var unitPlaneCorners = [4]engine.Vec3{
	{-0.5, 0, -0.5},
	{0.5, 0, -0.5},
	{0.5, 0, 0.5},
	{-0.5, 0, 0.5},
}
