package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/shapedrop/engine"
)

// Camera is a perspective camera looking from Eye at Target.
type Camera struct {
	FOV    float64 // vertical, radians
	Near   float64
	Far    float64
	Eye    engine.Vec3
	Target engine.Vec3
	Up     engine.Vec3

	width  float64
	height float64
}

func NewCamera(fovDegrees float64, width, height int) *Camera {
	c := &Camera{
		FOV:    mgl64.DegToRad(fovDegrees),
		Near:   0.1,
		Far:    1000,
		Eye:    engine.Vec3{0, 4, 12},
		Target: engine.Vec3{0, 1, 0},
		Up:     engine.Vec3{0, 1, 0},
	}
	c.Resize(width, height)
	return c
}

func (c *Camera) Resize(width, height int) {
	c.width = math.Max(1, float64(width))
	c.height = math.Max(1, float64(height))
}

func (c *Camera) Size() (float64, float64) {
	return c.width, c.height
}

func (c *Camera) Aspect() float64 {
	return c.width / c.height
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, c.Aspect(), c.Near, c.Far)
}

func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Project maps a world point to screen pixels. depth is the distance along the
// view direction; ok is false for points behind the near plane.
func (c *Camera) Project(p engine.Vec3) (x, y, depth float64, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() < c.Near {
		return 0, 0, 0, false
	}
	x, y = c.toScreen(clip)
	return x, y, clip.W(), true
}

// toScreen divides a clip-space point by w and maps it to pixels. w must be
// positive.
func (c *Camera) toScreen(clip mgl64.Vec4) (x, y float64) {
	ndc := clip.Vec3().Mul(1 / clip.W())
	return (ndc.X() + 1) / 2 * c.width, (1 - ndc.Y()) / 2 * c.height
}

// clipNear cuts a convex polygon in clip space against the plane w = Near.
// The result may be empty.
func (c *Camera) clipNear(poly []mgl64.Vec4) []mgl64.Vec4 {
	out := make([]mgl64.Vec4, 0, len(poly)+2)
	for i, cur := range poly {
		next := poly[(i+1)%len(poly)]
		curIn, nextIn := cur.W() >= c.Near, next.W() >= c.Near
		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			t := (c.Near - cur.W()) / (next.W() - cur.W())
			p := cur.Add(next.Sub(cur).Mul(t))
			p[3] = c.Near
			out = append(out, p)
		}
	}
	return out
}

// PixelsPerUnit is the on-screen size of one world unit at depth.
func (c *Camera) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return c.height / (2 * math.Tan(c.FOV/2) * depth)
}
