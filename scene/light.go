package scene

import (
	"image/color"
	"math"

	"github.com/milk9111/shapedrop/common"
	"github.com/milk9111/shapedrop/engine"
)

// Light is an ambient term plus one directional light. Direction points from
// the light into the scene.
type Light struct {
	Ambient   float64
	Intensity float64
	Direction engine.Vec3
}

func DefaultLight() Light {
	return Light{
		Ambient:   0.35,
		Intensity: 0.8,
		Direction: engine.Vec3{-0.4, -1, -0.3}.Normalize(),
	}
}

// Shade returns the material colour lit for a surface with the given normal.
func (l Light) Shade(m *engine.Material, normal engine.Vec3) color.RGBA {
	base := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	metal, rough := 0.0, 1.0
	if m != nil {
		base = m.Color
		metal, rough = m.Metalness, m.Roughness
	}

	diffuse := math.Max(0, -normal.Dot(l.Direction))
	factor := l.Ambient + l.Intensity*diffuse*(1-0.5*metal)
	// a smooth surface facing the light picks up a highlight
	factor += (1 - rough) * math.Pow(diffuse, 8) * 0.4

	scale := func(v uint8) uint8 {
		return uint8(common.Clamp(float64(v)*factor, 0, 255))
	}
	return color.RGBA{R: scale(base.R), G: scale(base.G), B: scale(base.B), A: base.A}
}

// ShadowPoint projects p along the light direction onto the plane y=0.
func (l Light) ShadowPoint(p engine.Vec3) (engine.Vec3, bool) {
	if l.Direction.Y() >= 0 || p.Y() < 0 {
		return engine.Vec3{}, false
	}
	t := p.Y() / -l.Direction.Y()
	out := p.Add(l.Direction.Mul(t))
	out[1] = 0
	return out, true
}
