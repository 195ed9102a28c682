package sim

import (
	"image/color"
	"math/rand/v2"

	"github.com/milk9111/shapedrop/engine"
)

// Preset is the look and the size and placement ranges used when spawning a
// kind without explicit dimensions.
type Preset struct {
	Color     color.RGBA
	Metalness float64
	Roughness float64
	// MinSize and MaxSize bound the radius for spheres and each edge for boxes.
	MinSize     float64
	MaxSize     float64
	SpawnHeight float64
	// Spread bounds the random X offset; DepthSpread the random Z offset.
	Spread      float64
	DepthSpread float64
}

func DefaultPresets() map[Kind]Preset {
	return map[Kind]Preset{
		KindSphere: {
			Color:       color.RGBA{R: 230, G: 96, B: 120, A: 255},
			Metalness:   0.3,
			Roughness:   0.4,
			MinSize:     0.3,
			MaxSize:     0.7,
			SpawnHeight: 5,
			Spread:      3,
		},
		KindBox: {
			Color:       color.RGBA{R: 90, G: 160, B: 230, A: 255},
			Metalness:   0.1,
			Roughness:   0.7,
			MinSize:     0.5,
			MaxSize:     1.2,
			SpawnHeight: 5,
			Spread:      3,
		},
	}
}

func (p Preset) material() *engine.Material {
	return &engine.Material{Color: p.Color, Metalness: p.Metalness, Roughness: p.Roughness}
}

// Dimensions returns the mid-range size: a sphere radius in X, or a cube.
func (p Preset) Dimensions() engine.Vec3 {
	s := (p.MinSize + p.MaxSize) / 2
	return engine.Vec3{s, s, s}
}

func (p Preset) randomDimensions(kind Kind, rng *rand.Rand) engine.Vec3 {
	size := func() float64 {
		return p.MinSize + rng.Float64()*(p.MaxSize-p.MinSize)
	}
	if kind == KindSphere {
		r := size()
		return engine.Vec3{r, r, r}
	}
	return engine.Vec3{size(), size(), size()}
}

func (p Preset) randomPosition(rng *rand.Rand) engine.Vec3 {
	offset := func(spread float64) float64 {
		return (rng.Float64()*2 - 1) * spread
	}
	return engine.Vec3{offset(p.Spread), p.SpawnHeight, offset(p.DepthSpread)}
}
