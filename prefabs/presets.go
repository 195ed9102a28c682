package prefabs

import (
	"fmt"

	"github.com/milk9111/shapedrop/engine"
	"github.com/milk9111/shapedrop/sim"
)

var shapeFiles = map[sim.Kind]string{
	sim.KindSphere: "sphere.yaml",
	sim.KindBox:    "box.yaml",
}

// Preset converts the spec to the simulation's spawn preset.
func (s *ShapeSpec) Preset() sim.Preset {
	return sim.Preset{
		Color:       s.Color.RGBA8(),
		Metalness:   s.Metalness,
		Roughness:   s.Roughness,
		MinSize:     s.Size.Min,
		MaxSize:     s.Size.Max,
		SpawnHeight: s.Spawn.Height,
		Spread:      s.Spawn.Spread,
		DepthSpread: s.Spawn.DepthSpread,
	}
}

// LoadPresets loads the sphere and box presets.
func LoadPresets() (map[sim.Kind]sim.Preset, error) {
	out := make(map[sim.Kind]sim.Preset, len(shapeFiles))
	for kind, file := range shapeFiles {
		spec, err := LoadShapeSpec(file)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s preset: %w", kind, err)
		}
		out[kind] = spec.Preset()
	}
	return out, nil
}

func (g *GroundSpec) Material() *engine.Material {
	return &engine.Material{Color: g.Color.RGBA8(), Metalness: g.Metalness, Roughness: g.Roughness}
}
