package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ShapeSpec describes how spawned shapes of one kind look and where they drop.
type ShapeSpec struct {
	Name      string    `yaml:"name"`
	Color     YAMLColor `yaml:"color"`
	Metalness float64   `yaml:"metalness"`
	Roughness float64   `yaml:"roughness"`
	Size      RangeSpec `yaml:"size"`
	Spawn     SpawnSpec `yaml:"spawn"`
}

type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type SpawnSpec struct {
	Height      float64 `yaml:"height"`
	Spread      float64 `yaml:"spread"`
	DepthSpread float64 `yaml:"depth_spread"`
}

func LoadShapeSpec(filename string) (*ShapeSpec, error) {
	spec, err := LoadSpec[ShapeSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Size.Min > spec.Size.Max {
		return nil, fmt.Errorf("prefabs: %s: size min %v above max %v", filename, spec.Size.Min, spec.Size.Max)
	}
	return &spec, nil
}

type GroundSpec struct {
	Name      string    `yaml:"name"`
	Size      float64   `yaml:"size"`
	Color     YAMLColor `yaml:"color"`
	Metalness float64   `yaml:"metalness"`
	Roughness float64   `yaml:"roughness"`
}

func LoadGroundSpec() (*GroundSpec, error) {
	spec, err := LoadSpec[GroundSpec]("ground.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as non-premultiplied 8-bit RGBA. Unset colours are
// opaque white.
func (c YAMLColor) RGBA8() color.RGBA {
	if c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

func (c YAMLColor) MarshalYAML() (any, error) {
	n := c.RGBA8()
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
