// Package config handles shapedrop configuration loading and management.
package config

import (
	"github.com/milk9111/shapedrop/engine"
	"github.com/milk9111/shapedrop/physics"
	"github.com/milk9111/shapedrop/sim"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Audio   AudioConfig   `yaml:"audio"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig holds the simulation loop and contact settings.
type PhysicsConfig struct {
	FixedStep       float64 `yaml:"fixed_step"`
	MaxSubSteps     int     `yaml:"max_sub_steps"`
	Gravity         float64 `yaml:"gravity"`
	Friction        float64 `yaml:"friction"`
	Restitution     float64 `yaml:"restitution"`
	ImpactThreshold float64 `yaml:"impact_threshold"`
}

type AudioConfig struct {
	Volume float64 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
	// ImpactFile is a wav file to use instead of the built-in sound.
	ImpactFile string `yaml:"impact_file"`
}

type SceneConfig struct {
	FOV           float64 `yaml:"fov"`
	StartupScript string  `yaml:"startup_script"`
	Seed          uint64  `yaml:"seed"`
	HotReload     bool    `yaml:"hot_reload"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "shapedrop",
		},
		Physics: PhysicsConfig{
			FixedStep:       1.0 / 60.0,
			MaxSubSteps:     3,
			Gravity:         -9.82,
			Friction:        0.1,
			Restitution:     0.7,
			ImpactThreshold: sim.DefaultImpactThreshold,
		},
		Audio: AudioConfig{
			Volume: 0.8,
		},
		Scene: SceneConfig{
			FOV:           45,
			StartupScript: "stack.tengo",
			Seed:          1,
			HotReload:     true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SimConfig returns the loop settings for a Simulation.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		FixedStep:   c.Physics.FixedStep,
		MaxSubSteps: c.Physics.MaxSubSteps,
		Mass:        1,
		Material: engine.ContactMaterial{
			Name:        "default",
			Friction:    c.Physics.Friction,
			Restitution: c.Physics.Restitution,
		},
		ImpactThreshold: c.Physics.ImpactThreshold,
	}
}

func (c *Config) PhysicsOptions() physics.Options {
	opts := physics.DefaultOptions()
	opts.Gravity = c.Physics.Gravity
	return opts
}

// Volume is the effective impact volume.
func (c *Config) Volume() float64 {
	if c.Audio.Muted {
		return 0
	}
	return c.Audio.Volume
}
