package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < overrides.
// An empty path searches the standard locations; a missing file there is not
// an error.
func Load(path string, overrides Overrides) (*Config, error) {
	cfg := Default()

	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	overrides.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Physics.FixedStep <= 0 {
		return fmt.Errorf("config: physics.fixed_step must be positive, got %v", c.Physics.FixedStep)
	}
	if c.Physics.MaxSubSteps < 1 {
		return fmt.Errorf("config: physics.max_sub_steps must be at least 1, got %d", c.Physics.MaxSubSteps)
	}
	if c.Physics.ImpactThreshold < 0 || math.IsNaN(c.Physics.ImpactThreshold) {
		return fmt.Errorf("config: physics.impact_threshold must not be negative, got %v", c.Physics.ImpactThreshold)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./shapedrop.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "shapedrop")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shapedrop")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shapedrop")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shapedrop")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
