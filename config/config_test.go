package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/shapedrop/sim"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Physics.FixedStep != 1.0/60.0 {
		t.Errorf("expected fixed step 1/60, got %v", cfg.Physics.FixedStep)
	}
	if cfg.Physics.MaxSubSteps != 3 {
		t.Errorf("expected 3 sub-steps, got %d", cfg.Physics.MaxSubSteps)
	}
	if cfg.Physics.Friction != 0.1 || cfg.Physics.Restitution != 0.7 {
		t.Errorf("expected friction 0.1 restitution 0.7, got %v %v", cfg.Physics.Friction, cfg.Physics.Restitution)
	}
	if cfg.Physics.ImpactThreshold != 1.5 {
		t.Errorf("expected impact threshold 1.5, got %v", cfg.Physics.ImpactThreshold)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.LogFile != "" {
		t.Errorf("unexpected logging defaults %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestSimConfigMatchesSimulationDefaults(t *testing.T) {
	if got := Default().SimConfig(); got != sim.DefaultConfig() {
		t.Fatalf("expected %+v, got %+v", sim.DefaultConfig(), got)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 800
physics:
  gravity: -3.5
  impact_threshold: 2
audio:
  muted: true
logging:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(configPath, Overrides{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("unset height should keep its default, got %d", cfg.Window.Height)
	}
	if cfg.Physics.Gravity != -3.5 || cfg.Physics.ImpactThreshold != 2 {
		t.Errorf("physics not loaded: %+v", cfg.Physics)
	}
	if cfg.Volume() != 0 {
		t.Errorf("muted audio should have zero volume, got %v", cfg.Volume())
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected warn, got %s", cfg.Logging.Level)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\nscene:\n  seed: 7\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	width := 1024
	level := "error"
	seed := uint64(42)
	cfg, err := Load(configPath, Overrides{Width: &width, LogLevel: &level, Seed: &seed})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("flag should beat file, got width %d", cfg.Window.Width)
	}
	if cfg.Logging.Level != "error" || cfg.Scene.Seed != 42 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Logging, cfg.Scene)
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", Overrides{Debug: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("debug override should set level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("expected default width, got %d", cfg.Window.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Load(filepath.Join(tmpDir, "missing.yaml"), Overrides{}); err == nil {
		t.Error("expected an error for an explicit missing file")
	}

	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad, Overrides{}); err == nil {
		t.Error("expected an error for malformed yaml")
	}

	invalid := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  max_sub_steps: 0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(invalid, Overrides{}); err == nil {
		t.Error("expected a validation error for zero sub-steps")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Physics.Gravity = -1.25
	cfg.Scene.StartupScript = "rain.tengo"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Physics.Gravity != -1.25 || loaded.Scene.StartupScript != "rain.tengo" {
		t.Fatalf("saved values not read back: %+v %+v", loaded.Physics, loaded.Scene)
	}
}

func TestImpactThresholdZeroReachesSimulation(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  impact_threshold: 0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.SimConfig().ImpactThreshold; got != 0 {
		t.Fatalf("expected threshold 0, got %v", got)
	}

	neg := -0.5
	if _, err := Load(path, Overrides{ImpactThreshold: &neg}); err == nil {
		t.Fatal("expected a validation error for a negative threshold")
	}
}
