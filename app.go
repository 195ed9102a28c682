package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/milk9111/shapedrop/config"
	"github.com/milk9111/shapedrop/engine"
	"github.com/milk9111/shapedrop/logger"
	"github.com/milk9111/shapedrop/physics"
	"github.com/milk9111/shapedrop/prefabs"
	"github.com/milk9111/shapedrop/scene"
	"github.com/milk9111/shapedrop/scripts"
	"github.com/milk9111/shapedrop/sim"
	"github.com/milk9111/shapedrop/sound"
)

const defaultGroundSize = 40

// app is everything one simulation needs, shared by the window and headless
// commands.
type app struct {
	cfg      *config.Config
	world    *physics.World
	scene    *scene.Scene
	camera   *scene.Camera
	renderer *scene.Renderer
	controls *scene.OrbitControls
	clip     *sound.Clip
	frames   *sim.FrameQueue
	clock    engine.Clock
	sim      *sim.Simulation
}

func newApp(cfg *config.Config, headless bool) (*app, error) {
	a := &app{
		cfg:    cfg,
		world:  physics.NewWorld(cfg.PhysicsOptions()),
		scene:  scene.New(),
		frames: &sim.FrameQueue{},
	}

	groundSize := float64(defaultGroundSize)
	var groundMaterial *engine.Material
	if g, err := prefabs.LoadGroundSpec(); err != nil {
		logger.Warn("app: ground spec", zap.Error(err))
	} else {
		if g.Size > 0 {
			groundSize = g.Size
		}
		groundMaterial = g.Material()
	}
	contact := cfg.SimConfig().Material
	a.world.AddGround(groundSize/2, &contact)
	a.scene.AddGround(groundSize, groundMaterial)

	a.camera = scene.NewCamera(cfg.Scene.FOV, cfg.Window.Width, cfg.Window.Height)

	opts := sim.Options{
		Physics:   a.world,
		Scene:     a.scene,
		Scheduler: a.frames,
		Config:    cfg.SimConfig(),
		Presets:   loadPresets(),
		Seed:      cfg.Scene.Seed,
	}
	if headless {
		a.clock = &sim.ManualClock{}
	} else {
		a.renderer = scene.NewRenderer(a.scene, a.camera, scene.DefaultLight())
		a.controls = scene.NewOrbitControls(a.camera, scene.EbitenInput{})
		a.clip = loadClip(cfg)
		a.clock = sim.NewSystemClock()

		opts.Renderer = a.renderer
		opts.Controls = a.controls
		opts.Sound = a.clip
	}
	opts.Clock = a.clock

	s, err := sim.New(opts)
	if err != nil {
		return nil, err
	}
	a.sim = s

	if name := cfg.Scene.StartupScript; name != "" {
		if err := scripts.RunFile(context.Background(), name, s); err != nil {
			logger.Warn("app: startup script", zap.String("script", name), zap.Error(err))
		}
	}
	return a, nil
}

func loadPresets() map[sim.Kind]sim.Preset {
	presets, err := prefabs.LoadPresets()
	if err != nil {
		logger.Warn("app: presets, using defaults", zap.Error(err))
		return nil
	}
	return presets
}

func loadClip(cfg *config.Config) *sound.Clip {
	ctx := sound.Context()

	var (
		clip *sound.Clip
		err  error
	)
	if cfg.Audio.ImpactFile != "" {
		clip, err = sound.LoadClip(ctx, cfg.Audio.ImpactFile)
	} else {
		clip, err = sound.EmbeddedClip(ctx)
	}
	if err != nil {
		logger.Warn("app: impact sound, using synthesized thud", zap.Error(err))
		clip = sound.SynthClip(ctx)
	}
	clip.SetVolume(cfg.Volume())
	return clip
}

// reloadPresets applies edited preset files to later spawns.
func (a *app) reloadPresets() {
	presets, err := prefabs.LoadPresets()
	if err != nil {
		logger.Warn("app: reload presets", zap.Error(err))
		return
	}
	a.sim.SetPresets(presets)
	logger.Info("app: presets reloaded")
}
