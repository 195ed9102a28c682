// Package sim pairs physics bodies with scene nodes and drives the fixed-step
// loop that keeps them in sync.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/shapedrop/engine"
	"github.com/milk9111/shapedrop/logger"
	"github.com/milk9111/shapedrop/scene"
)

var (
	ErrUnknownKind   = errors.New("sim: unknown shape kind")
	ErrMissingPart   = errors.New("sim: missing collaborator")
	ErrNoScheduler   = errors.New("sim: no scheduler")
	errNilSimulation = errors.New("sim: nil simulation")
)

// Config holds the loop and spawn parameters.
type Config struct {
	FixedStep       float64
	MaxSubSteps     int
	Mass            float64
	Material        engine.ContactMaterial
	ImpactThreshold float64
}

func DefaultConfig() Config {
	return Config{
		FixedStep:       1.0 / 60.0,
		MaxSubSteps:     3,
		Mass:            1,
		Material:        engine.DefaultContactMaterial(),
		ImpactThreshold: DefaultImpactThreshold,
	}
}

// Options wires a Simulation to its collaborators. Physics and Scene are
// required; the rest may be nil.
type Options struct {
	Physics   engine.PhysicsWorld
	Scene     engine.SceneGraph
	Renderer  engine.Renderer
	Controls  engine.Controls
	Sound     engine.Sound
	Scheduler engine.Scheduler
	// Clock defaults to a SystemClock.
	Clock engine.Clock

	Config Config
	// Presets defaults to DefaultPresets.
	Presets map[Kind]Preset
	Seed    uint64
}

// Simulation owns the registry and the per-frame loop for one physics world
// and one scene.
type Simulation struct {
	physics   engine.PhysicsWorld
	scene     engine.SceneGraph
	renderer  engine.Renderer
	controls  engine.Controls
	scheduler engine.Scheduler
	clock     engine.Clock

	cfg       Config
	material  *engine.ContactMaterial
	registry  Registry
	responder *Responder

	geometries map[Kind]*engine.Geometry
	materials  map[Kind]*engine.Material
	presets    map[Kind]Preset
	rng        *rand.Rand

	previousElapsed time.Duration
	lastDelta       float64
	ticks           int
	running         bool
}

func New(opts Options) (*Simulation, error) {
	if opts.Physics == nil {
		return nil, fmt.Errorf("%w: physics world", ErrMissingPart)
	}
	if opts.Scene == nil {
		return nil, fmt.Errorf("%w: scene graph", ErrMissingPart)
	}

	cfg := opts.Config
	def := DefaultConfig()
	if cfg == (Config{}) {
		cfg = def
	}
	if cfg.FixedStep <= 0 {
		cfg.FixedStep = def.FixedStep
	}
	if cfg.MaxSubSteps <= 0 {
		cfg.MaxSubSteps = def.MaxSubSteps
	}
	if cfg.Mass <= 0 {
		cfg.Mass = def.Mass
	}
	if cfg.Material == (engine.ContactMaterial{}) {
		cfg.Material = def.Material
	}
	// zero is a real threshold: every contact sounds
	if cfg.ImpactThreshold < 0 || math.IsNaN(cfg.ImpactThreshold) {
		cfg.ImpactThreshold = def.ImpactThreshold
	}

	clock := opts.Clock
	if clock == nil {
		clock = NewSystemClock()
	}

	material := cfg.Material
	s := &Simulation{
		physics:   opts.Physics,
		scene:     opts.Scene,
		renderer:  opts.Renderer,
		controls:  opts.Controls,
		scheduler: opts.Scheduler,
		clock:     clock,
		cfg:       cfg,
		material:  &material,
		responder: NewResponder(opts.Sound, cfg.ImpactThreshold),
		geometries: map[Kind]*engine.Geometry{
			KindSphere: scene.SphereGeometry(0),
			KindBox:    scene.BoxGeometry(),
		},
		rng: rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
	presets := opts.Presets
	if presets == nil {
		presets = DefaultPresets()
	}
	s.SetPresets(presets)
	s.previousElapsed = clock.Elapsed()
	return s, nil
}

// SetPresets replaces the presets. New materials apply to later spawns only.
func (s *Simulation) SetPresets(presets map[Kind]Preset) {
	s.presets = make(map[Kind]Preset, len(presets))
	s.materials = make(map[Kind]*engine.Material, len(presets))
	for k, p := range presets {
		s.presets[k] = p
		s.materials[k] = p.material()
	}
}

func (s *Simulation) Preset(kind Kind) (Preset, bool) {
	p, ok := s.presets[kind]
	return p, ok
}

// Spawn creates an entity of kind sized by dims at pos. The body is created
// first; if the physics world rejects it nothing is added anywhere and the
// error is returned.
func (s *Simulation) Spawn(kind Kind, dims, pos engine.Vec3) (*Entity, error) {
	if s == nil {
		return nil, errNilSimulation
	}
	shape, err := physicsShape(kind, dims)
	if err != nil {
		return nil, err
	}

	// pos is handed to the physics world once; the node copies the body.
	body, err := s.physics.CreateBody(s.cfg.Mass, shape, s.material, pos)
	if err != nil {
		return nil, fmt.Errorf("sim: spawn %s: %w", kind, err)
	}
	if body == nil {
		return nil, fmt.Errorf("sim: spawn %s: physics returned no body", kind)
	}

	e := &Entity{
		Kind:        kind,
		Dimensions:  dims,
		Body:        body,
		scale:       geometryScale(kind, dims),
		orientation: body.Orientation(),
	}
	e.Node = s.scene.CreateMesh(s.geometries[kind], s.materialFor(kind))
	s.scene.SetTransform(e.Node, body.Position(), e.orientation, e.scale)
	s.scene.SetCastShadow(e.Node, true)

	body.AddCollisionListener(s.responder)
	s.physics.AddBody(body)
	s.scene.AddToScene(e.Node)
	s.registry.Append(e)

	logger.Debug("sim: spawned",
		zap.Stringer("kind", kind),
		zap.Float64s("dims", dims[:]),
		zap.Float64s("pos", pos[:]),
	)
	return e, nil
}

func (s *Simulation) materialFor(kind Kind) *engine.Material {
	if m, ok := s.materials[kind]; ok {
		return m
	}
	m := DefaultPresets()[kind].material()
	s.materials[kind] = m
	return m
}

// SpawnPreset spawns kind at pos with its preset's mid-range size.
func (s *Simulation) SpawnPreset(kind Kind, pos engine.Vec3) (*Entity, error) {
	p, ok := s.presets[kind]
	if !ok {
		p = DefaultPresets()[kind]
	}
	return s.Spawn(kind, p.Dimensions(), pos)
}

// SpawnRandom spawns kind with a size and drop position drawn from its preset.
func (s *Simulation) SpawnRandom(kind Kind) (*Entity, error) {
	p, ok := s.presets[kind]
	if !ok {
		p = DefaultPresets()[kind]
	}
	return s.Spawn(kind, p.randomDimensions(kind, s.rng), p.randomPosition(s.rng))
}

func (s *Simulation) SpawnSphere(radius float64, pos engine.Vec3) (*Entity, error) {
	return s.Spawn(KindSphere, engine.Vec3{radius, radius, radius}, pos)
}

func (s *Simulation) SpawnBox(size, pos engine.Vec3) (*Entity, error) {
	return s.Spawn(KindBox, size, pos)
}

// Reset removes every entity: collision listener, physics body and scene node.
// It returns the number of entities removed.
func (s *Simulation) Reset() int {
	n := s.registry.Clear(s.teardown)
	if n > 0 {
		logger.Info("sim: reset", zap.Int("removed", n))
	}
	return n
}

func (s *Simulation) teardown(e *Entity) {
	e.Body.RemoveCollisionListener(s.responder)
	s.physics.RemoveBody(e.Body)
	s.scene.RemoveFromScene(e.Node)
}

// Tick runs one frame: step physics by the clock delta, copy body transforms
// to their nodes, update controls, render.
func (s *Simulation) Tick() {
	elapsed := s.clock.Elapsed()
	delta := elapsed - s.previousElapsed
	if delta < 0 {
		delta = 0
	}
	s.previousElapsed = elapsed
	s.lastDelta = delta.Seconds()

	s.physics.Step(s.cfg.FixedStep, s.lastDelta, s.cfg.MaxSubSteps)
	s.sync()

	if s.controls != nil {
		s.controls.Update()
	}
	if s.renderer != nil {
		s.renderer.Render()
	}
	s.ticks++
}

// sync copies every body position into its node. Boxes also take the body
// orientation; spheres keep the orientation they were created with.
func (s *Simulation) sync() {
	s.registry.Each(func(e *Entity) {
		orientation := e.orientation
		if e.Kind != KindSphere {
			orientation = e.Body.Orientation()
		}
		s.scene.SetTransform(e.Node, e.Body.Position(), orientation, e.scale)
	})
}

// Start schedules the first frame. Each frame ticks and schedules the next one
// until Stop is called.
func (s *Simulation) Start() error {
	if s.scheduler == nil {
		return ErrNoScheduler
	}
	if s.running {
		return nil
	}
	s.running = true
	s.previousElapsed = s.clock.Elapsed()
	s.scheduler.RequestNextFrame(s.frame)
	return nil
}

func (s *Simulation) frame() {
	if !s.running {
		return
	}
	s.Tick()
	if s.running {
		s.scheduler.RequestNextFrame(s.frame)
	}
}

// Stop ends the loop after the current frame.
func (s *Simulation) Stop() {
	s.running = false
}

func (s *Simulation) Running() bool {
	return s.running
}

func (s *Simulation) Registry() *Registry {
	return &s.registry
}

func (s *Simulation) Responder() *Responder {
	return s.responder
}

func (s *Simulation) Config() Config {
	return s.cfg
}

// SetImpactThreshold changes the collision sound threshold.
func (s *Simulation) SetImpactThreshold(v float64) {
	s.cfg.ImpactThreshold = v
	s.responder.Threshold = v
}

func (s *Simulation) Count() int {
	return s.registry.Len()
}

func (s *Simulation) Ticks() int {
	return s.ticks
}

// LastDelta returns the clock delta in seconds used by the latest tick.
func (s *Simulation) LastDelta() float64 {
	return s.lastDelta
}
