// Package scripts runs tengo scene scripts against a simulation.
//
// Scripts see four functions:
//
//	spawn_sphere(radius, x, y, z)
//	spawn_box(width, height, depth, x, y, z)
//	reset()   // returns the number of entities removed
//	count()   // returns the number of live entities
package scripts

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/shapedrop/engine"
	"github.com/milk9111/shapedrop/logger"
	"github.com/milk9111/shapedrop/prefabs"
	"github.com/milk9111/shapedrop/sim"
)

const DefaultTimeout = 2 * time.Second

// Spawner is the part of a simulation a script can drive.
type Spawner interface {
	SpawnSphere(radius float64, pos engine.Vec3) (*sim.Entity, error)
	SpawnBox(size, pos engine.Vec3) (*sim.Entity, error)
	Reset() int
	Count() int
}

// RunFile loads the named script (disk first, then embedded) and runs it.
func RunFile(ctx context.Context, name string, sp Spawner) error {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return fmt.Errorf("scripts: load %s: %w", name, err)
	}
	return Run(ctx, name, src, sp)
}

// Run compiles and runs src. The run is cancelled with ctx, or after
// DefaultTimeout when ctx has no deadline.
func Run(ctx context.Context, name string, src []byte, sp Spawner) error {
	if sp == nil {
		return fmt.Errorf("scripts: %s: nil spawner", name)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for fname, fn := range bindings(sp) {
		if err := script.Add(fname, fn); err != nil {
			return fmt.Errorf("scripts: %s: bind %s: %w", name, fname, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("scripts: compile %s: %w", name, err)
	}
	before := sp.Count()
	if err := compiled.RunContext(ctx); err != nil {
		return fmt.Errorf("scripts: run %s: %w", name, err)
	}
	logger.Info("scripts: ran", zap.String("script", name), zap.Int("before", before), zap.Int("after", sp.Count()))
	return nil
}

func bindings(sp Spawner) map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"spawn_sphere": {Name: "spawn_sphere", Value: func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floats("spawn_sphere", args, 4)
			if err != nil {
				return nil, err
			}
			if _, err := sp.SpawnSphere(v[0], engine.Vec3{v[1], v[2], v[3]}); err != nil {
				return nil, err
			}
			return tengo.TrueValue, nil
		}},
		"spawn_box": {Name: "spawn_box", Value: func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floats("spawn_box", args, 6)
			if err != nil {
				return nil, err
			}
			if _, err := sp.SpawnBox(engine.Vec3{v[0], v[1], v[2]}, engine.Vec3{v[3], v[4], v[5]}); err != nil {
				return nil, err
			}
			return tengo.TrueValue, nil
		}},
		"reset": {Name: "reset", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			return &tengo.Int{Value: int64(sp.Reset())}, nil
		}},
		"count": {Name: "count", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			return &tengo.Int{Value: int64(sp.Count())}, nil
		}},
	}
}

func floats(fn string, args []tengo.Object, n int) ([]float64, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]float64, n)
	for i, a := range args {
		f, ok := tengo.ToFloat64(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{
				Name:     fmt.Sprintf("%s argument %d", fn, i+1),
				Expected: "float(compatible)",
				Found:    a.TypeName(),
			}
		}
		out[i] = f
	}
	return out, nil
}
