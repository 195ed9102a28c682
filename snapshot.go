package main

import (
	"sync"

	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/shapedrop/sim"
)

type snapshot struct {
	Ticks    int              `yaml:"ticks"`
	Hits     int              `yaml:"hits"`
	Entities []entitySnapshot `yaml:"entities"`
}

type entitySnapshot struct {
	Kind        string     `yaml:"kind"`
	Dimensions  [3]float64 `yaml:"dimensions,flow"`
	Position    [3]float64 `yaml:"position,flow"`
	Orientation [4]float64 `yaml:"orientation,flow"`
}

func takeSnapshot(s *sim.Simulation) snapshot {
	snap := snapshot{
		Ticks:    s.Ticks(),
		Hits:     s.Responder().Hits(),
		Entities: make([]entitySnapshot, 0, s.Count()),
	}
	s.Registry().Each(func(e *sim.Entity) {
		p := e.Position()
		q := e.Body.Orientation()
		snap.Entities = append(snap.Entities, entitySnapshot{
			Kind:        e.Kind.String(),
			Dimensions:  [3]float64{e.Dimensions.X(), e.Dimensions.Y(), e.Dimensions.Z()},
			Position:    [3]float64{p.X(), p.Y(), p.Z()},
			Orientation: [4]float64{q.W, q.V.X(), q.V.Y(), q.V.Z()},
		})
	})
	return snap
}

func (s snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copySnapshot puts the current world state on the system clipboard as YAML.
func copySnapshot(s *sim.Simulation) error {
	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		return clipboardErr
	}
	b, err := takeSnapshot(s).YAML()
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, b)
	return nil
}
