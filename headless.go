package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/milk9111/shapedrop/config"
	"github.com/milk9111/shapedrop/sim"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

type headlessResult struct {
	Ticks    int
	Entities int
	Hits     int
	// Heights is the first entity's height after every tick.
	Heights []float64
}

// runHeadless drives the simulation with a manual clock advancing one fixed
// step per frame. Nothing is drawn and no audio is played.
func runHeadless(cfg *config.Config, ticks int) (*headlessResult, error) {
	a, err := newApp(cfg, true)
	if err != nil {
		return nil, err
	}
	clock := a.clock.(*sim.ManualClock)
	step := a.sim.Config().FixedStep

	if err := a.sim.Start(); err != nil {
		return nil, err
	}
	defer a.sim.Stop()

	res := &headlessResult{Heights: make([]float64, 0, ticks)}
	for range ticks {
		clock.AdvanceSeconds(step)
		a.frames.RunFrame()
		if e, ok := firstEntity(a.sim); ok {
			res.Heights = append(res.Heights, e.Position().Y())
		}
	}
	res.Ticks = a.sim.Ticks()
	res.Entities = a.sim.Count()
	res.Hits = a.sim.Responder().Hits()
	return res, nil
}

func firstEntity(s *sim.Simulation) (*sim.Entity, bool) {
	entities := s.Registry().Entities()
	if len(entities) == 0 {
		return nil, false
	}
	return entities[0], true
}

func (r *headlessResult) Print(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("shapedrop headless run"))
	row := func(label string, v any) {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label)), valueStyle.Render(fmt.Sprint(v)))
	}
	row("ticks", r.Ticks)
	row("entities", r.Entities)
	row("impacts", r.Hits)

	if len(r.Heights) < 2 {
		return
	}
	row("height", fmt.Sprintf("%.3f -> %.3f", r.Heights[0], r.Heights[len(r.Heights)-1]))
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(downsample(r.Heights, 80),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("first entity height (m)"),
	))
}

// downsample keeps at most n evenly spaced samples.
func downsample(data []float64, n int) []float64 {
	if len(data) <= n || n <= 0 {
		return data
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = data[i*len(data)/n]
	}
	return out
}
