package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/shapedrop/logger"
	"github.com/milk9111/shapedrop/prefabs"
	"github.com/milk9111/shapedrop/scripts"
	"github.com/milk9111/shapedrop/sim"
)

type Game struct {
	app     *app
	panel   *debugPanel
	watcher *prefabs.Watcher

	width, height int
}

func NewGame(a *app) (*Game, error) {
	g := &Game{
		app:    a,
		panel:  newDebugPanel(a.sim),
		width:  a.cfg.Window.Width,
		height: a.cfg.Window.Height,
	}
	a.controls.Blocked = g.panel.Blocked

	if a.cfg.Scene.HotReload {
		w, err := prefabs.NewWatcher(prefabs.DiskRoot, filepath.Join(prefabs.DiskRoot, "scripts"))
		if err != nil {
			logger.Warn("game: hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}

	if err := a.sim.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	g.drainWatcher()
	g.handleKeys()
	g.panel.Update()

	// Simulation.Tick runs here, once per host frame.
	g.app.frames.RunFrame()

	return nil
}

func (g *Game) handleKeys() {
	s := g.app.sim
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.spawn(sim.KindSphere)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.spawn(sim.KindBox)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if err := copySnapshot(s); err != nil {
			logger.Warn("game: copy snapshot", zap.Error(err))
		} else {
			logger.Info("game: snapshot copied", zap.Int("entities", s.Count()))
		}
	}
}

func (g *Game) spawn(kind sim.Kind) {
	if _, err := g.app.sim.SpawnRandom(kind); err != nil {
		logger.Error("game: spawn", zap.Stringer("kind", kind), zap.Error(err))
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes():
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors():
			if !ok {
				g.watcher = nil
				return
			}
			logger.Warn("game: watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.AssetSpec:
		g.app.reloadPresets()
	case prefabs.AssetScript:
		name := change.Name()
		g.app.sim.Reset()
		if err := scripts.RunFile(context.Background(), name, g.app.sim); err != nil {
			logger.Warn("game: rerun script", zap.String("script", name), zap.Error(err))
			return
		}
		logger.Info("game: script rerun", zap.String("script", name), zap.Int("entities", g.app.sim.Count()))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.app.renderer.Draw(screen)
	g.panel.ui.Draw(screen)

	s := g.app.sim
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Entities: %d    Hits: %d    FPS: %.2f\n[1] sphere  [2] box  [R] reset  [C] copy",
		s.Count(), s.Responder().Hits(), ebiten.ActualFPS()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	w, h := int(outsideWidth), int(outsideHeight)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.app.renderer.Resize(w, h)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	g.app.sim.Stop()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
