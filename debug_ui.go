package main

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/shapedrop/logger"
	"github.com/milk9111/shapedrop/sim"
)

// debugPanel is the corner panel with spawn and reset buttons and a live
// entity counter.
type debugPanel struct {
	ui      *ebitenui.UI
	panel   *widget.Container
	counter *widget.Text
	sim     *sim.Simulation
	shown   int
}

// newDebugPanel builds the panel from colored nine-slices and the built-in
// basic font, so no theme assets are needed.
func newDebugPanel(s *sim.Simulation) *debugPanel {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x12, B: 0x18, A: 200})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x36, B: 0x40, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x48, B: 0x55, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x24, B: 0x2b, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	d := &debugPanel{sim: s, shown: -1}

	d.counter = widget.NewText(
		widget.TextOpts.Text(counterLabel(0), &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	d.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(150, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	d.panel.AddChild(d.counter)
	d.panel.AddChild(button("Create sphere", func() { d.spawn(sim.KindSphere) }))
	d.panel.AddChild(button("Create box", func() { d.spawn(sim.KindBox) }))
	d.panel.AddChild(button("Reset", func() { s.Reset() }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(d.panel)

	d.ui = &ebitenui.UI{Container: root}
	return d
}

func (d *debugPanel) spawn(kind sim.Kind) {
	if _, err := d.sim.SpawnRandom(kind); err != nil {
		logger.Error("ui: spawn", zap.Stringer("kind", kind), zap.Error(err))
	}
}

// Blocked reports whether a screen point falls on the panel.
func (d *debugPanel) Blocked(x, y int) bool {
	return image.Pt(x, y).In(d.panel.GetWidget().Rect)
}

func (d *debugPanel) Update() {
	d.ui.Update()
	if n := d.sim.Count(); n != d.shown {
		d.shown = n
		d.counter.Label = counterLabel(n)
	}
}

func counterLabel(n int) string {
	return fmt.Sprintf("Entities: %d", n)
}
