package main

import (
	"fmt"

	"github.com/hubastard/floatscroll/engine/scrollbar"
	"github.com/hubastard/floatscroll/engine/ui"
)

var (
	floatingPos = ui.Vec2{X: 100, Y: 200}
	dockTarget  = ui.RectFromMinSize(ui.Vec2{X: 100, Y: 300}, ui.Vec2{X: 200, Y: 20})
)

// demo shows one scrollbar per placement and the positions they drive.
type demo struct {
	cfg ScrollbarConfig

	side, floating, docked, direct float32
}

func (d *demo) bar(v *float32) scrollbar.FixedScrollbar {
	return scrollbar.New(v, d.cfg.Width).
		ScrollSensitivity(d.cfg.Sensitivity).
		ScrollSmoothing(d.cfg.Smoothing).
		HandleHeight(d.cfg.HandleHeight)
}

func (d *demo) show(ctx *ui.Ctx) {
	d.bar(&d.side).ShowInSidePanel(ctx, "Side Panel Scrollbar")

	ui.CentralPanel{}.Show(ctx, func(u *ui.Ui) {
		u.Heading("Scrollbar Types Demo")
		u.AddSpace(20)

		u.Label(fmt.Sprintf("Side Panel Scrollbar: %.2f", d.side))
		u.Label(fmt.Sprintf("Floating Scrollbar: %.2f", d.floating))
		u.Label(fmt.Sprintf("Docked Scrollbar: %.2f", d.docked))
		u.Label(fmt.Sprintf("Direct UI Scrollbar: %.2f", d.direct))
		u.AddSpace(20)

		d.bar(&d.floating).ShowFloating(u, floatingPos)

		u.Painter().RectFilled(dockTarget, u.Style().Visuals.Widgets.Inactive.BgFill)
		d.bar(&d.docked).ShowDocked(u, dockTarget)

		u.AddSpace(40)
		u.Add(d.bar(&d.direct))
	})
}
