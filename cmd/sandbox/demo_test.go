package main

import (
	"testing"

	"github.com/hubastard/floatscroll/engine/core"
	"github.com/hubastard/floatscroll/engine/ui"
	"github.com/stretchr/testify/require"
)

func texts(ctx *ui.Ctx) []string {
	var out []string
	for _, c := range ctx.DrawList() {
		if c.Kind == ui.DrawText {
			out = append(out, c.Text)
		}
	}
	return out
}

func TestDemoShowsAllPlacements(t *testing.T) {
	d := demo{cfg: DefaultConfig().Scrollbar, side: 0.25, direct: 1}
	ctx := ui.New(nil)
	ctx.BeginFrame(ui.Input{ScreenW: 1280, ScreenH: 720})
	d.show(ctx)
	ctx.EndFrame()

	require.Equal(t, []string{
		"Scrollbar Types Demo",
		"Side Panel Scrollbar: 0.25",
		"Floating Scrollbar: 0.00",
		"Docked Scrollbar: 0.00",
		"Direct UI Scrollbar: 1.00",
	}, texts(ctx))

	layers := map[ui.ID]bool{}
	for _, c := range ctx.DrawList() {
		layers[c.Layer.ID] = true
	}
	require.True(t, layers[ui.IDFrom("Side Panel Scrollbar")])
	require.True(t, layers[ui.IDFrom("floating_scrollbar")])
	require.True(t, layers[ui.IDFrom("docked_scrollbar")])
}

func TestDemoScrollMovesFloatingBar(t *testing.T) {
	d := demo{cfg: DefaultConfig().Scrollbar}
	d.cfg.Smoothing = false
	ctx := ui.New(nil)
	base := ui.Input{ScreenW: 1280, ScreenH: 720}

	ctx.BeginFrame(base)
	d.show(ctx)
	ctx.EndFrame()

	in := base
	in.PointerX, in.PointerY, in.HasPointer = 110, 400, true
	in.MousePressed, in.MouseDown = true, true
	ctx.BeginFrame(in)
	d.show(ctx)
	ctx.EndFrame()

	// Floating bar spans y 200..720.
	require.InDelta(t, 200.0/520, d.floating, 1e-6)
	require.Zero(t, d.side)
	require.Zero(t, d.docked)
}

func TestFrameToUI(t *testing.T) {
	f := core.FrameInput{
		MouseX: 10, MouseY: 20, HasMouse: true,
		Down: true, Pressed: true,
		ScrollX: 0.5, ScrollY: -2,
	}
	in := frameToUI(f, 1600, 1200, 2, 2, 50, 0.016)
	require.Equal(t, ui.Input{
		ScreenW: 1600, ScreenH: 1200, Dt: 0.016,
		PointerX: 20, PointerY: 40, HasPointer: true,
		MouseDown: true, MousePressed: true,
		ScrollX: 25, ScrollY: -100,
	}, in)
}

func TestDebugOverlayToggle(t *testing.T) {
	l := newLayerDebug(DebugConfig{}, nil, nil)
	ctx := ui.New(nil)

	ctx.BeginFrame(ui.Input{ScreenW: 800, ScreenH: 600})
	l.show(ctx)
	ctx.EndFrame()
	require.Empty(t, ctx.DrawList())

	handled := l.OnEvent(nil, core.EventKey{Key: core.KeyD, Down: true, Mods: core.ModCtrl})
	require.True(t, handled)
	require.False(t, l.OnEvent(nil, core.EventKey{Key: core.KeyD, Down: true}))

	ctx.BeginFrame(ui.Input{ScreenW: 800, ScreenH: 600})
	l.show(ctx)
	ctx.EndFrame()
	require.Contains(t, texts(ctx), "2D Renderer")
	require.Contains(t, texts(ctx), "Frame: 2")
	require.False(t, l.bg.IsEmpty())
}
