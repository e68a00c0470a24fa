package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hubastard/floatscroll/engine/colors"
	"github.com/hubastard/floatscroll/engine/core"
	"github.com/hubastard/floatscroll/engine/gfx/renderer2d"
	"github.com/hubastard/floatscroll/engine/profiler"
	"github.com/hubastard/floatscroll/engine/ui"
)

// LayerDebug collects frame statistics and shows them in a movable overlay.
// Ctrl+D toggles the overlay, Ctrl+P dumps a speedscope profile.
type LayerDebug struct {
	cfg  DebugConfig
	r2d  *renderer2d.Renderer2D
	prof *profiler.Profiler

	visible       bool
	stats         renderer2d.Statistics
	frameDuration float32 // ms
	lastFrame     time.Time
	gpu           [3]string
	bg            ui.Rect
}

func newLayerDebug(cfg DebugConfig, r2d *renderer2d.Renderer2D, prof *profiler.Profiler) *LayerDebug {
	return &LayerDebug{cfg: cfg, r2d: r2d, prof: prof, visible: cfg.Overlay}
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.gpu = [3]string{e.Renderer.GPUVendor(), e.Renderer.GPURenderer(), e.Renderer.GPUVersion()}
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

// OnRender runs after the UI layer has flushed, so the stats cover a full frame.
func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	if !l.lastFrame.IsZero() {
		l.frameDuration = float32(now.Sub(l.lastFrame).Seconds() * 1000)
	}
	l.lastFrame = now
	l.stats = l.r2d.Stats()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Mods&core.ModCtrl == 0 {
		return false
	}
	switch k.Key {
	case core.KeyD:
		l.visible = !l.visible
		return true
	case core.KeyP:
		if path, err := l.prof.Dump(l.cfg.ProfileDir, "sandbox"); err != nil {
			slog.Error("Profile dump failed", "error", err)
		} else {
			slog.Info("Speedscope profile written", "path", path)
		}
		return true
	}
	return false
}

func (l *LayerDebug) show(ctx *ui.Ctx) {
	if !l.visible {
		return
	}
	rt := profiler.ReadRuntime()
	fps := float32(0)
	if l.frameDuration > 0 {
		fps = 1000 / l.frameDuration
	}
	heading := func(u *ui.Ui, s string) { u.Add(ui.Label{Text: s, Color: colors.Yellow}) }

	resp := ui.NewArea("debug_overlay").
		Order(ui.OrderTooltip).
		DefaultPos(ui.Vec2{X: 24, Y: 420}).
		Show(ctx, func(u *ui.Ui) {
			// Sized from last frame's content.
			u.Painter().RectFilled(l.bg, colors.Black.WithAlpha(0.5))

			heading(u, fmt.Sprintf("Frame: %d", ctx.FrameNr()))
			u.Label(fmt.Sprintf("  %2.3f ms (%.2f FPS)", l.frameDuration, fps))
			heading(u, "2D Renderer")
			u.Label(fmt.Sprintf("  Draw Calls: %d", l.stats.DrawCalls))
			u.Label(fmt.Sprintf("  Quads: %d", l.stats.QuadCount))
			u.Label(fmt.Sprintf("  Vertices: %d", l.stats.TotalVertexCount()))
			u.Label(fmt.Sprintf("  Textures: %d", l.stats.TextureCount))
			heading(u, "Memory")
			u.Label(fmt.Sprintf("  Heap: %.3f MB", float32(rt.HeapAlloc)/(1<<20)))
			u.Label(fmt.Sprintf("  Allocs: %d", rt.Mallocs))
			u.Label(fmt.Sprintf("  Goroutines: %d", rt.Goroutines))
			heading(u, "GPU")
			u.Label(fmt.Sprintf("  Vendor: %s", l.gpu[0]))
			u.Label(fmt.Sprintf("  Renderer: %s", l.gpu[1]))
			u.Label(fmt.Sprintf("  Version: %s", l.gpu[2]))
			if l.prof != nil {
				u.Label(fmt.Sprintf("  Profile events: %d", l.prof.Len()))
			}
		})
	l.bg = resp.Rect
}
