package main

import (
	"log/slog"
	"time"

	"github.com/hubastard/floatscroll/engine/core"
	"github.com/hubastard/floatscroll/engine/gfx/renderer2d"
	"github.com/hubastard/floatscroll/engine/profiler"
	"github.com/hubastard/floatscroll/engine/scene"
	"github.com/hubastard/floatscroll/engine/text"
	"github.com/hubastard/floatscroll/engine/ui"
)

// LayerUI runs one immediate-mode UI frame per render in framebuffer pixels.
type LayerUI struct {
	cfg  Config
	r2d  *renderer2d.Renderer2D
	font *text.Font
	prof *profiler.Profiler

	cam      *scene.OrthoCamera2D
	ctx      *ui.Ctx
	demo     demo
	overlays []func(*ui.Ctx)
	last     time.Time
}

func newLayerUI(cfg Config, r2d *renderer2d.Renderer2D, font *text.Font, prof *profiler.Profiler) *LayerUI {
	return &LayerUI{cfg: cfg, r2d: r2d, font: font, prof: prof, demo: demo{cfg: cfg.Scrollbar}}
}

func (l *LayerUI) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewScreenOrtho(w, h)

	l.ctx = ui.New(&ui.Renderer2DBackend{R2D: l.r2d, Font: l.font})
	style := ui.DefaultStyle()
	if err := style.Visuals.Apply(l.cfg.Theme); err != nil {
		slog.Warn("Ignoring theme overrides", "error", err)
	}
	l.ctx.SetStyle(style)
}

func (l *LayerUI) OnDetach(e *core.Engine) {}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	defer l.prof.Start("LayerUI.OnRender")()

	now := time.Now()
	var dt float32
	if !l.last.IsZero() {
		dt = float32(now.Sub(l.last).Seconds())
	}
	l.last = now

	w, h := e.Window.FramebufferSize()
	sx, sy := contentScale(e.Window)
	in := frameToUI(e.Input.Frame(), w, h, sx, sy, l.cfg.Input.PointsPerLine, dt)

	l.r2d.BeginScene(l.cam.VP())
	l.ctx.BeginFrame(in)
	l.demo.show(l.ctx)
	for _, show := range l.overlays {
		show(l.ctx)
	}
	l.ctx.EndFrame()
	l.r2d.EndScene()
}

func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}

func contentScale(win core.Window) (float32, float32) {
	if s, ok := win.(interface{ ContentScale() (float32, float32) }); ok {
		return s.ContentScale()
	}
	return 1, 1
}

// frameToUI maps a window-space input snapshot onto framebuffer pixels. Wheel
// lines become points; positive lines (wheel away from the user) stay positive.
func frameToUI(f core.FrameInput, fbW, fbH int, sx, sy, pointsPerLine, dt float32) ui.Input {
	return ui.Input{
		ScreenW:       float32(fbW),
		ScreenH:       float32(fbH),
		Dt:            dt,
		PointerX:      float32(f.MouseX) * sx,
		PointerY:      float32(f.MouseY) * sy,
		HasPointer:    f.HasMouse,
		MouseDown:     f.Down,
		MousePressed:  f.Pressed,
		MouseReleased: f.Released,
		ScrollX:       float32(f.ScrollX) * pointsPerLine,
		ScrollY:       float32(f.ScrollY) * pointsPerLine,
	}
}
