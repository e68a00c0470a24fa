package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/floatscroll/engine/assets"
	"github.com/hubastard/floatscroll/engine/core"
	"github.com/hubastard/floatscroll/engine/gfx/renderer2d"
	"github.com/hubastard/floatscroll/engine/profiler"
	"github.com/hubastard/floatscroll/engine/text"
)

const (
	maxQuads    = 10000
	fontAtlasPx = 32
)

type App struct {
	cfg        Config
	r2d        *renderer2d.Renderer2D
	font       *text.Font
	prof       *profiler.Profiler
	uiLayer    *LayerUI
	debugLayer *LayerDebug
	err        error
}

func newApp(cfg Config) *App {
	return &App{cfg: cfg}
}

func (a *App) OnStart(e *core.Engine) {
	if err := a.start(e); err != nil {
		// OnStart can't return; stop the loop and report from main.
		a.err = err
		slog.Error("Startup failed", "error", err)
		e.Window.RequestClose()
	}
}

func (a *App) start(e *core.Engine) error {
	slog.Info("GPU", "vendor", e.Renderer.GPUVendor(), "renderer", e.Renderer.GPURenderer())

	if n := a.cfg.Debug.ProfileEvents; n > 0 {
		a.prof = profiler.New(n)
	}

	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		return err
	}
	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, maxQuads)
	if err != nil {
		return fmt.Errorf("2d renderer: %w", err)
	}

	a.font, err = text.LoadDefaultFont(e.Renderer, fontAtlasPx)
	if err != nil {
		return fmt.Errorf("default font: %w", err)
	}

	a.uiLayer = newLayerUI(a.cfg, a.r2d, a.font, a.prof)
	e.Layers.Push(a.uiLayer)

	a.debugLayer = newLayerDebug(a.cfg.Debug, a.r2d, a.prof)
	a.uiLayer.overlays = append(a.uiLayer.overlays, a.debugLayer.show)
	e.Layers.Push(a.debugLayer)
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}

func (a *App) OnShutdown(e *core.Engine) {
	if err := a.font.Close(); err != nil {
		slog.Warn("Closing font", "error", err)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
