package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hubastard/floatscroll/engine/scrollbar"
	"github.com/hubastard/floatscroll/engine/ui"
	"github.com/pelletier/go-toml/v2"
)

const defaultConfigPath = "sandbox.toml"

// Config is the sandbox.toml file.
type Config struct {
	Window    WindowConfig      `toml:"window"`
	Input     InputConfig       `toml:"input"`
	Scrollbar ScrollbarConfig   `toml:"scrollbar"`
	Theme     ui.ThemeOverrides `toml:"theme"`
	Debug     DebugConfig       `toml:"debug"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

type InputConfig struct {
	// Points scrolled per wheel notch.
	PointsPerLine float32 `toml:"points_per_line"`
}

type ScrollbarConfig struct {
	Width        float32 `toml:"width"`
	HandleHeight float32 `toml:"handle_height"`
	Sensitivity  float32 `toml:"sensitivity"`
	Smoothing    bool    `toml:"smoothing"`
}

type DebugConfig struct {
	// Show the stats overlay at startup; Ctrl+D toggles it.
	Overlay bool `toml:"overlay"`
	// Ring size for the frame profiler; 0 disables profiling.
	ProfileEvents int    `toml:"profile_events"`
	ProfileDir    string `toml:"profile_dir"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Scrollbar Example",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Input: InputConfig{PointsPerLine: 50},
		Scrollbar: ScrollbarConfig{
			Width:        20,
			HandleHeight: scrollbar.DefaultHandleHeight,
			Sensitivity:  scrollbar.DefaultScrollSensitivity,
			Smoothing:    true,
		},
		Debug: DebugConfig{
			ProfileEvents: 1 << 14,
			ProfileDir:    os.TempDir(),
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Scrollbar.Width <= 0:
		return fmt.Errorf("scrollbar width %v must be positive", c.Scrollbar.Width)
	case c.Input.PointsPerLine <= 0:
		return fmt.Errorf("points_per_line %v must be positive", c.Input.PointsPerLine)
	case c.Debug.ProfileEvents < 0:
		return fmt.Errorf("profile_events %d must not be negative", c.Debug.ProfileEvents)
	}
	v := ui.DefaultVisuals()
	return v.Apply(c.Theme)
}
