package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 800

[scrollbar]
sensitivity = 0.5
smoothing = false

[theme]
handle_fill = "#3366ff"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	def := DefaultConfig()
	require.Equal(t, 800, cfg.Window.Width)
	require.Equal(t, def.Window.Height, cfg.Window.Height)
	require.Equal(t, def.Window.Title, cfg.Window.Title)
	require.Equal(t, float32(0.5), cfg.Scrollbar.Sensitivity)
	require.False(t, cfg.Scrollbar.Smoothing)
	require.Equal(t, def.Scrollbar.Width, cfg.Scrollbar.Width)
	require.Equal(t, def.Input, cfg.Input)
	require.Equal(t, "#3366ff", cfg.Theme.HandleFill)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":      "[window\nwidth = 1",
		"type":        "[window]\nwidth = \"wide\"",
		"zero width":  "[scrollbar]\nwidth = 0",
		"bad color":   "[theme]\ntext = \"#12\"",
		"bad alpha":   "[theme]\nhandle_fill = \"#ffffff1g\"",
		"bad scroll":  "[input]\npoints_per_line = -3",
		"negative ev": "[debug]\nprofile_events = -1",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}
