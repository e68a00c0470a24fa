package main

import (
	"log/slog"
	"os"

	"charm.land/log/v2"
	"github.com/hubastard/floatscroll/engine/colors"
	"github.com/hubastard/floatscroll/engine/core"
	glbackend "github.com/hubastard/floatscroll/engine/gfx/gl"
	"github.com/hubastard/floatscroll/engine/platform"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	debug      bool
	width      int
	height     int
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "sandbox",
		Short:        "Scrollbar placement demo",
		Long:         `Opens a window showing a fixed scrollbar in a side panel, floating, docked beside a rect and added inline.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(opts.debug)

			cfg, err := LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.Window.Width = opts.width
			}
			if cmd.Flags().Changed("height") {
				cfg.Window.Height = opts.height
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			slog.Debug("Config loaded", "path", opts.configPath, "window", cfg.Window)
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the TOML config file")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().IntVar(&opts.width, "width", 0, "window width (overrides the config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "window height (overrides the config)")
	return cmd
}

func setupLogging(debug bool) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "sandbox",
		ReportTimestamp: true,
	})
	slog.SetDefault(slog.New(logger))
}

func run(cfg Config) error {
	engineCfg := core.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		VSync:      cfg.Window.VSync,
		ClearColor: colors.DarkGray,
	}
	newWindow := func(c core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(c, nil)
	}
	newRenderer := func(win core.Window, c core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, c)
	}
	app := newApp(cfg)
	if err := core.Run(app, engineCfg, newWindow, newRenderer); err != nil {
		return err
	}
	return app.err
}
