package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/doukutsu-go/doukutsu/engine"
	"github.com/doukutsu-go/doukutsu/framework"
	"github.com/doukutsu-go/doukutsu/game"
)

func init() {
	// The windowing backends require the main OS thread.
	runtime.LockOSThread()
}

func main() {
	backendFlag := flag.String("backend", "", "rendering backend (sdl2, ebiten)")
	settingsPath := flag.String("settings", "settings.toml", "path to the settings file")
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	settings, err := game.LoadSettings(*settingsPath)
	if err != nil {
		slog.Warn("Settings file unreadable, using defaults", "path", *settingsPath, "error", err)
	}
	if *backendFlag != "" {
		settings.Backend = *backendFlag
	}
	if *debug {
		settings.DebugOverlay = true
	}

	if err := run(settings); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(settings game.Settings) error {
	backend, err := framework.Init(settings.Backend)
	if err != nil {
		return err
	}

	loop, err := backend.CreateEventLoop()
	if err != nil {
		return err
	}

	ctx := framework.NewContext()
	renderer, err := loop.NewRenderer()
	if err != nil {
		return err
	}
	ctx.Renderer = renderer

	constants := engine.Defaults()
	g := game.New(&constants, settings)

	slog.Info("Starting", "backend", settings.Backend)
	loop.Run(g, ctx)
	return nil
}
