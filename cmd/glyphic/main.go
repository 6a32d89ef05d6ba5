// Command glyphic opens a window and draws a triangle with wgpu.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	_ "github.com/gogpu/wgpu/hal/allbackends"

	"github.com/gogpu/glyphic"
	"github.com/gogpu/glyphic/device"
	"github.com/gogpu/glyphic/render"
	"github.com/gogpu/glyphic/window/sdlwindow"
)

func init() {
	// SDL and most native surfaces require the main thread.
	runtime.LockOSThread()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("session", uuid.NewString())
	glyphic.SetLogger(logger)

	if err := run(glyphic.DefaultConfig()); err != nil {
		logger.Error("glyphic: fatal", "err", err)
		if hint := errors.FlattenHints(err); hint != "" {
			logger.Error("glyphic: hint", "hint", hint)
		}
		os.Exit(1)
	}
}

func run(cfg glyphic.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := glyphic.Logger()

	win, err := sdlwindow.New(sdlwindow.Options{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Hidden:     true,
		Continuous: cfg.Continuous,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Close(); err != nil {
			log.Warn("glyphic: close window", "err", err)
		}
	}()

	ctx, err := device.New(win, cfg.DeviceConfig(), log)
	if err != nil {
		return err
	}
	defer ctx.Release()

	r, err := render.Build(ctx.Device(), ctx.Config(), log)
	if err != nil {
		return err
	}
	defer r.Release()

	app := glyphic.NewApp(win, ctx, r, cfg)
	win.SetVisible(true)
	return app.Run(win)
}
