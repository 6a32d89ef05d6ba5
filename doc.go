// Package glyphic opens a window and draws one triangle into it with wgpu.
//
// # Overview
//
// glyphic is the smallest complete GPU presentation loop: a window, a
// surface configured for it, one render pipeline, and a per-frame state
// machine that survives resizes, minimization and lost surfaces.
//
// # Quick Start
//
//	win, _ := sdlwindow.New(sdlwindow.Options{Title: cfg.Title, Width: 1280, Height: 720, Hidden: true})
//	ctx, _ := device.New(win, cfg.DeviceConfig(), glyphic.Logger())
//	r, _ := render.Build(ctx.Device(), ctx.Config(), glyphic.Logger())
//
//	app := glyphic.NewApp(win, ctx, r, cfg)
//	win.SetVisible(true)
//	err := app.Run(win)
//
// # Frames
//
// Every redraw runs App.Tick, which acquires a surface texture, renders
// into it and presents it. Acquisition failures are sorted by Classify:
//
//   - OutcomeLost: the surface is reconfigured to the window's physical
//     size and nothing is drawn until the next redraw.
//   - OutcomeFatal: out of memory or device lost. The application moves to
//     StateTerminated and never acquires again.
//   - OutcomeDropped: timeouts and anything else. The frame is skipped and
//     the next redraw tries again.
//
// # Window events
//
// A resize with non-zero dimensions reconfigures the surface before the next
// acquisition. A zero dimension (a minimized window) suspends frames until
// a usable size arrives. A close request terminates the loop. Events for
// other windows are ignored.
//
// # Logging
//
// glyphic is silent by default. Call SetLogger to receive lifecycle and
// per-frame diagnostics through log/slog; the logger is shared with wgpu.
package glyphic
