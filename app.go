package glyphic

import (
	"log/slog"

	"github.com/gogpu/wgpu"
	"github.com/loov/hrtime"

	"github.com/gogpu/glyphic/device"
	"github.com/gogpu/glyphic/render"
	"github.com/gogpu/glyphic/window"
)

// State is the loop state of an App.
type State int

const (
	// StateRunning acquires and presents a frame on every redraw.
	StateRunning State = iota

	// StateSuspended skips redraws while the window has no drawable area.
	StateSuspended

	// StateTerminated is final; no frame is acquired again.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Surface is the presentation side an App drives.
type Surface interface {
	Reconfigure(width, height uint32) error
	AcquireFrame() (Frame, error)
	Config() device.SurfaceConfig
}

// Frame is an acquired surface texture. *device.Frame satisfies it.
type Frame interface {
	View() *wgpu.TextureView
	Present() error
	Discard()
	Suboptimal() bool
}

// FrameRenderer draws into an acquired frame. *render.Renderer satisfies it.
type FrameRenderer interface {
	Resize(width, height uint32)
	Render(view *wgpu.TextureView, encoders render.EncoderSource, queue render.Submitter) error
}

// contextSurface adapts *device.Context to Surface.
type contextSurface struct {
	*device.Context
}

func (s contextSurface) AcquireFrame() (Frame, error) {
	f, err := s.Context.AcquireFrame()
	if err != nil {
		return nil, err
	}
	return f, nil
}

// App owns the window, surface and renderer and runs the frame loop.
// All methods must be called from the event-loop goroutine.
type App struct {
	cfg      Config
	win      window.Window
	surface  Surface
	renderer FrameRenderer
	encoders render.EncoderSource
	queue    render.Submitter

	state State
	err   error
	stats FrameStats
	log   *slog.Logger
}

// NewApp assembles an App around an initialized device context and renderer.
// The App does not take ownership: the caller releases ctx and r.
func NewApp(win window.Window, ctx *device.Context, r *render.Renderer, cfg Config) *App {
	return newApp(win, contextSurface{ctx}, r, render.Encoders(ctx), ctx.Queue(), cfg)
}

func newApp(win window.Window, surface Surface, r FrameRenderer, encoders render.EncoderSource, queue render.Submitter, cfg Config) *App {
	return &App{
		cfg:      cfg,
		win:      win,
		surface:  surface,
		renderer: r,
		encoders: encoders,
		queue:    queue,
		state:    StateRunning,
		log:      Logger().With("window", win.ID()),
	}
}

// State returns the current loop state.
func (a *App) State() State { return a.state }

// Err returns the error that terminated the loop, or nil after a close
// request.
func (a *App) Err() error { return a.err }

// Stats returns the frame counters so far.
func (a *App) Stats() FrameStats { return a.stats }

// SetLogger replaces the logger of the App and its surface and renderer.
func (a *App) SetLogger(l *slog.Logger) {
	if l == nil {
		l = Logger()
	}
	a.log = l.With("window", a.win.ID())
	propagateLogger(a.surface, l)
	propagateLogger(a.renderer, l)
}

// Run hands HandleEvent to loop and blocks until the loop ends. It returns
// the loop's error, or the fatal device error that stopped the App.
func (a *App) Run(loop window.Loop) error {
	a.win.SetTitle(a.cfg.Title)
	err := loop.Run(a.HandleEvent)
	a.log.Info("glyphic: loop finished", "state", a.state, "stats", a.stats)
	if err != nil {
		return err
	}
	return a.err
}

// HandleEvent reacts to one window event and tells the loop whether to go on.
func (a *App) HandleEvent(ev window.Event) window.Control {
	if a.state == StateTerminated {
		return window.Exit
	}
	if ev.Source() != a.win.ID() {
		return window.Continue
	}

	switch e := ev.(type) {
	case window.ResizeEvent:
		a.applySize(e.Width, e.Height)
		if a.state == StateRunning {
			a.win.RequestRedraw()
		}
	case window.CloseEvent:
		a.log.Info("glyphic: close requested")
		a.state = StateTerminated
	case window.RedrawEvent:
		a.Tick()
	}

	if a.state == StateTerminated {
		return window.Exit
	}
	return window.Continue
}

// Tick runs one acquire, render, present cycle.
func (a *App) Tick() Outcome {
	if a.state != StateRunning {
		return OutcomeSkipped
	}
	start := hrtime.Now()
	outcome := a.tick()
	a.stats.record(outcome, hrtime.Since(start))
	a.log.Debug("glyphic: tick", "outcome", outcome, "duration", a.stats.LastTick)
	return outcome
}

func (a *App) tick() Outcome {
	frame, err := a.surface.AcquireFrame()
	if err != nil {
		return a.acquireFailed(err)
	}

	if err := a.renderer.Render(frame.View(), a.encoders, a.queue); err != nil {
		frame.Discard()
		if Classify(err) == OutcomeFatal {
			a.terminate(err)
			return OutcomeFatal
		}
		a.log.Warn("glyphic: dropped frame", "stage", "render", "err", err)
		return OutcomeDropped
	}

	suboptimal := frame.Suboptimal()
	if err := frame.Present(); err != nil {
		a.log.Warn("glyphic: present failed", "err", err)
	}
	if suboptimal {
		a.log.Debug("glyphic: suboptimal frame, reconfiguring")
		a.reconfigureToWindow()
	}
	return OutcomePresented
}

func (a *App) acquireFailed(err error) Outcome {
	outcome := Classify(err)
	switch outcome {
	case OutcomeLost:
		a.log.Warn("glyphic: surface lost, reconfiguring", "err", err)
		a.reconfigureToWindow()
		if a.state == StateTerminated {
			return OutcomeFatal
		}
		a.win.RequestRedraw()
	case OutcomeFatal:
		a.terminate(err)
	default:
		a.log.Warn("glyphic: dropped frame", "stage", "acquire", "err", err)
	}
	return outcome
}

func (a *App) reconfigureToWindow() {
	width, height := a.win.PhysicalSize()
	a.applySize(width, height)
}

// applySize reconfigures the surface for a new physical size, suspending
// the loop while either dimension is zero.
func (a *App) applySize(width, height uint32) {
	if width == 0 || height == 0 {
		if a.state == StateRunning {
			a.log.Info("glyphic: suspended", "width", width, "height", height)
			a.state = StateSuspended
		}
		return
	}

	if err := a.surface.Reconfigure(width, height); err != nil {
		if Classify(err) == OutcomeFatal {
			a.terminate(err)
			return
		}
		a.log.Warn("glyphic: reconfigure failed", "width", width, "height", height, "err", err)
		return
	}
	a.renderer.Resize(width, height)
	a.log.Debug("glyphic: surface resized", "config", a.surface.Config())

	if a.state == StateSuspended {
		a.log.Info("glyphic: resumed", "width", width, "height", height)
		a.state = StateRunning
	}
}

func (a *App) terminate(err error) {
	a.log.Error("glyphic: fatal device error", "err", err)
	a.state = StateTerminated
	a.err = err
}
