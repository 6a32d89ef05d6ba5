// Package sdlwindow implements window.Window and window.Loop on SDL2.
//
// SDL must be driven from the thread that initialized it. Callers lock the
// main goroutine to its OS thread before calling New and keep every call on
// that goroutine.
package sdlwindow

import (
	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/glyphic/window"
)

// waitTimeoutMS bounds how long an on-demand loop sleeps in SDL_WaitEvent.
const waitTimeoutMS = 16

// ErrUnsupportedSubsystem is returned by NativeHandles when SDL runs on a
// window system wgpu cannot create a surface for from SysWM info. The error
// carries a hint naming a working setup; see errors.FlattenHints.
var ErrUnsupportedSubsystem = errors.New("sdlwindow: unsupported window subsystem")

const (
	waylandHint   = "SDL is running on Wayland; run under XWayland with SDL_VIDEODRIVER=x11"
	subsystemHint = "glyphic presents to X11 and Windows windows only"
)

// Options configures window creation.
type Options struct {
	Title string
	// Width and Height are the initial logical size.
	Width, Height int
	// Hidden creates the window invisible; call SetVisible(true) once the
	// surface is configured.
	Hidden bool
	// Continuous emits a redraw event on every loop iteration. When false,
	// redraws only follow RequestRedraw or an expose.
	Continuous bool
}

// Window is an SDL2 window. It implements window.Window and window.Loop.
type Window struct {
	win        *sdl.Window
	id         window.ID
	continuous bool
	redraw     bool
}

// New initializes the SDL video subsystem and opens a resizable window.
func New(opts Options) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "sdlwindow: init video")
	}

	flags := uint32(sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if opts.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}

	win, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(opts.Width), int32(opts.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrapf(err, "sdlwindow: create window %q", opts.Title)
	}

	id, err := win.GetID()
	if err != nil {
		_ = win.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "sdlwindow: window id")
	}

	return &Window{
		win:        win,
		id:         window.ID(id),
		continuous: opts.Continuous,
	}, nil
}

// ID implements window.Window.
func (w *Window) ID() window.ID { return w.id }

// SetTitle implements window.Window.
func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

// SetVisible implements window.Window.
func (w *Window) SetVisible(visible bool) {
	if visible {
		w.win.Show()
		return
	}
	w.win.Hide()
}

// Size implements gpucontext.WindowProvider. It returns logical points.
func (w *Window) Size() (int, int) {
	width, height := w.win.GetSize()
	return int(width), int(height)
}

// PhysicalSize implements window.Window. It reports the drawable size in
// pixels, which differs from Size on high-DPI displays.
func (w *Window) PhysicalSize() (uint32, uint32) {
	return pixelSize(w.win.VulkanGetDrawableSize())
}

// ScaleFactor implements gpucontext.WindowProvider.
func (w *Window) ScaleFactor() float64 {
	lw, _ := w.win.GetSize()
	pw, _ := w.win.VulkanGetDrawableSize()
	return scaleFactor(lw, pw)
}

// pixelSize clamps a drawable size SDL reports; a minimized window may
// report zero or negative extents.
func pixelSize(width, height int32) (uint32, uint32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return uint32(width), uint32(height)
}

func scaleFactor(logical, physical int32) float64 {
	if logical <= 0 || physical <= 0 {
		return 1.0
	}
	return float64(physical) / float64(logical)
}

// RequestRedraw implements gpucontext.WindowProvider.
func (w *Window) RequestRedraw() { w.redraw = true }

// NativeHandles implements window.Window using SDL's SysWM info.
func (w *Window) NativeHandles() (uintptr, uintptr, error) {
	info, err := w.win.GetWMInfo()
	if err != nil {
		return 0, 0, errors.Wrap(err, "sdlwindow: query wm info")
	}

	switch info.Subsystem {
	case sdl.SYSWM_X11:
		x11 := info.GetX11Info()
		return uintptr(x11.Display), uintptr(x11.Window), nil
	case sdl.SYSWM_WINDOWS:
		win := info.GetWindowsInfo()
		return 0, uintptr(win.Window), nil
	default:
		return 0, 0, unsupportedSubsystem(info.Subsystem)
	}
}

// unsupportedSubsystem builds the NativeHandles error for a SysWM subsystem
// without a surface path.
func unsupportedSubsystem(subsystem uint32) error {
	err := errors.Wrapf(ErrUnsupportedSubsystem, "subsystem %d", subsystem)
	if subsystem == sdl.SYSWM_WAYLAND {
		return errors.WithHint(err, waylandHint)
	}
	return errors.WithHint(err, subsystemHint)
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() error {
	err := w.win.Destroy()
	sdl.Quit()
	return errors.Wrap(err, "sdlwindow: destroy")
}

// Run implements window.Loop.
func (w *Window) Run(h window.Handler) error {
	for {
		if w.continuous {
			for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
				if w.dispatch(ev, h) == window.Exit {
					return nil
				}
			}
		} else if ev := sdl.WaitEventTimeout(waitTimeoutMS); ev != nil {
			if w.dispatch(ev, h) == window.Exit {
				return nil
			}
		}

		if w.continuous || w.redraw {
			w.redraw = false
			if h(window.RedrawEvent{Window: w.id}) == window.Exit {
				return nil
			}
		}
	}
}

func (w *Window) dispatch(ev sdl.Event, h window.Handler) window.Control {
	out, ok := w.translate(ev)
	if !ok {
		return window.Continue
	}
	return h(out)
}

// translate maps an SDL event onto a window event.
func (w *Window) translate(ev sdl.Event) (window.Event, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return window.CloseEvent{Window: w.id}, true
	case *sdl.WindowEvent:
		id := window.ID(e.WindowID)
		switch e.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return window.CloseEvent{Window: id}, true
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESTORED:
			width, height := w.PhysicalSize()
			return window.ResizeEvent{Window: id, Width: width, Height: height}, true
		case sdl.WINDOWEVENT_MINIMIZED:
			return window.ResizeEvent{Window: id}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return window.RedrawEvent{Window: id}, true
		}
	}
	return nil, false
}

var (
	_ window.Window = (*Window)(nil)
	_ window.Loop   = (*Window)(nil)
)
