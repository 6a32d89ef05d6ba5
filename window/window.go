// Package window defines the windowing collaborator used by glyphic: a window
// that can hand out native handles for surface creation, and an event loop
// that delivers resize, close and redraw notifications.
//
// The concrete SDL2 implementation lives in window/sdlwindow. Tests use the
// in-memory implementation in this package (see Fake).
package window

import "github.com/gogpu/gpucontext"

// ID identifies a window. Events carry the ID of the window they originate
// from so handlers can filter in multi-window setups.
type ID uint32

// Window is a top-level OS window.
//
// Window embeds gpucontext.WindowProvider, so Size reports the client area
// in logical points and ScaleFactor the DPI scale. PhysicalSize reports the
// drawable size in pixels, which is what the GPU surface must match.
type Window interface {
	gpucontext.WindowProvider

	// ID returns the window identity used to tag events.
	ID() ID

	// SetTitle changes the window title.
	SetTitle(title string)

	// SetVisible shows or hides the window.
	SetVisible(visible bool)

	// PhysicalSize returns the drawable client area in pixels.
	PhysicalSize() (width, height uint32)

	// NativeHandles returns the platform display and window handles in the
	// form expected by wgpu.Instance.CreateSurface.
	NativeHandles() (display, window uintptr, err error)
}

// Control tells the event loop whether to keep running.
type Control int

const (
	// Continue keeps the loop running.
	Continue Control = iota
	// Exit stops the loop after the current event.
	Exit
)

// String returns the control name.
func (c Control) String() string {
	switch c {
	case Continue:
		return "Continue"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Handler receives one event and decides whether the loop continues.
type Handler func(ev Event) Control

// Loop runs the platform event loop on the calling goroutine.
//
// Run blocks until the handler returns Exit or the platform shuts down.
// The caller must stay on the thread that created the window.
type Loop interface {
	Run(h Handler) error
}
