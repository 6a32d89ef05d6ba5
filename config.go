package glyphic

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/glyphic/device"
)

// ErrInvalidConfig is the mark carried by errors from Config.Validate.
var ErrInvalidConfig = errors.New("glyphic: invalid config")

// Config holds the window and presentation settings of an App.
type Config struct {
	// Title is the window title.
	// Default: "Glyphic Animation Studio"
	Title string

	// Width and Height are the initial logical window size.
	// Default: 1280x720
	Width  int
	Height int

	// PresentMode is the preferred presentation mode. Unsupported modes fall
	// back to Immediate, then Fifo.
	// Default: Mailbox
	PresentMode gputypes.PresentMode

	// Continuous redraws every loop iteration. When false, frames are only
	// produced after a redraw request (resize, expose, lost surface).
	// Default: true
	Continuous bool

	// Backends restricts the graphics APIs wgpu may use.
	// Default: primary backends (Vulkan, Metal, DX12)
	Backends wgpu.Backends
}

// DefaultConfig returns the configuration glyphic starts with.
func DefaultConfig() Config {
	return Config{
		Title:       "Glyphic Animation Studio",
		Width:       1280,
		Height:      720,
		PresentMode: gputypes.PresentModeMailbox,
		Continuous:  true,
		Backends:    wgpu.BackendsPrimary,
	}
}

// WithTitle returns a copy of c with the given window title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the given initial window size.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithPresentMode returns a copy of c preferring the given present mode.
func (c Config) WithPresentMode(mode gputypes.PresentMode) Config {
	c.PresentMode = mode
	return c
}

// WithContinuousRender returns a copy of c with continuous redraw on or off.
func (c Config) WithContinuousRender(continuous bool) Config {
	c.Continuous = continuous
	return c
}

// WithBackends returns a copy of c restricted to the given backends.
func (c Config) WithBackends(backends wgpu.Backends) Config {
	c.Backends = backends
	return c
}

// Validate checks the window size.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Mark(errors.Newf("glyphic: window size %dx%d must be positive", c.Width, c.Height), ErrInvalidConfig)
	}
	return nil
}

// DeviceConfig derives the device configuration: c's backends and present
// mode on the high-performance adapter.
func (c Config) DeviceConfig() device.Config {
	cfg := device.DefaultConfig()
	cfg.Backends = c.Backends
	cfg.PresentMode = c.PresentMode
	return cfg
}
