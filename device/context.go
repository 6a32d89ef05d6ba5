// Package device owns the GPU side of a glyphic window: instance, adapter,
// logical device, queue and the presentation surface with its configuration.
//
// A Context is created once at startup and lives for the whole process. It
// is not safe for concurrent use; every call must come from the event-loop
// goroutine.
package device

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/glyphic/internal/logging"
)

const driverHint = "glyphic needs a Vulkan, Metal or DX12 capable GPU driver"

// Window is what a Context needs from the windowing layer.
type Window interface {
	NativeHandles() (display, window uintptr, err error)
	PhysicalSize() (width, height uint32)
}

// presentSurface is the subset of *wgpu.Surface a Context drives.
type presentSurface interface {
	Configure(device *wgpu.Device, config *wgpu.SurfaceConfiguration) error
	GetCurrentTexture() (*wgpu.SurfaceTexture, bool, error)
	Present(texture *wgpu.SurfaceTexture) error
	DiscardTexture()
	Release()
}

// Context holds the adapter, device, queue and surface of one window.
type Context struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  presentSurface

	info   wgpu.AdapterInfo
	caps   Capabilities
	config SurfaceConfig

	// frame is the acquired, not yet presented frame, if any.
	frame *Frame

	newView func(*wgpu.SurfaceTexture) (*wgpu.TextureView, error)
	log     *slog.Logger
}

// New creates a surface for win, selects an adapter that can present to it,
// creates the logical device and queue and configures the surface at the
// window's physical size.
//
// Every error returned by New is fatal for the application and carries one
// of ErrNoAdapter, ErrNoDevice or ErrSurface.
func New(win Window, cfg Config, log *slog.Logger) (*Context, error) {
	c := &Context{
		log:     logging.OrNop(log),
		newView: createView,
	}

	width, height := win.PhysicalSize()
	if width == 0 || height == 0 {
		return nil, markFatal(ErrZeroSize, ErrSurface, "device: initial window size", "")
	}

	instance, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: cfg.Backends})
	if err != nil {
		return nil, markFatal(err, ErrNoAdapter, "device: create instance", driverHint)
	}
	c.instance = instance

	display, handle, err := win.NativeHandles()
	if err != nil {
		c.Release()
		return nil, markFatal(err, ErrSurface, "device: native window handles", "")
	}
	surface, err := instance.CreateSurface(display, handle)
	if err != nil {
		c.Release()
		return nil, markFatal(err, ErrSurface, "device: create surface", "")
	}
	c.surface = surface

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:   cfg.PowerPreference,
		CompatibleSurface: surface,
	})
	if err != nil {
		c.Release()
		return nil, markFatal(err, ErrNoAdapter, "device: request adapter", driverHint)
	}
	c.adapter = adapter
	c.info = adapter.Info()
	c.log.Info("device: adapter selected",
		"name", c.info.Name,
		"backend", c.info.Backend,
		"type", c.info.DeviceType,
		"power", cfg.PowerPreference,
	)

	dev, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          cfg.Label,
		RequiredLimits: wgpu.DefaultLimits(),
	})
	if err != nil {
		c.Release()
		return nil, markFatal(err, ErrNoDevice, "device: request device", driverHint)
	}
	c.device = dev
	c.queue = dev.Queue()
	if c.queue == nil {
		c.Release()
		return nil, markFatal(errors.New("device has no queue"), ErrNoDevice, "device: queue", "")
	}

	c.caps = capabilitiesFrom(adapter.GetSurfaceCapabilities(surface))
	config, err := ChooseSurfaceConfig(c.caps, width, height, cfg.PresentMode)
	if err != nil {
		c.Release()
		return nil, err
	}
	if err := c.configure(config); err != nil {
		c.Release()
		return nil, errors.Mark(err, ErrSurface)
	}
	if config.PresentMode != cfg.PresentMode {
		c.log.Warn("device: preferred present mode unsupported",
			"preferred", cfg.PresentMode, "using", config.PresentMode)
	}
	c.log.Info("device: surface configured", "config", config.String())
	return c, nil
}

func createView(tex *wgpu.SurfaceTexture) (*wgpu.TextureView, error) {
	return tex.CreateView(nil)
}

// Device returns the logical device.
func (c *Context) Device() *wgpu.Device { return c.device }

// Queue returns the command queue of the device.
func (c *Context) Queue() *wgpu.Queue { return c.queue }

// CommandEncoder creates a command encoder on the device.
func (c *Context) CommandEncoder(label string) (*wgpu.CommandEncoder, error) {
	return c.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: label})
}

// AdapterInfo describes the selected adapter.
func (c *Context) AdapterInfo() wgpu.AdapterInfo { return c.info }

// Capabilities returns what the surface supports on the selected adapter.
func (c *Context) Capabilities() Capabilities { return c.caps }

// Config returns the configuration currently applied to the surface.
func (c *Context) Config() SurfaceConfig { return c.config }

// Reconfigure re-applies the stored configuration with new dimensions.
//
// Any acquired frame is discarded first; it belongs to the old swapchain.
// Calling Reconfigure with the current dimensions is harmless. Zero
// dimensions return ErrZeroSize and leave the configuration untouched.
func (c *Context) Reconfigure(width, height uint32) error {
	if width == 0 || height == 0 {
		return errors.Wrapf(ErrZeroSize, "device: reconfigure %dx%d", width, height)
	}
	c.discardFrame()
	if err := c.configure(c.config.Resized(width, height)); err != nil {
		return err
	}
	c.log.Debug("device: surface reconfigured", "width", width, "height", height)
	return nil
}

func (c *Context) configure(cfg SurfaceConfig) error {
	if err := c.surface.Configure(c.device, cfg.toWGPU()); err != nil {
		return errors.Wrapf(err, "device: configure surface %s", cfg)
	}
	c.config = cfg
	return nil
}

// AcquireFrame obtains the next presentable texture and a view of it.
//
// Surface errors are wrapped; errors.Is matches wgpu.ErrSurfaceLost,
// wgpu.ErrSurfaceOutdated, wgpu.ErrOutOfMemory, wgpu.ErrTimeout and
// wgpu.ErrDeviceLost on the result.
func (c *Context) AcquireFrame() (*Frame, error) {
	c.discardFrame()

	tex, suboptimal, err := c.surface.GetCurrentTexture()
	if err != nil {
		return nil, errors.Wrap(err, "device: acquire frame")
	}
	view, err := c.newView(tex)
	if err != nil {
		c.surface.DiscardTexture()
		return nil, errors.Wrap(err, "device: create frame view")
	}

	c.frame = &Frame{ctx: c, texture: tex, view: view, suboptimal: suboptimal}
	return c.frame, nil
}

func (c *Context) discardFrame() {
	if c.frame != nil {
		c.frame.Discard()
	}
}

// SetLogger replaces the logger used for surface diagnostics.
func (c *Context) SetLogger(l *slog.Logger) { c.log = logging.OrNop(l) }

// Release destroys the surface, device, adapter and instance.
func (c *Context) Release() {
	c.discardFrame()
	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
		c.queue = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}
