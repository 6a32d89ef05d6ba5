package device

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// Config controls how a Context picks its adapter and presentation mode.
type Config struct {
	// Label names the logical device in driver tooling.
	Label string

	// Backends restricts which graphics APIs are enumerated.
	Backends wgpu.Backends

	// PowerPreference selects between discrete and integrated GPUs.
	PowerPreference wgpu.PowerPreference

	// PresentMode is the preferred presentation mode. When the surface does
	// not support it, ChoosePresentMode falls back to a supported one.
	PresentMode gputypes.PresentMode
}

// DefaultConfig returns the configuration glyphic starts with: primary
// backends, the high-performance adapter and mailbox presentation.
func DefaultConfig() Config {
	return Config{
		Label:           "glyphic",
		Backends:        wgpu.BackendsPrimary,
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
		PresentMode:     gputypes.PresentModeMailbox,
	}
}

// SurfaceConfig is the presentation configuration applied to the surface.
type SurfaceConfig struct {
	Width       uint32
	Height      uint32
	Format      gputypes.TextureFormat
	Usage       gputypes.TextureUsage
	PresentMode gputypes.PresentMode
	AlphaMode   gputypes.CompositeAlphaMode
}

// String returns a compact description for logs.
func (c SurfaceConfig) String() string {
	return fmt.Sprintf("%dx%d %s %s alpha=%s", c.Width, c.Height, c.Format, c.PresentMode, c.AlphaMode)
}

// Resized returns a copy of c with new dimensions.
func (c SurfaceConfig) Resized(width, height uint32) SurfaceConfig {
	c.Width, c.Height = width, height
	return c
}

func (c SurfaceConfig) toWGPU() *wgpu.SurfaceConfiguration {
	return &wgpu.SurfaceConfiguration{
		Width:       c.Width,
		Height:      c.Height,
		Format:      c.Format,
		Usage:       c.Usage,
		PresentMode: c.PresentMode,
		AlphaMode:   c.AlphaMode,
	}
}

// Capabilities lists what a surface supports on the selected adapter.
type Capabilities struct {
	Formats      []gputypes.TextureFormat
	PresentModes []gputypes.PresentMode
	AlphaModes   []gputypes.CompositeAlphaMode
}

func capabilitiesFrom(caps *wgpu.SurfaceCapabilities) Capabilities {
	if caps == nil {
		return Capabilities{}
	}
	return Capabilities{
		Formats:      slices.Clone(caps.Formats),
		PresentModes: slices.Clone(caps.PresentModes),
		AlphaModes:   slices.Clone(caps.AlphaModes),
	}
}

// presentFallbacks is the order tried when the preferred mode is missing.
// Immediate keeps the low-latency behaviour; Fifo is always available.
var presentFallbacks = []gputypes.PresentMode{
	gputypes.PresentModeImmediate,
	gputypes.PresentModeFifo,
}

// ChoosePresentMode returns preferred if supported lists it, otherwise the
// first supported fallback, otherwise Fifo.
func ChoosePresentMode(supported []gputypes.PresentMode, preferred gputypes.PresentMode) gputypes.PresentMode {
	if slices.Contains(supported, preferred) {
		return preferred
	}
	for _, m := range presentFallbacks {
		if slices.Contains(supported, m) {
			return m
		}
	}
	return gputypes.PresentModeFifo
}

// ChooseSurfaceConfig derives the surface configuration from capabilities:
// the first reported format and alpha mode, render-attachment usage and the
// present mode picked by ChoosePresentMode.
func ChooseSurfaceConfig(caps Capabilities, width, height uint32, preferred gputypes.PresentMode) (SurfaceConfig, error) {
	if len(caps.Formats) == 0 {
		return SurfaceConfig{}, errors.Mark(errors.New("device: surface reports no formats"), ErrSurface)
	}

	alpha := gputypes.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alpha = caps.AlphaModes[0]
	}

	return SurfaceConfig{
		Width:       width,
		Height:      height,
		Format:      caps.Formats[0],
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: ChoosePresentMode(caps.PresentModes, preferred),
		AlphaMode:   alpha,
	}, nil
}
