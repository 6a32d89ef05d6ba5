package device

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/wgpu"
)

// Frame is one acquired surface texture. It must be presented or discarded
// before the next acquisition; Context.AcquireFrame and Context.Reconfigure
// discard a frame that is still pending.
type Frame struct {
	ctx        *Context
	texture    *wgpu.SurfaceTexture
	view       *wgpu.TextureView
	suboptimal bool
	done       bool
}

// View returns the render target view of the frame.
func (f *Frame) View() *wgpu.TextureView { return f.view }

// Suboptimal reports whether the surface no longer matches the window
// exactly. The frame is still presentable.
func (f *Frame) Suboptimal() bool { return f.suboptimal }

// Present queues the frame for display.
func (f *Frame) Present() error {
	if f.done {
		return ErrFrameDone
	}
	f.done = true
	err := f.ctx.surface.Present(f.texture)
	f.release()
	return errors.Wrap(err, "device: present")
}

// Discard drops the frame without presenting it. Discarding twice, or after
// Present, does nothing.
func (f *Frame) Discard() {
	if f.done {
		return
	}
	f.done = true
	f.ctx.surface.DiscardTexture()
	f.release()
}

func (f *Frame) release() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
	if f.ctx.frame == f {
		f.ctx.frame = nil
	}
}
