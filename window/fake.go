package window

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/gpucontext"
)

// ErrNoNativeHandles is returned by Fake.NativeHandles: an in-memory window
// has nothing a GPU surface could be created from.
var ErrNoNativeHandles = errors.New("window: no native handles")

// Fake is an in-memory Window for tests and headless runs.
//
// Width and Height are the physical size. The embedded NullWindowProvider
// supplies the scale factor; Size derives logical points from it.
type Fake struct {
	gpucontext.NullWindowProvider

	WindowID ID
	Title    string
	Visible  bool
	Width    uint32
	Height   uint32

	// Redraws counts RequestRedraw calls.
	Redraws int
}

// NewFake returns a hidden fake window with the given physical size.
func NewFake(id ID, width, height uint32) *Fake {
	return &Fake{WindowID: id, Width: width, Height: height}
}

// ID implements Window.
func (f *Fake) ID() ID { return f.WindowID }

// SetTitle implements Window.
func (f *Fake) SetTitle(title string) { f.Title = title }

// SetVisible implements Window.
func (f *Fake) SetVisible(visible bool) { f.Visible = visible }

// PhysicalSize implements Window.
func (f *Fake) PhysicalSize() (uint32, uint32) { return f.Width, f.Height }

// Size implements gpucontext.WindowProvider.
func (f *Fake) Size() (int, int) {
	sf := f.ScaleFactor()
	return int(float64(f.Width) / sf), int(float64(f.Height) / sf)
}

// RequestRedraw implements gpucontext.WindowProvider.
func (f *Fake) RequestRedraw() { f.Redraws++ }

// NativeHandles implements Window. It always fails.
func (f *Fake) NativeHandles() (uintptr, uintptr, error) {
	return 0, 0, ErrNoNativeHandles
}

// Resize changes the physical size and returns the matching event, the way
// a platform loop would report it.
func (f *Fake) Resize(width, height uint32) ResizeEvent {
	f.Width, f.Height = width, height
	return ResizeEvent{Window: f.WindowID, Width: width, Height: height}
}

// ScriptedLoop is a Loop that replays a fixed list of events.
type ScriptedLoop struct {
	Events []Event

	// Delivered is the number of events handed to the handler.
	Delivered int
}

// Run delivers events in order until the handler returns Exit or the script
// runs out.
func (l *ScriptedLoop) Run(h Handler) error {
	for _, ev := range l.Events {
		l.Delivered++
		if h(ev) == Exit {
			return nil
		}
	}
	return nil
}

var (
	_ Window = (*Fake)(nil)
	_ Loop   = (*ScriptedLoop)(nil)
)
