package window

import "fmt"

// Event is a window lifecycle notification.
type Event interface {
	// Source returns the ID of the window the event belongs to.
	Source() ID
}

// ResizeEvent reports a new drawable size in physical pixels.
// Either dimension may be zero while the window is minimized.
type ResizeEvent struct {
	Window        ID
	Width, Height uint32
}

// CloseEvent reports that the user asked to close the window.
type CloseEvent struct {
	Window ID
}

// RedrawEvent asks the application to produce one frame.
type RedrawEvent struct {
	Window ID
}

// Source implements Event.
func (e ResizeEvent) Source() ID { return e.Window }

// Source implements Event.
func (e CloseEvent) Source() ID { return e.Window }

// Source implements Event.
func (e RedrawEvent) Source() ID { return e.Window }

func (e ResizeEvent) String() string {
	return fmt.Sprintf("Resize(window=%d, %dx%d)", e.Window, e.Width, e.Height)
}

func (e CloseEvent) String() string { return fmt.Sprintf("Close(window=%d)", e.Window) }

func (e RedrawEvent) String() string { return fmt.Sprintf("Redraw(window=%d)", e.Window) }

// Valid reports whether both dimensions are non-zero.
func (e ResizeEvent) Valid() bool { return e.Width > 0 && e.Height > 0 }
