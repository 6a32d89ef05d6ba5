package glyphic

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/wgpu"
)

// Outcome is the result of one tick of the frame loop.
type Outcome int

const (
	// OutcomePresented means a frame was rendered and presented.
	OutcomePresented Outcome = iota

	// OutcomeSkipped means no acquisition was attempted because the app
	// is suspended or terminated.
	OutcomeSkipped

	// OutcomeLost means the surface was lost or outdated and has been
	// reconfigured. Nothing was drawn.
	OutcomeLost

	// OutcomeFatal means the device ran out of memory or was lost.
	OutcomeFatal

	// OutcomeDropped means the frame was skipped after a timeout or another
	// recoverable error.
	OutcomeDropped
)

func (o Outcome) String() string {
	switch o {
	case OutcomePresented:
		return "presented"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeLost:
		return "lost"
	case OutcomeFatal:
		return "fatal"
	case OutcomeDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Classify maps a frame error onto the action the loop takes for it.
// A nil error is OutcomePresented.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomePresented
	case errors.Is(err, wgpu.ErrSurfaceLost), errors.Is(err, wgpu.ErrSurfaceOutdated):
		return OutcomeLost
	case errors.Is(err, wgpu.ErrOutOfMemory), errors.Is(err, wgpu.ErrDeviceLost):
		return OutcomeFatal
	default:
		return OutcomeDropped
	}
}
