package device

import "github.com/cockroachdb/errors"

// Startup failures. Errors returned by New carry one of these marks, so
// callers can test them with errors.Is regardless of the wrapped cause.
var (
	// ErrNoAdapter means no adapter can present to the window's surface.
	ErrNoAdapter = errors.New("device: no compatible adapter")

	// ErrNoDevice means the logical device or its queue could not be created.
	ErrNoDevice = errors.New("device: logical device creation failed")

	// ErrSurface means the presentation surface could not be created or
	// configured.
	ErrSurface = errors.New("device: surface unavailable")
)

// ErrZeroSize is returned by Reconfigure when either dimension is zero.
// A surface cannot be configured with an empty area.
var ErrZeroSize = errors.New("device: surface size must be non-zero")

// ErrFrameDone is returned when presenting a frame that was already
// presented or discarded.
var ErrFrameDone = errors.New("device: frame already presented or discarded")

func markFatal(err error, mark error, msg string, hint string) error {
	err = errors.Mark(errors.Wrap(err, msg), mark)
	if hint != "" {
		err = errors.WithHint(err, hint)
	}
	return err
}
