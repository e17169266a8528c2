package animation

import (
	"errors"
)

// FrameSeparator is the literal line that splits frames in an art document.
const FrameSeparator = "====FRAME===="

// ErrMalformedMetadata marks a metadata document that is not a JSON object.
var ErrMalformedMetadata = errors.New("malformed metadata")

// ErrNoFrames marks an art document with no usable frames.
var ErrNoFrames = errors.New("no frames found")

// Animation is the parsed, cached representation of one library entry.
// It is immutable after construction.
type Animation struct {
	// Name is the metadata display name, falling back to the request name.
	Name string

	// FPS is the metadata frame rate; 0 means absent. A present but
	// non-positive fps is treated as absent.
	FPS float64

	// IntervalMS is the metadata tick period in milliseconds, floored to an
	// integer; 0 means absent.
	IntervalMS int

	// Loop reports whether playback wraps around instead of terminating.
	Loop bool

	// Frames holds the frame texts in display order.
	Frames []string

	// Err is non-nil exactly when the load failed. Frames is empty and the
	// timing fields are zero in that case.
	Err error
}
