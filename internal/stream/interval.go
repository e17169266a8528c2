package stream

import (
	"math"
	"time"

	"artcast/internal/animation"
)

// DefaultInterval is the tick period when metadata carries no usable timing.
const DefaultInterval = 100 * time.Millisecond

// MinInterval is the floor applied to every resolved tick period. It keeps
// malformed metadata from turning a session into a busy-loop.
const MinInterval = 10 * time.Millisecond

// ResolveInterval computes the tick period for one session. An explicit
// interval wins over fps; both are clamped to MinInterval; neither present
// falls back to DefaultInterval.
func ResolveInterval(anim *animation.Animation) time.Duration {
	if anim.IntervalMS > 0 {
		return clamp(time.Duration(anim.IntervalMS) * time.Millisecond)
	}
	if anim.FPS > 0 {
		ms := math.Round(1000 / anim.FPS)
		return clamp(time.Duration(ms) * time.Millisecond)
	}
	return DefaultInterval
}

func clamp(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	return d
}
