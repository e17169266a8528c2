// Package stream drives the per-connection playback of one animation.
//
// A Session owns its connection for the duration of playback. It emits ANSI
// clear/home sequences followed by the next frame on a fixed ticker, wraps or
// terminates at the end of the frame sequence depending on the animation's
// loop flag, and collapses to a single idempotent "ended" state on
// disconnect or write failure. Once ended, every write is a no-op; a client
// disconnect is the only cancellation signal there is.
package stream
