package stream

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"artcast/internal/animation"
	"artcast/internal/logging"
)

// ANSI control sequences used to repaint the client terminal.
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// Session streams one animation to one connection. It is driven by Run and
// must not be reused.
type Session struct {
	id       string
	anim     *animation.Animation
	out      io.Writer
	flush    func()
	interval time.Duration
	logger   *slog.Logger

	frameIndex int
	ended      atomic.Bool
}

// NewSession prepares playback of anim onto out. flush, when non-nil, is
// invoked after every successful write so frames are not held back by
// response buffering.
func NewSession(anim *animation.Animation, out io.Writer, flush func(), logger *slog.Logger) *Session {
	s := &Session{
		id:       uuid.NewString(),
		anim:     anim,
		out:      out,
		flush:    flush,
		interval: ResolveInterval(anim),
	}
	s.logger = logging.NewComponentLogger(logger, "stream").With(
		logging.String(logging.FieldSession, s.id),
		logging.String(logging.FieldAnimation, anim.Name))
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Interval returns the resolved tick period.
func (s *Session) Interval() time.Duration { return s.interval }

// Ended reports whether the session has reached its terminal state.
func (s *Session) Ended() bool { return s.ended.Load() }

// Run plays the animation until the frame sequence is exhausted (non-loop),
// the context is done (client disconnect), or a write fails. It blocks for
// the duration of playback.
func (s *Session) Run(ctx context.Context) {
	s.logger.Info("session started",
		logging.Duration("interval", s.interval),
		logging.Int("frames", len(s.anim.Frames)),
		logging.Bool("loop", s.anim.Loop))

	if !s.write(hideCursor + clearScreen + cursorHome) {
		return
	}
	// Frame 0 goes out immediately; the ticker paces everything after it.
	if !s.Tick() {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.end("disconnect")
			return
		case <-ticker.C:
			if !s.Tick() {
				return
			}
		}
	}
}

// Tick emits the current frame and advances the index. It returns false once
// the session is over: already ended, write failure, or a finished non-loop
// sequence. Calling Tick on an ended session is a no-op.
func (s *Session) Tick() bool {
	if s.ended.Load() {
		return false
	}
	if !s.write(clearScreen + cursorHome + s.anim.Frames[s.frameIndex]) {
		return false
	}
	s.frameIndex++
	if s.frameIndex < len(s.anim.Frames) {
		return true
	}
	if s.anim.Loop {
		s.frameIndex = 0
		return true
	}
	// Normal termination for a finite animation: restore the cursor and let
	// the connection close.
	s.write(showCursor)
	s.end("finished")
	return false
}

// write sends text unless the session has ended. A write failure transitions
// the session to ended without surfacing an error.
func (s *Session) write(text string) bool {
	if s.ended.Load() {
		return false
	}
	if _, err := io.WriteString(s.out, text); err != nil {
		s.end("write failed")
		return false
	}
	if s.flush != nil {
		s.flush()
	}
	return true
}

// end performs the single idempotent stop transition.
func (s *Session) end(reason string) {
	if !s.ended.CompareAndSwap(false, true) {
		return
	}
	s.logger.Info("session ended", logging.String("reason", reason))
}
