package stream

import (
	"log/slog"
	"net/http"

	"artcast/internal/animation"
)

// Serve takes exclusive ownership of the response and plays anim until the
// client disconnects or the sequence finishes. The response is unbounded and
// uncacheable; X-Accel-Buffering disables proxy buffering so frames reach the
// terminal as they are written.
func Serve(w http.ResponseWriter, r *http.Request, anim *animation.Animation, logger *slog.Logger) {
	header := w.Header()
	header.Set("Content-Type", "text/plain; charset=utf-8")
	header.Set("Cache-Control", "no-cache")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	var flush func()
	if flusher, ok := w.(http.Flusher); ok {
		flush = flusher.Flush
	}
	NewSession(anim, w, flush, logger).Run(r.Context())
}
