package server

import (
	"fmt"
	"net/http"
	"strings"

	"artcast/internal/client"
	"artcast/internal/logging"
	"artcast/internal/stream"
)

const usageText = `artcast serves ASCII-art animations to your terminal.

  GET /list      list the available animations
  GET /<name>    stream an animation

Point curl at an animation and enjoy:

  curl http://HOST/<name>
`

const browserPage = `<!DOCTYPE html>
<html>
<head><title>artcast</title></head>
<body>
<h1>artcast</h1>
<p>This endpoint streams an ASCII-art animation, which only makes sense in a
terminal. Open a shell and run:</p>
<pre>curl http://HOST/NAME</pre>
<p>See <a href="/list">/list</a> for the available animations.</p>
</body>
</html>
`

// route dispatches every request. The surface is small enough that a single
// switch over the trimmed path is clearer than per-pattern registrations.
func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeText(w, http.StatusMethodNotAllowed, "only GET is supported\n")
		return
	}

	switch strings.Trim(r.URL.Path, "/") {
	case "":
		writeText(w, http.StatusOK, usageText)
	case "list":
		s.handleList(w, r)
	default:
		s.handleAnimation(w, r)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.library.Names()
	if err != nil {
		s.logger.Error("library enumeration failed", logging.Error(err))
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("cannot list animations: %v\n", err))
		return
	}
	writeText(w, http.StatusOK, s.formatter.Format(names))
}

func (s *Server) handleAnimation(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(r.URL.Path, "/")

	// A name that is not a library directory is a routing miss, distinct
	// from a broken animation; it is never cached as an error entry.
	if !s.library.Exists(name) {
		writeText(w, http.StatusNotFound, fmt.Sprintf("unknown animation %q\n", name))
		return
	}

	anim := s.store.Load(name)
	if anim.Err != nil {
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("cannot play %q: %v\n", name, anim.Err))
		return
	}

	if client.Classify(r.UserAgent()) == client.Browser {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(browserPage))
		return
	}

	stream.Serve(w, r, anim, s.logger)
}
