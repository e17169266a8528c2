package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"artcast/internal/animation"
	"artcast/internal/assets"
	"artcast/internal/listing"
	"artcast/internal/logging"
)

// Server serves the animation library over HTTP.
type Server struct {
	bind      string
	logger    *slog.Logger
	library   *assets.Library
	store     *animation.Store
	formatter *listing.Formatter

	listener net.Listener
	server   *http.Server
}

// New wires a server for the given library. The store and listing formatter
// are owned by the server; all handlers share one cache.
func New(bind string, library *assets.Library, logger *slog.Logger) *Server {
	store := animation.NewStore(library, logger)
	s := &Server{
		bind:      bind,
		logger:    logging.NewComponentLogger(logger, "server"),
		library:   library,
		store:     store,
		formatter: listing.NewFormatter(store),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.route)
	s.server = &http.Server{
		Handler: s.recovered(mux),
		// Streaming responses are unbounded, so only the header read is
		// bounded here.
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Store exposes the shared animation cache.
func (s *Server) Store() *animation.Store { return s.store }

// Handler returns the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.server.Handler }

// Start begins listening and serving. The server drains and shuts down when
// ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.bind, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Port returns the bound TCP port, or 0 before Start.
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// Stop shuts the server down immediately.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// recovered converts handler panics into plain 500 responses.
func (s *Server) recovered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic",
					logging.String("path", r.URL.Path),
					logging.String("panic", fmt.Sprint(rec)))
				writeText(w, http.StatusInternalServerError, "Internal server error\n")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
