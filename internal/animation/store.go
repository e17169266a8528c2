package animation

import (
	"log/slog"
	"sync"

	"artcast/internal/logging"
)

// Source supplies raw animation documents. Implemented by assets.Library.
type Source interface {
	ReadMetadata(name string) ([]byte, error)
	ReadArt(name string) ([]byte, error)
}

// Store loads animations lazily and caches every outcome by name for the
// process lifetime. Entries are never evicted or refreshed; a fixed asset
// requires a restart to be picked up.
type Store struct {
	source Source
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	once sync.Once
	anim *Animation
}

// NewStore creates a store backed by source.
func NewStore(source Source, logger *slog.Logger) *Store {
	return &Store{
		source:  source,
		logger:  logging.NewComponentLogger(logger, "store"),
		entries: make(map[string]*entry),
	}
}

// Load returns the cached animation for name, parsing it on first request.
// The result is never nil; failures are carried in Animation.Err and cached
// like successes. Concurrent first loads of one name share a single parse.
func (s *Store) Load(name string) *Animation {
	s.mu.Lock()
	e, ok := s.entries[name]
	if !ok {
		e = &entry{}
		s.entries[name] = e
	}
	s.mu.Unlock()

	e.once.Do(func() {
		e.anim = s.build(name)
	})
	return e.anim
}

// Cached returns the entry for name without triggering a load.
func (s *Store) Cached(name string) (*Animation, bool) {
	s.mu.Lock()
	e, ok := s.entries[name]
	s.mu.Unlock()
	if !ok || e.anim == nil {
		return nil, false
	}
	return e.anim, true
}

func (s *Store) build(name string) *Animation {
	// Fetch both documents concurrently; a failure on either side fails the
	// whole load.
	type fetched struct {
		data []byte
		err  error
	}
	artCh := make(chan fetched, 1)
	go func() {
		data, err := s.source.ReadArt(name)
		artCh <- fetched{data, err}
	}()
	metaData, metaErr := s.source.ReadMetadata(name)
	art := <-artCh

	anim := &Animation{Name: name}
	if metaErr != nil {
		return s.fail(name, metaErr)
	}
	if art.err != nil {
		return s.fail(name, art.err)
	}

	if err := parseMetadata(name, metaData, anim); err != nil {
		return s.fail(name, err)
	}
	frames, err := parseFrames(name, art.data)
	if err != nil {
		return s.fail(name, err)
	}
	anim.Frames = frames

	s.logger.Info("animation loaded",
		logging.String(logging.FieldAnimation, name),
		logging.Int("frames", len(frames)),
		logging.Bool("loop", anim.Loop))
	return anim
}

func (s *Store) fail(name string, err error) *Animation {
	s.logger.Warn("animation load failed",
		logging.String(logging.FieldAnimation, name),
		logging.Error(err))
	return &Animation{Name: name, Err: err}
}
