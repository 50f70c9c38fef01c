// Package state holds the resolved popup configuration for cross-context
// reads by the window host.
package state

import (
	"errors"
	"sync"

	"github.com/marko-lisica/popup/internal/config"
)

// ErrNoConfig is returned when the config is queried before resolution has
// completed.
var ErrNoConfig = errors.New("no config loaded")

// ErrAlreadyLoaded is returned on a second Set. The resolved config is
// write-once for the life of the process.
var ErrAlreadyLoaded = errors.New("config already loaded")

// Store is a write-once cell for the resolved Config: at most one writer
// ever, any number of concurrent readers.
type Store struct {
	mu  sync.RWMutex
	cfg *config.Config
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Set stores the resolved config. It fails with ErrAlreadyLoaded if called
// a second time.
func (s *Store) Set(cfg *config.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg != nil {
		return ErrAlreadyLoaded
	}
	s.cfg = cfg
	return nil
}

// Config returns the resolved config, or ErrNoConfig before Set has been
// called.
func (s *Store) Config() (*config.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cfg == nil {
		return nil, ErrNoConfig
	}
	return s.cfg, nil
}
