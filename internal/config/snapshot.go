package config

import "sync"

// Snapshot is the shared, lock-guarded view of a loaded configuration.
//
// One snapshot is created per pipeline run. Callers must keep the guard
// scoped to a single read and never hold it across a process spawn, which is
// why access goes through callbacks instead of an exposed lock.
type Snapshot struct {
	mu  sync.RWMutex
	cfg *Config
}

// NewSnapshot wraps a loaded configuration.
func NewSnapshot(cfg *Config) *Snapshot {
	return &Snapshot{cfg: cfg}
}

// View runs fn under a read lock. fn must not retain the *Config.
func (s *Snapshot) View(fn func(cfg *Config)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.cfg)
}

// Update runs fn under the write lock. fn must not retain the *Config.
func (s *Snapshot) Update(fn func(cfg *Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.cfg)
}
