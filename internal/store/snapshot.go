package store

import "sync"

// ManifestSnapshot keeps the last read of catalog.toml for cheap health reporting.
// The server refreshes it when the watcher reports a change.
type ManifestSnapshot struct {
	path string

	mu       sync.RWMutex
	manifest *Manifest
	err      error
}

// NewManifestSnapshot reads the manifest at path once
func NewManifestSnapshot(path string) *ManifestSnapshot {
	s := &ManifestSnapshot{path: path}
	s.Refresh()
	return s
}

// Refresh re-reads the manifest file
func (s *ManifestSnapshot) Refresh() {
	m, err := ReadManifest(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifest, s.err = m, err
}

// Get returns the last manifest read, or the error that read produced
func (s *ManifestSnapshot) Get() (*Manifest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.manifest, s.err
}
