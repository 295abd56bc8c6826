package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Manifest records what the last generation run produced
type Manifest struct {
	Version     string                  `toml:"version"`
	GeneratedAt time.Time               `toml:"generated_at"`
	Catalogs    map[string]CatalogStats `toml:"catalogs"`
}

// CatalogStats is the per-catalog summary of a generation run
type CatalogStats struct {
	File       string `toml:"file" json:"file"`
	Attempted  int    `toml:"attempted" json:"attempted"`
	Generated  int    `toml:"generated" json:"generated"`
	Skipped    int    `toml:"skipped" json:"skipped"`
	Duplicates int    `toml:"duplicates" json:"duplicates"`
	Complete   bool   `toml:"complete" json:"complete"`
}

// Incomplete lists the catalogs whose last run was degraded
func (m *Manifest) Incomplete() []string {
	var names []string
	for name, stats := range m.Catalogs {
		if !stats.Complete {
			names = append(names, name)
		}
	}
	return names
}

// WriteManifest stores the manifest as TOML
func WriteManifest(path string, m *Manifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return writeFile(path, data)
}

// ReadManifest loads a manifest written by WriteManifest
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: ErrNotFound, Path: path}
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if len(data) == 0 {
		return nil, &Error{Kind: ErrEmpty, Path: path}
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, &Error{Kind: ErrMalformed, Path: path, Err: err}
	}
	return &m, nil
}
