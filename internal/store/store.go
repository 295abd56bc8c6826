package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names inside the data directory
const (
	ChordsFile   = "chords.json"
	ScalesFile   = "scales.json"
	ManifestFile = "catalog.toml"
)

// Read-side failures, each reported separately so callers can tell
// "nothing generated yet" from "generated but corrupt"
var (
	ErrNotFound  = errors.New("catalog store not found")
	ErrEmpty     = errors.New("catalog store is empty")
	ErrMalformed = errors.New("catalog store is malformed")
)

// Error describes a failed store read
type Error struct {
	Kind error // One of ErrNotFound, ErrEmpty, ErrMalformed
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Path)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Load reads a flat JSON array of catalog entries
func Load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: ErrNotFound, Path: path}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Decode[T](path, data)
}

// Decode parses catalog content read from path
func Decode[T any](path string, data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &Error{Kind: ErrEmpty, Path: path}
	}
	if trimmed[0] != '[' {
		return nil, &Error{Kind: ErrMalformed, Path: path, Err: errors.New("content is not a JSON array")}
	}

	var entries []T
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &Error{Kind: ErrMalformed, Path: path, Err: err}
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// Write serializes v as indented JSON to path, going through a temp file and rename
func Write(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Status reports how a catalog file looks without keeping its entries
type Status struct {
	File    string `json:"file"`
	State   string `json:"state"` // ok, not_found, empty, malformed, error
	Entries int    `json:"entries"`
	Error   string `json:"error,omitempty"`
}

// Inspect loads path as a generic array and reports its state
func Inspect(path string) Status {
	status := Status{File: filepath.Base(path)}

	entries, err := Load[json.RawMessage](path)
	if err != nil {
		status.State = StateOf(err)
		status.Error = err.Error()
		return status
	}

	status.State = "ok"
	status.Entries = len(entries)
	return status
}

// StateOf maps a Load error to a short machine-readable state
func StateOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrEmpty):
		return "empty"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	default:
		return "error"
	}
}
