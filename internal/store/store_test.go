package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   string   `json:"id"`
	Key  string   `json:"key"`
	Type string   `json:"type"`
	Tags []string `json:"tags"`
}

func writeRaw(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDistinctFailures(t *testing.T) {
	tests := []struct {
		name  string
		path  func(t *testing.T) string
		kind  error
		state string
	}{
		{
			name:  "missing file",
			path:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			kind:  ErrNotFound,
			state: "not_found",
		},
		{
			name:  "empty file",
			path:  func(t *testing.T) string { return writeRaw(t, "") },
			kind:  ErrEmpty,
			state: "empty",
		},
		{
			name:  "whitespace only",
			path:  func(t *testing.T) string { return writeRaw(t, "  \n\t ") },
			kind:  ErrEmpty,
			state: "empty",
		},
		{
			name:  "object instead of array",
			path:  func(t *testing.T) string { return writeRaw(t, `{"id": "c-major"}`) },
			kind:  ErrMalformed,
			state: "malformed",
		},
		{
			name:  "broken json",
			path:  func(t *testing.T) string { return writeRaw(t, `[{"id": `) },
			kind:  ErrMalformed,
			state: "malformed",
		},
		{
			name:  "null",
			path:  func(t *testing.T) string { return writeRaw(t, "null") },
			kind:  ErrMalformed,
			state: "malformed",
		},
	}

	all := []error{ErrNotFound, ErrEmpty, ErrMalformed}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load[entry](tt.path(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			for _, other := range all {
				if other != tt.kind {
					assert.False(t, errors.Is(err, other), "error should not also be %v", other)
				}
			}

			var storeErr *Error
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, tt.state, StateOf(err))
		})
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ScalesFile)
	in := []entry{
		{ID: "c-major", Key: "C", Type: "major", Tags: []string{"C", "D"}},
		{ID: "cs-m7", Key: "C#", Type: "m(maj7)", Tags: []string{"<b>"}},
	}
	require.NoError(t, Write(path, in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {\n    \"id\": \"c-major\"")
	assert.Contains(t, string(raw), `"<b>"`, "HTML characters must not be escaped")

	out, err := Load[entry](path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temp files should be renamed away")
}

func TestLoadEmptyArray(t *testing.T) {
	entries, err := Load[entry](writeRaw(t, "[]"))
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestInspect(t *testing.T) {
	path := writeRaw(t, `[{"id":"a"},{"id":"b"}]`)
	status := Inspect(path)
	assert.Equal(t, "ok", status.State)
	assert.Equal(t, 2, status.Entries)

	status = Inspect(filepath.Join(t.TempDir(), ChordsFile))
	assert.Equal(t, "not_found", status.State)
	assert.Equal(t, ChordsFile, status.File)
	assert.NotEmpty(t, status.Error)
}

func TestFilter(t *testing.T) {
	entries := []entry{
		{ID: "1", Key: "C", Type: "major"},
		{ID: "2", Key: "C", Type: "dorian"},
		{ID: "3", Key: "D", Type: "major"},
	}
	byKey := func(v string) Criterion[entry] {
		return Criterion[entry]{Field: func(e entry) string { return e.Key }, Value: v}
	}
	byType := func(v string) Criterion[entry] {
		return Criterion[entry]{Field: func(e entry) string { return e.Type }, Value: v}
	}

	assert.Len(t, Filter(entries, byKey("C")), 2)
	assert.Len(t, Filter(entries, byKey("all"), byType("major")), 2)
	assert.Len(t, Filter(entries, byKey(""), byType("all")), 3)

	both := Filter(entries, byKey("C"), byType("major"))
	require.Len(t, both, 1)
	assert.Equal(t, "1", both[0].ID)

	assert.Empty(t, Filter(entries, byKey("E")))
	assert.Empty(t, Filter(entries, byKey("c")), "filtering is case sensitive equality")
}

func TestSearchAndFind(t *testing.T) {
	entries := []entry{
		{ID: "c-major", Tags: []string{"C", "E", "G"}},
		{ID: "db-major", Tags: []string{"Db", "F", "Ab"}},
	}
	fields := func(e entry) []string { return append([]string{e.ID}, e.Tags...) }

	assert.Len(t, Search(entries, "", fields), 2)
	assert.Len(t, Search(entries, "MAJOR", fields), 2)

	found := Search(entries, "ab", fields)
	require.Len(t, found, 1)
	assert.Equal(t, "db-major", found[0].ID)

	e, ok := Find(entries, "db-major", func(e entry) string { return e.ID })
	assert.True(t, ok)
	assert.Equal(t, "db-major", e.ID)

	_, ok = Find(entries, "x", func(e entry) string { return e.ID })
	assert.False(t, ok)
}

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFile)
	in := &Manifest{
		Version:     "test",
		GeneratedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Catalogs: map[string]CatalogStats{
			"chords": {File: ChordsFile, Attempted: 306, Generated: 306, Complete: true},
			"scales": {File: ScalesFile, Attempted: 476, Generated: 470, Skipped: 6},
		},
	}
	require.NoError(t, WriteManifest(path, in))

	out, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, in.Version, out.Version)
	assert.True(t, in.GeneratedAt.Equal(out.GeneratedAt))
	assert.Equal(t, in.Catalogs, out.Catalogs)
	assert.Equal(t, []string{"scales"}, out.Incomplete())

	_, err = ReadManifest(filepath.Join(t.TempDir(), ManifestFile))
	assert.ErrorIs(t, err, ErrNotFound)

	bad := writeRaw(t, "version = [")
	_, err = ReadManifest(bad)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestWatcherReportsCatalogRewrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, Write(filepath.Join(dir, ChordsFile), []entry{{ID: "C"}}))

	select {
	case change := <-w.Changes:
		assert.Equal(t, ChordsFile, change.File)
		assert.False(t, change.Removed)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestManifestSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFile)
	snap := NewManifestSnapshot(path)

	_, err := snap.Get()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, WriteManifest(path, &Manifest{Version: "v2", Catalogs: map[string]CatalogStats{}}))
	snap.Refresh()

	m, err := snap.Get()
	require.NoError(t, err)
	assert.Equal(t, "v2", m.Version)
}
