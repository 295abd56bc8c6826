package catalog

import (
	"path/filepath"

	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

// LoadChords reads chords.json from dataDir
func LoadChords(dataDir string) ([]models.Chord, error) {
	return store.Load[models.Chord](filepath.Join(dataDir, store.ChordsFile))
}

// LoadScales reads scales.json from dataDir
func LoadScales(dataDir string) ([]models.Scale, error) {
	return store.Load[models.Scale](filepath.Join(dataDir, store.ScalesFile))
}

// ChordFilter narrows chords by root, type and free-text query.
// Empty or "all" values do not filter. Roots are compared by canonical spelling,
// so "Eb4" or " C# " select the Eb or C# chords.
type ChordFilter struct {
	Root  string
	Type  string
	Query string
}

// Apply filters chords, preserving catalog order
func (f ChordFilter) Apply(chords []models.Chord) []models.Chord {
	filtered := store.Filter(chords,
		store.Criterion[models.Chord]{Field: func(c models.Chord) string { return c.Root }, Value: theory.NormalizeNote(f.Root)},
		store.Criterion[models.Chord]{Field: func(c models.Chord) string { return c.Type }, Value: f.Type},
	)
	return store.Search(filtered, f.Query, func(c models.Chord) []string {
		return append([]string{c.Symbol, c.FullName}, c.Notes...)
	})
}

// ScaleFilter narrows scales by key, type and free-text query
type ScaleFilter struct {
	Key   string
	Type  string
	Query string
}

// Apply filters scales, preserving catalog order
func (f ScaleFilter) Apply(scales []models.Scale) []models.Scale {
	filtered := store.Filter(scales,
		store.Criterion[models.Scale]{Field: func(s models.Scale) string { return s.Key }, Value: theory.NormalizeNote(f.Key)},
		store.Criterion[models.Scale]{Field: func(s models.Scale) string { return s.Type }, Value: f.Type},
	)
	return store.Search(filtered, f.Query, func(s models.Scale) []string {
		return append([]string{s.ID, s.Name, s.Key, s.Type}, s.Notes...)
	})
}
