package catalog

import (
	"github.com/Conceptual-Machines/piano-chords/internal/logger"
	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

// Entry is anything with a catalog identity (chord symbol, scale id)
type Entry interface {
	Identity() string
}

// BuildFunc builds one entry for a root and type code
type BuildFunc[T Entry] func(root, code string) (T, error)

// Skip records an entry that could not be generated
type Skip struct {
	Root string `json:"root"`
	Type string `json:"type"`
	Err  string `json:"error"`
}

// Result is the outcome of building one catalog
type Result[T Entry] struct {
	Entries    []T
	Skipped    []Skip
	Attempted  int
	Duplicates int
}

// Build walks the Cartesian product of roots and codes, roots outer and codes inner.
// Failed combinations are skipped and logged; later duplicates of an identity are dropped.
func Build[T Entry](roots, codes []string, build BuildFunc[T]) Result[T] {
	result := Result[T]{
		Entries: make([]T, 0, len(roots)*len(codes)),
		Skipped: []Skip{},
	}
	seen := make(map[string]bool, len(roots)*len(codes))

	for _, root := range roots {
		for _, code := range codes {
			result.Attempted++

			entry, err := build(root, code)
			if err != nil {
				logger.Warn("Skipping catalog entry", logger.Fields{
					"root":  root,
					"type":  code,
					"error": err.Error(),
				})
				result.Skipped = append(result.Skipped, Skip{Root: root, Type: code, Err: err.Error()})
				continue
			}

			id := entry.Identity()
			if seen[id] {
				result.Duplicates++
				continue
			}
			seen[id] = true
			result.Entries = append(result.Entries, entry)
		}
	}

	return result
}

// ChordCatalog builds every chord type on every root, sorted for output
func ChordCatalog(roots []string) Result[models.Chord] {
	result := Build(roots, theory.ChordTypeCodes(), BuildChord)
	SortChords(result.Entries)
	return result
}

// ScaleCatalog builds every scale type on every root in generation order
func ScaleCatalog(roots []string) Result[models.Scale] {
	return Build(roots, theory.ScaleTypeCodes(), BuildScale)
}
