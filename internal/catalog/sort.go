package catalog

import (
	"slices"

	"github.com/Conceptual-Machines/piano-chords/internal/logger"
	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

// SortChords orders chords by the fixed root order, then chord type declaration order.
// Chords with an unknown root or type rank -1 and land first. The sort is stable.
func SortChords(chords []models.Chord) {
	rootRank := rankOf(theory.Roots())
	typeRank := rankOf(theory.ChordTypeCodes())

	rank := func(ranks map[string]int, key, field, symbol string) int {
		r := rankFor(ranks, key)
		if r == unknownRank {
			logger.Warn("Unknown sort key", logger.Fields{"symbol": symbol, field: key})
		}
		return r
	}

	type keyed struct {
		root, kind int
		chord      models.Chord
	}
	items := make([]keyed, len(chords))
	for i, c := range chords {
		items[i] = keyed{
			root:  rank(rootRank, c.Root, "root", c.Symbol),
			kind:  rank(typeRank, c.Type, "type", c.Symbol),
			chord: c,
		}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		if a.root != b.root {
			return a.root - b.root
		}
		return a.kind - b.kind
	})

	for i, item := range items {
		chords[i] = item.chord
	}
}

// unknownRank places roots and types missing from the tables before all known ones
const unknownRank = -1

func rankFor(ranks map[string]int, key string) int {
	if r, ok := ranks[key]; ok {
		return r
	}
	return unknownRank
}

func rankOf(keys []string) map[string]int {
	ranks := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, ok := ranks[k]; !ok {
			ranks[k] = i
		}
	}
	return ranks
}
