package catalog

import (
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

// ErrInvalidEntry marks a stored entry that breaks a catalog invariant
var ErrInvalidEntry = errors.New("invalid catalog entry")

// CheckChords verifies stored chords: unique symbols, notes led by the root,
// one interval per note, and root-then-type ordering
func CheckChords(chords []models.Chord) []error {
	var problems []error
	seen := make(map[string]bool, len(chords))
	rootRank := rankOf(theory.Roots())
	typeRank := rankOf(theory.ChordTypeCodes())

	for i, c := range chords {
		if seen[c.Symbol] {
			problems = append(problems, fmt.Errorf("%w: duplicate chord %q", ErrInvalidEntry, c.Symbol))
		}
		seen[c.Symbol] = true
		problems = append(problems, checkShape(c.Symbol, c.Root, c.Notes, c.Intervals)...)

		if i == 0 {
			continue
		}
		prev := chords[i-1]
		pr, cr := rankFor(rootRank, prev.Root), rankFor(rootRank, c.Root)
		if cr < pr || (cr == pr && rankFor(typeRank, c.Type) < rankFor(typeRank, prev.Type)) {
			problems = append(problems, fmt.Errorf("%w: chord %q is out of order after %q", ErrInvalidEntry, c.Symbol, prev.Symbol))
		}
	}
	return problems
}

// CheckScales verifies stored scales: unique ids matching key and type,
// notes led by the key, one interval per note
func CheckScales(scales []models.Scale) []error {
	var problems []error
	seen := make(map[string]bool, len(scales))

	for _, s := range scales {
		if seen[s.ID] {
			problems = append(problems, fmt.Errorf("%w: duplicate scale %q", ErrInvalidEntry, s.ID))
		}
		seen[s.ID] = true
		if want := ScaleID(s.Key, s.Type); s.ID != want {
			problems = append(problems, fmt.Errorf("%w: scale %q should have id %q", ErrInvalidEntry, s.ID, want))
		}
		problems = append(problems, checkShape(s.ID, s.Key, s.Notes, s.Intervals)...)
	}
	return problems
}

func checkShape(id, root string, notes, intervals []string) []error {
	var problems []error
	if len(notes) == 0 || notes[0] != root {
		problems = append(problems, fmt.Errorf("%w: %q does not start on %q", ErrInvalidEntry, id, root))
	}
	if len(notes) != len(intervals) {
		problems = append(problems, fmt.Errorf("%w: %q has %d notes and %d intervals", ErrInvalidEntry, id, len(notes), len(intervals)))
	}
	if len(intervals) > 0 && intervals[0] != "1" {
		problems = append(problems, fmt.Errorf("%w: %q intervals start with %q", ErrInvalidEntry, id, intervals[0]))
	}
	return problems
}
