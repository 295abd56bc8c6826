package theory

import (
	"fmt"
	"slices"
)

// Pattern is an interval pattern keyed by its type code
type Pattern struct {
	Code    string
	Name    string
	offsets []int
}

// Offsets returns a copy of the pattern's semitone offsets
func (p Pattern) Offsets() []int {
	return slices.Clone(p.offsets)
}

// Len returns the number of notes in the pattern
func (p Pattern) Len() int {
	return len(p.offsets)
}

func pattern(code, name string, offsets ...int) Pattern {
	return Pattern{Code: code, Name: name, offsets: offsets}
}

// Chord patterns in catalog order
var chordPatterns = []Pattern{
	pattern("", "major", 0, 4, 7),
	pattern("m", "minor", 0, 3, 7),
	pattern("dim", "diminished", 0, 3, 6),
	pattern("aug", "augmented", 0, 4, 8),
	pattern("maj7", "major seventh", 0, 4, 7, 11),
	pattern("7", "dominant seventh", 0, 4, 7, 10),
	pattern("m7", "minor seventh", 0, 3, 7, 10),
	pattern("dim7", "diminished seventh", 0, 3, 6, 9),
	pattern("m(maj7)", "minor major seventh", 0, 3, 7, 11),
	pattern("m7b5", "minor seventh flat five", 0, 3, 6, 10),
	pattern("sus2", "suspended second", 0, 2, 7),
	pattern("sus4", "suspended fourth", 0, 5, 7),
	pattern("6", "sixth", 0, 4, 7, 9),
	pattern("6/9", "sixth ninth", 0, 4, 7, 9, 14),
	pattern("9", "dominant ninth", 0, 4, 7, 10, 14),
	pattern("11", "dominant eleventh", 0, 4, 7, 10, 14, 17),
	pattern("13", "dominant thirteenth", 0, 4, 7, 10, 14, 21),
	pattern("5", "fifth", 0, 7),
}

// Scale patterns in catalog order
var scalePatterns = []Pattern{
	pattern("major", "Major", 0, 2, 4, 5, 7, 9, 11),
	pattern("natural minor", "Natural Minor", 0, 2, 3, 5, 7, 8, 10),
	pattern("harmonic minor", "Harmonic Minor", 0, 2, 3, 5, 7, 8, 11),
	pattern("melodic minor", "Melodic Minor", 0, 2, 3, 5, 7, 9, 11),
	pattern("minor pentatonic", "Minor Pentatonic", 0, 3, 5, 7, 10),
	pattern("major pentatonic", "Major Pentatonic", 0, 2, 4, 7, 9),
	pattern("blues", "Blues", 0, 3, 5, 6, 7, 10),
	pattern("major blues", "Major Blues", 0, 2, 3, 4, 7, 9),
	pattern("pentatonic blues", "Pentatonic Blues", 0, 3, 5, 6, 7, 10),
	pattern("whole tone", "Whole Tone", 0, 2, 4, 6, 8, 10),
	pattern("augmented", "Augmented", 0, 3, 4, 7, 8, 11),

	pattern("diminished (halftone - wholetone)", "Diminished (H-W)", 0, 1, 3, 4, 6, 7, 9, 10),
	pattern("diminished (wholetone - halftone)", "Diminished (W-H)", 0, 2, 3, 5, 6, 8, 9, 11),

	// Modes
	pattern("ionian", "Ionian", 0, 2, 4, 5, 7, 9, 11),
	pattern("dorian", "Dorian", 0, 2, 3, 5, 7, 9, 10),
	pattern("phrygian", "Phrygian", 0, 1, 3, 5, 7, 8, 10),
	pattern("lydian", "Lydian", 0, 2, 4, 6, 7, 9, 11),
	pattern("mixolydian", "Mixolydian", 0, 2, 4, 5, 7, 9, 10),
	pattern("aeolian", "Aeolian", 0, 2, 3, 5, 7, 8, 10),
	pattern("locrian", "Locrian", 0, 1, 3, 5, 6, 8, 10),

	pattern("diatonic", "Diatonic", 0, 2, 4, 5, 7, 9, 11),
	pattern("dominant pentatonic", "Dominant Pentatonic", 0, 2, 4, 7, 10),
	pattern("pentatonic neutral", "Pentatonic Neutral", 0, 2, 5, 7, 10),
	pattern("altered", "Altered", 0, 1, 3, 4, 6, 8, 10),
	pattern("bebop major", "Bebop Major", 0, 2, 4, 5, 7, 8, 9, 11),
	pattern("bebop minor", "Bebop Minor", 0, 2, 3, 5, 7, 8, 9, 10),
	pattern("bebop dominant", "Bebop Dominant", 0, 2, 4, 5, 7, 9, 10, 11),
	pattern("bebop half diminished", "Bebop Half Diminished", 0, 1, 3, 5, 6, 7, 8, 10),
}

// roots lists both spellings of every black key, so C# and Db are separate catalog roots
var roots = []string{
	"C", "C#", "Db", "D", "D#", "Eb", "E", "F", "F#", "Gb", "G", "G#", "Ab", "A", "A#", "Bb", "B",
}

// Roots returns the root enumeration used for catalogs (also the chord sort order)
func Roots() []string {
	return slices.Clone(roots)
}

// ChordPattern looks up a chord pattern by type code
func ChordPattern(code string) (Pattern, bool) {
	return lookup(chordPatterns, code)
}

// ScalePattern looks up a scale pattern by type code
func ScalePattern(code string) (Pattern, bool) {
	return lookup(scalePatterns, code)
}

// ChordPatterns returns every chord pattern in declaration order
func ChordPatterns() []Pattern {
	return slices.Clone(chordPatterns)
}

// ScalePatterns returns every scale pattern in declaration order
func ScalePatterns() []Pattern {
	return slices.Clone(scalePatterns)
}

// ChordTypeCodes returns chord type codes in declaration order
func ChordTypeCodes() []string {
	return codes(chordPatterns)
}

// ScaleTypeCodes returns scale type codes in declaration order
func ScaleTypeCodes() []string {
	return codes(scalePatterns)
}

// ValidatePatterns checks that every pattern starts at 0 with strictly increasing offsets
// and that codes are unique
func ValidatePatterns(patterns []Pattern) error {
	seen := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		if seen[p.Code] {
			return fmt.Errorf("duplicate pattern code %q", p.Code)
		}
		seen[p.Code] = true

		if len(p.offsets) == 0 || p.offsets[0] != 0 {
			return fmt.Errorf("pattern %q must start at offset 0", p.Code)
		}
		for i := 1; i < len(p.offsets); i++ {
			if p.offsets[i] <= p.offsets[i-1] {
				return fmt.Errorf("pattern %q offsets not strictly increasing at position %d", p.Code, i)
			}
		}
	}
	return nil
}

func lookup(patterns []Pattern, code string) (Pattern, bool) {
	for _, p := range patterns {
		if p.Code == code {
			return p, true
		}
	}
	return Pattern{}, false
}

func codes(patterns []Pattern) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.Code
	}
	return out
}
