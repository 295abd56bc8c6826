package theory

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnrecognizedNote is returned when a note name matches neither spelling table
var ErrUnrecognizedNote = errors.New("unrecognized note")

const semitonesPerOctave = 12

// PitchClass is a note identity modulo the octave (0-11)
type PitchClass int

// Transpose moves the pitch class by the given number of semitones, wrapping modulo 12
func (pc PitchClass) Transpose(semitones int) PitchClass {
	return PitchClass(((int(pc)+semitones)%semitonesPerOctave + semitonesPerOctave) % semitonesPerOctave)
}

// IsBlackKey reports whether the pitch class sits on a black piano key
func (pc PitchClass) IsBlackKey() bool {
	return len(sharpNames[pc.Transpose(0)]) > 1
}

var (
	sharpNames = [semitonesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [semitonesPerOctave]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// canonicalFlats are the five names that read flat even under a natural root
var canonicalFlats = map[string]bool{
	"Db": true, "Eb": true, "Gb": true, "Ab": true, "Bb": true,
}

// ParseNote converts a note name like "C#", "Db", "Eb4" or "C-1" to its pitch class.
// The octave is ignored.
func ParseNote(name string) (PitchClass, error) {
	clean := cleanNoteName(name)

	for i, n := range sharpNames {
		if n == clean {
			return PitchClass(i), nil
		}
	}
	for i, n := range flatNames {
		if n == clean {
			return PitchClass(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedNote, name)
}

// NoteName returns the name of a pitch class from the sharp or flat table
func NoteName(pc PitchClass, preferSharp bool) string {
	pc = pc.Transpose(0)
	if preferSharp {
		return sharpNames[pc]
	}
	return flatNames[pc]
}

// PreferSharp decides how a note derived from root is spelled.
// A sharp root keeps every derived note sharp. A flat root, or a derived note whose
// flat name is one of Db/Eb/Gb/Ab/Bb, is spelled flat. Everything else is sharp.
// Spellings can therefore mix inside a single chord.
func PreferSharp(root string, pc PitchClass) bool {
	if strings.Contains(root, "#") {
		return true
	}
	if strings.Contains(root, "b") || canonicalFlats[NoteName(pc, false)] {
		return false
	}
	return true
}

// SpellNote names pc following the spelling policy of root
func SpellNote(root string, pc PitchClass) string {
	return NoteName(pc, PreferSharp(root, pc))
}

// NormalizeNote returns the canonical spelling of name, keeping the name untouched
// when it is not recognized
func NormalizeNote(name string) string {
	pc, err := ParseNote(name)
	if err != nil {
		return name
	}
	return NoteName(pc, !strings.Contains(cleanNoteName(name), "b"))
}

// SplitOctave separates a note name from its octave digits ("Eb4" -> "Eb", "4")
func SplitOctave(name string) (string, string) {
	var note, octave strings.Builder
	for _, r := range name {
		if unicode.IsDigit(r) || r == '-' {
			octave.WriteRune(r)
			continue
		}
		note.WriteRune(r)
	}
	return strings.TrimSpace(note.String()), octave.String()
}

func cleanNoteName(name string) string {
	note, _ := SplitOctave(name)
	return note
}
