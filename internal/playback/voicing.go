package playback

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

const (
	// DefaultOctave is the octave of notes that carry none (C4 = middle C = 60)
	DefaultOctave = 4

	minMIDI = 0
	maxMIDI = 127
)

// Voice is one sounding note
type Voice struct {
	Note      string  `json:"note"`
	MIDI      int     `json:"midi"`
	Frequency float64 `json:"frequency"`
}

// MIDINumber converts a note name with an optional octave ("Eb3", "C-1") to a MIDI key.
// Notes without an octave use defaultOctave. Results are clamped to 0..127.
func MIDINumber(note string, defaultOctave int) (int, error) {
	name, octaveText := theory.SplitOctave(note)
	pc, err := theory.ParseNote(name)
	if err != nil {
		return 0, err
	}

	octave := defaultOctave
	if octaveText != "" {
		octave, err = strconv.Atoi(octaveText)
		if err != nil {
			return 0, fmt.Errorf("%w: bad octave in %q", theory.ErrUnrecognizedNote, note)
		}
	}

	return clamp((octave+1)*12 + int(pc)), nil
}

// Frequency is the equal-tempered pitch of a MIDI key with A4 = 440 Hz
func Frequency(midi int) float64 {
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// Voicing places notes on the keyboard starting in octave. With ascending false every
// note sits in the same octave; with ascending true each note is raised by octaves
// until it is above the previous one, so extensions like 9 and 13 sound above the root.
func Voicing(notes []string, octave int, ascending bool) ([]Voice, error) {
	voices := make([]Voice, 0, len(notes))
	prev := -1
	for _, note := range notes {
		midi, err := MIDINumber(note, octave)
		if err != nil {
			return nil, err
		}
		if ascending {
			for midi <= prev && midi+12 <= maxMIDI {
				midi += 12
			}
		}
		prev = midi
		voices = append(voices, Voice{Note: note, MIDI: midi, Frequency: Frequency(midi)})
	}
	return voices, nil
}

func clamp(midi int) int {
	return max(minMIDI, min(maxMIDI, midi))
}
