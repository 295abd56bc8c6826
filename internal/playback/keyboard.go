package playback

import "github.com/Conceptual-Machines/piano-chords/internal/theory"

// Key is one key of a drawn keyboard
type Key struct {
	Name        string
	Octave      int
	MIDI        int
	Black       bool
	Highlighted bool
}

// Keyboard lays out the keys from startOctave through endOctave, highlighting
// the MIDI keys of voices
func Keyboard(startOctave, endOctave int, voices []Voice) []Key {
	lit := make(map[int]bool, len(voices))
	for _, v := range voices {
		lit[v.MIDI] = true
	}

	keys := make([]Key, 0, (endOctave-startOctave+1)*12)
	for octave := startOctave; octave <= endOctave; octave++ {
		for pc := theory.PitchClass(0); pc < 12; pc++ {
			midi := (octave+1)*12 + int(pc)
			keys = append(keys, Key{
				Name:        theory.NoteName(pc, true),
				Octave:      octave,
				MIDI:        midi,
				Black:       pc.IsBlackKey(),
				Highlighted: lit[midi],
			})
		}
	}
	return keys
}
