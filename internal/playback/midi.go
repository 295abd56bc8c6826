package playback

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Mode selects how voices are rendered
type Mode int

const (
	// Block sounds every voice at once, held for a dotted half note (1.5s at 120 BPM)
	Block Mode = iota
	// Run plays the voices one after another as quarter notes
	Run
)

const (
	ticksPerQuarter = 960
	tempoBPM        = 120
	channel         = 0
	velocity        = 90
)

// RenderMIDI writes voices as a single-track standard MIDI file
func RenderMIDI(w io.Writer, voices []Voice, mode Mode) error {
	if len(voices) == 0 {
		return fmt.Errorf("nothing to render")
	}

	clock := smf.MetricTicks(ticksPerQuarter)
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(tempoBPM))

	switch mode {
	case Block:
		hold := uint32(clock.Ticks4th()) * 3
		for _, v := range voices {
			tr.Add(0, midi.NoteOn(channel, uint8(v.MIDI), velocity))
		}
		for i, v := range voices {
			delta := uint32(0)
			if i == 0 {
				delta = hold
			}
			tr.Add(delta, midi.NoteOff(channel, uint8(v.MIDI)))
		}
	case Run:
		step := uint32(clock.Ticks4th())
		for _, v := range voices {
			tr.Add(0, midi.NoteOn(channel, uint8(v.MIDI), velocity))
			tr.Add(step, midi.NoteOff(channel, uint8(v.MIDI)))
		}
	default:
		return fmt.Errorf("unknown render mode %d", mode)
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write midi: %w", err)
	}
	return nil
}
