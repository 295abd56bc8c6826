package playback

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

func TestMIDINumber(t *testing.T) {
	tests := []struct {
		note string
		want int
	}{
		{"A4", 69},
		{"C", 60},
		{"C4", 60},
		{"Db", 61},
		{"C#3", 49},
		{"C-1", 0},
		{"G9", 127},
		{"B9", 127},
		{"Bb0", 22},
	}
	for _, tt := range tests {
		t.Run(tt.note, func(t *testing.T) {
			got, err := MIDINumber(tt.note, DefaultOctave)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MIDINumber("H2", DefaultOctave)
	assert.ErrorIs(t, err, theory.ErrUnrecognizedNote)
	_, err = MIDINumber("C4-", DefaultOctave)
	assert.ErrorIs(t, err, theory.ErrUnrecognizedNote)
}

func TestFrequency(t *testing.T) {
	assert.Equal(t, 440.0, Frequency(69))
	assert.Equal(t, 880.0, Frequency(81))
	assert.InDelta(t, 261.6256, Frequency(60), 0.0001)
	assert.False(t, math.IsNaN(Frequency(0)))
}

func TestVoicing(t *testing.T) {
	notes := []string{"C", "E", "G", "Bb", "D", "A"}

	flat, err := Voicing(notes, 4, false)
	require.NoError(t, err)
	assert.Equal(t, []int{60, 64, 67, 70, 62, 69}, midiOf(flat))

	stacked, err := Voicing(notes, 4, true)
	require.NoError(t, err)
	assert.Equal(t, []int{60, 64, 67, 70, 74, 81}, midiOf(stacked))
	assert.Equal(t, "A", stacked[5].Note)
	assert.Equal(t, 880.0, stacked[5].Frequency)

	low, err := Voicing([]string{"B", "C"}, 3, true)
	require.NoError(t, err)
	assert.Equal(t, []int{59, 60}, midiOf(low))

	_, err = Voicing([]string{"C", "X"}, 4, false)
	assert.Error(t, err)
}

func TestVoicingStopsAtTopOfRange(t *testing.T) {
	voices, err := Voicing([]string{"G9", "C"}, 9, true)
	require.NoError(t, err)
	assert.Equal(t, []int{127, 120}, midiOf(voices))
}

func TestKeyboard(t *testing.T) {
	voices, err := Voicing([]string{"C", "Eb", "G"}, 4, false)
	require.NoError(t, err)

	keys := Keyboard(3, 4, voices)
	require.Len(t, keys, 24)
	assert.Equal(t, Key{Name: "C", Octave: 3, MIDI: 48}, keys[0])
	assert.True(t, keys[13].Black)

	var lit []string
	for _, k := range keys {
		if k.Highlighted {
			lit = append(lit, k.Name)
		}
	}
	assert.Equal(t, []string{"C", "D#", "G"}, lit)
}

func TestRenderMIDIBlock(t *testing.T) {
	voices, err := Voicing([]string{"C", "Eb", "G", "Bb"}, 4, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderMIDI(&buf, voices, Block))

	ons, offTicks := readBack(t, buf.Bytes())
	assert.Equal(t, []uint8{60, 63, 67, 70}, ons)
	assert.Equal(t, uint32(3*960), offTicks, "block chord is held for three beats")
}

func TestRenderMIDIRun(t *testing.T) {
	voices, err := Voicing([]string{"C", "D", "E"}, 4, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderMIDI(&buf, voices, Run))

	ons, offTicks := readBack(t, buf.Bytes())
	assert.Equal(t, []uint8{60, 62, 64}, ons)
	assert.Equal(t, uint32(3*960), offTicks)
}

func TestRenderMIDIRejectsEmpty(t *testing.T) {
	assert.Error(t, RenderMIDI(&bytes.Buffer{}, nil, Block))
}

func midiOf(voices []Voice) []int {
	out := make([]int, len(voices))
	for i, v := range voices {
		out[i] = v.MIDI
	}
	return out
}

// readBack parses a rendered file and returns the note-on keys and the absolute
// tick of the last note-off
func readBack(t *testing.T, data []byte) ([]uint8, uint32) {
	t.Helper()
	s, err := smf.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)

	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	require.True(t, ok)
	assert.Equal(t, uint16(960), ticks.Resolution())

	var ons []uint8
	var abs, lastOff uint32
	for _, ev := range s.Tracks[0] {
		abs += ev.Delta
		msg := midi.Message(ev.Message)
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			ons = append(ons, key)
		case msg.GetNoteEnd(&ch, &key):
			lastOff = abs
		}
	}
	return ons, lastOff
}
