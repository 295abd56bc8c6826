package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		accept   string
		fallback Language
		want     Language
	}{
		{"explicit query", "fr", "en-US", English, French},
		{"query is case insensitive", "FR", "", English, French},
		{"accept language", "", "fr-CA,fr;q=0.9,en;q=0.8", English, French},
		{"accept prefers english", "", "en-GB,fr;q=0.5", French, English},
		{"unsupported query falls through", "de", "fr", English, French},
		{"nothing matches", "", "de-DE", French, French},
		{"bad fallback", "", "", "xx", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.query, tt.accept, tt.fallback))
		})
	}
}

func TestTranslateNote(t *testing.T) {
	tests := []struct {
		note string
		lang Language
		want string
	}{
		{"C#4", French, "Do#4"},
		{"Db", French, "Réb"},
		{"Bb3", French, "Sib3"},
		{"G", French, "Sol"},
		{"Sol", French, "Sol"},
		{"H", French, "H"},
		{"C#4", English, "C#4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TranslateNote(tt.note, tt.lang), tt.note)
	}
}

func TestReverseTranslateNote(t *testing.T) {
	assert.Equal(t, "Db", ReverseTranslateNote("Réb", French))
	assert.Equal(t, "F#5", ReverseTranslateNote("Fa#5", French))
	assert.Equal(t, "C", ReverseTranslateNote("C", French))
	assert.Equal(t, "Réb", ReverseTranslateNote("Réb", English))
}

func TestNoteTablesRoundTrip(t *testing.T) {
	for _, root := range theory.Roots() {
		fr := TranslateNote(root, French)
		assert.NotEqual(t, root, fr)
		assert.Equal(t, root, ReverseTranslateNote(fr, French))
	}
}

func TestTypeNamesCoverPatterns(t *testing.T) {
	for _, code := range theory.ChordTypeCodes() {
		_, ok := frenchChordTypes[code]
		assert.True(t, ok, "missing French chord type %q", code)
	}
	for _, code := range theory.ScaleTypeCodes() {
		_, ok := frenchScaleTypes[code]
		assert.True(t, ok, "missing French scale type %q", code)
	}

	assert.Equal(t, "minor seventh", ChordTypeName("m7", English))
	assert.Equal(t, "mineur septième", ChordTypeName("m7", French))
	assert.Equal(t, "weird", ChordTypeName("weird", French))
	assert.Equal(t, "Harmonic Minor", ScaleTypeName("harmonic minor", English))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "C minor seventh", ChordName("C", "m7", English))
	assert.Equal(t, "Do# mineur septième", ChordName("C#", "m7", French))
	assert.Equal(t, "C Harmonic Minor", ScaleName("C", "harmonic minor", English))
	assert.Equal(t, "Ré Mineur harmonique", ScaleName("D", "harmonic minor", French))
	assert.Equal(t, "La Éolien", ScaleName("A", "aeolian", French))
}

func TestLocalizeScale(t *testing.T) {
	scale := models.Scale{
		Key:         "C",
		Type:        "harmonic minor",
		Notes:       []string{"C", "D", "Eb", "F", "G", "Ab", "B"},
		Intervals:   []string{"1", "2", "b3", "4", "5", "#5", "7"},
		Description: "english",
	}

	l := LocalizeScale(scale, French)
	assert.Equal(t, French, l.Language)
	assert.Equal(t, []string{"Do", "Ré", "Mib", "Fa", "Sol", "Lab", "Si"}, l.Notes)
	assert.Equal(t, "♯5", l.Intervals[5])
	assert.Equal(t, "La gamme Do mineur harmonique a les notes Do, Ré, Mib, Fa, Sol, Lab, Si.", l.Description)

	en := LocalizeScale(scale, English)
	assert.Equal(t, "english", en.Description)
	assert.Equal(t, scale.Intervals, en.Intervals)
}

func TestLocalizeChord(t *testing.T) {
	chord := models.Chord{Root: "C", Type: "aug", Notes: []string{"C", "E", "G#"}, Intervals: []string{"1", "3", "#5"}}
	l := LocalizeChord(chord, French)
	require.Len(t, l.Notes, 3)
	assert.Equal(t, "Do augmenté", l.Name)
	assert.Equal(t, []string{"Do", "Mi", "Sol#"}, l.Notes)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Gammes", Label(French, "nav.scales"))
	assert.Equal(t, "Scales", Label(English, "nav.scales"))
	assert.Equal(t, "missing.key", Label(French, "missing.key"))
	for key := range labels[English] {
		_, ok := labels[French][key]
		assert.True(t, ok, "missing French label %q", key)
	}
}
