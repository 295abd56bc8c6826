package theory

import (
	"errors"
	"testing"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name     string
		note     string
		expected PitchClass
		wantErr  bool
	}{
		{name: "natural", note: "C", expected: 0},
		{name: "sharp", note: "C#", expected: 1},
		{name: "flat", note: "Db", expected: 1},
		{name: "with octave", note: "Eb4", expected: 3},
		{name: "negative octave", note: "C-1", expected: 0},
		{name: "flat negative octave", note: "Bb-1", expected: 10},
		{name: "B flat", note: "Bb", expected: 10},
		{name: "B natural", note: "B", expected: 11},
		{name: "padded", note: " F# ", expected: 6},
		{name: "unknown spelling", note: "Cb", wantErr: true},
		{name: "empty", note: "", wantErr: true},
		{name: "lowercase", note: "c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := ParseNote(tt.note)
			if tt.wantErr {
				if !errors.Is(err, ErrUnrecognizedNote) {
					t.Fatalf("expected ErrUnrecognizedNote, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNote(%q) failed: %v", tt.note, err)
			}
			if pc != tt.expected {
				t.Errorf("ParseNote(%q) = %d, expected %d", tt.note, pc, tt.expected)
			}
		})
	}
}

func TestNoteName(t *testing.T) {
	if got := NoteName(1, true); got != "C#" {
		t.Errorf("NoteName(1, sharp) = %q, expected C#", got)
	}
	if got := NoteName(1, false); got != "Db" {
		t.Errorf("NoteName(1, flat) = %q, expected Db", got)
	}
	if got := NoteName(4, false); got != "E" {
		t.Errorf("NoteName(4, flat) = %q, expected E", got)
	}
}

func TestRoundTripAllPitchClasses(t *testing.T) {
	for pc := PitchClass(0); pc < 12; pc++ {
		for _, sharp := range []bool{true, false} {
			got, err := ParseNote(NoteName(pc, sharp))
			if err != nil {
				t.Fatalf("ParseNote(NoteName(%d)) failed: %v", pc, err)
			}
			if got != pc {
				t.Errorf("round trip of %d (sharp=%t) gave %d", pc, sharp, got)
			}
		}
	}
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		pc        PitchClass
		semitones int
		expected  PitchClass
	}{
		{0, 7, 7},
		{9, 3, 0},
		{11, 14, 1},
		{2, -3, 11},
		{5, -29, 0},
	}

	for _, tt := range tests {
		if got := tt.pc.Transpose(tt.semitones); got != tt.expected {
			t.Errorf("%d.Transpose(%d) = %d, expected %d", tt.pc, tt.semitones, got, tt.expected)
		}
	}
}

func TestSpellNote(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		pc       PitchClass
		expected string
	}{
		{name: "sharp root keeps sharps", root: "C#", pc: 8, expected: "G#"},
		{name: "flat root uses flats", root: "Db", pc: 8, expected: "Ab"},
		{name: "natural root black key reads flat", root: "C", pc: 3, expected: "Eb"},
		{name: "natural root white key", root: "C", pc: 7, expected: "G"},
		{name: "natural root augmented fifth", root: "E", pc: 0, expected: "C"},
		{name: "natural root raised note still flat", root: "D", pc: 6, expected: "Gb"},
		{name: "B natural is not a flat root", root: "B", pc: 6, expected: "Gb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpellNote(tt.root, tt.pc); got != tt.expected {
				t.Errorf("SpellNote(%q, %d) = %q, expected %q", tt.root, tt.pc, got, tt.expected)
			}
		})
	}
}

func TestSpellNoteKeepsEveryRoot(t *testing.T) {
	for _, root := range Roots() {
		pc, err := ParseNote(root)
		if err != nil {
			t.Fatalf("ParseNote(%q) failed: %v", root, err)
		}
		if got := SpellNote(root, pc); got != root {
			t.Errorf("root %q respelled as %q", root, got)
		}
	}
}

func TestNormalizeNote(t *testing.T) {
	if got := NormalizeNote("Db"); got != "Db" {
		t.Errorf("NormalizeNote(Db) = %q", got)
	}
	if got := NormalizeNote("F#"); got != "F#" {
		t.Errorf("NormalizeNote(F#) = %q", got)
	}
	if got := NormalizeNote("Eb4"); got != "Eb" {
		t.Errorf("NormalizeNote(Eb4) = %q", got)
	}
	if got := NormalizeNote("G#-1"); got != "G#" {
		t.Errorf("NormalizeNote(G#-1) = %q", got)
	}
	if got := NormalizeNote("all"); got != "all" {
		t.Errorf("NormalizeNote(all) = %q", got)
	}
	if got := NormalizeNote("H"); got != "H" {
		t.Errorf("unrecognized note should pass through, got %q", got)
	}
}

func TestSplitOctave(t *testing.T) {
	note, octave := SplitOctave("Eb4")
	if note != "Eb" || octave != "4" {
		t.Errorf("SplitOctave(Eb4) = %q, %q", note, octave)
	}
	note, octave = SplitOctave("C-1")
	if note != "C" || octave != "-1" {
		t.Errorf("SplitOctave(C-1) = %q, %q", note, octave)
	}
	note, octave = SplitOctave("A")
	if note != "A" || octave != "" {
		t.Errorf("SplitOctave(A) = %q, %q", note, octave)
	}
}

func TestIsBlackKey(t *testing.T) {
	black := map[PitchClass]bool{1: true, 3: true, 6: true, 8: true, 10: true}
	for pc := PitchClass(0); pc < 12; pc++ {
		if pc.IsBlackKey() != black[pc] {
			t.Errorf("IsBlackKey(%d) = %t", pc, pc.IsBlackKey())
		}
	}
}

func TestIntervalLabel(t *testing.T) {
	tests := []struct {
		offset   int
		position int
		expected string
	}{
		{0, 0, "1"},
		{7, 0, "1"},
		{1, 1, "b2"},
		{3, 1, "b3"},
		{6, 2, "b5"},
		{8, 2, "#5"},
		{10, 3, "b7"},
		{14, 4, "9"},
		{17, 5, "11"},
		{21, 5, "13"},
		{12, 1, "12"},
		{0, 3, "0"},
	}

	for _, tt := range tests {
		if got := IntervalLabel(tt.offset, tt.position); got != tt.expected {
			t.Errorf("IntervalLabel(%d, %d) = %q, expected %q", tt.offset, tt.position, got, tt.expected)
		}
	}
}

func TestPatternTables(t *testing.T) {
	if err := ValidatePatterns(ChordPatterns()); err != nil {
		t.Errorf("chord patterns invalid: %v", err)
	}
	if err := ValidatePatterns(ScalePatterns()); err != nil {
		t.Errorf("scale patterns invalid: %v", err)
	}
	if n := len(ChordTypeCodes()); n != 18 {
		t.Errorf("expected 18 chord types, got %d", n)
	}
	if n := len(ScaleTypeCodes()); n != 28 {
		t.Errorf("expected 28 scale types, got %d", n)
	}
	if n := len(Roots()); n != 17 {
		t.Errorf("expected 17 roots, got %d", n)
	}
}

func TestValidatePatternsRejectsBadOffsets(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
	}{
		{name: "missing root", pattern: pattern("x", "x", 3, 7)},
		{name: "repeated offset", pattern: pattern("x", "x", 0, 4, 4)},
		{name: "decreasing", pattern: pattern("x", "x", 0, 7, 4)},
		{name: "empty", pattern: pattern("x", "x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePatterns([]Pattern{tt.pattern}); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	dup := []Pattern{pattern("m", "a", 0, 3), pattern("m", "b", 0, 4)}
	if err := ValidatePatterns(dup); err == nil {
		t.Error("expected duplicate code error")
	}
}

func TestPatternOffsetsAreCopies(t *testing.T) {
	p, ok := ChordPattern("m7")
	if !ok {
		t.Fatal("m7 missing")
	}
	offsets := p.Offsets()
	offsets[1] = 99

	again, _ := ChordPattern("m7")
	if again.Offsets()[1] != 3 {
		t.Error("pattern table was mutated through Offsets()")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := ChordPattern("maj13"); ok {
		t.Error("maj13 should not exist")
	}
	if _, ok := ScalePattern("hirajoshi"); ok {
		t.Error("hirajoshi should not exist")
	}
	if p, ok := ScalePattern("harmonic minor"); !ok || p.Name != "Harmonic Minor" {
		t.Errorf("harmonic minor lookup = %+v, %t", p, ok)
	}
}
