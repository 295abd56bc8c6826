// Package i18n holds the English and French display strings of the catalog:
// solfège note names, chord and scale type names and page labels.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

// Language is a supported display language
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

var (
	supported = []Language{English, French}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.French})
)

// Parse returns the supported language named by s
func Parse(s string) (Language, bool) {
	for _, lang := range supported {
		if strings.EqualFold(s, string(lang)) {
			return lang, true
		}
	}
	return "", false
}

// Resolve picks the display language from an explicit ?lang value, then the
// Accept-Language header, then fallback
func Resolve(query, acceptLanguage string, fallback Language) Language {
	if lang, ok := Parse(query); ok {
		return lang
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, index, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supported[index]
			}
		}
	}
	if _, ok := Parse(string(fallback)); ok {
		return fallback
	}
	return English
}

var frenchNotes = map[string]string{
	"C": "Do", "C#": "Do#", "Db": "Réb",
	"D": "Ré", "D#": "Ré#", "Eb": "Mib",
	"E": "Mi",
	"F": "Fa", "F#": "Fa#", "Gb": "Solb",
	"G": "Sol", "G#": "Sol#", "Ab": "Lab",
	"A": "La", "A#": "La#", "Bb": "Sib",
	"B": "Si",
}

var englishNotes = map[string]string{
	"Do": "C", "Do#": "C#", "Réb": "Db", "Ré": "D", "Ré#": "D#",
	"Mib": "Eb", "Mi": "E",
	"Fa": "F", "Fa#": "F#", "Solb": "Gb", "Sol": "G", "Sol#": "G#",
	"Lab": "Ab", "La": "A", "La#": "A#", "Sib": "Bb", "Si": "B",
}

// TranslateNote renders an English note name in lang, keeping any octave.
// Names it does not know are returned unchanged.
func TranslateNote(note string, lang Language) string {
	if lang != French {
		return note
	}
	name, octave := theory.SplitOctave(note)
	if mapped, ok := frenchNotes[name]; ok {
		return mapped + octave
	}
	return note
}

// TranslateNotes translates every note
func TranslateNotes(notes []string, lang Language) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = TranslateNote(n, lang)
	}
	return out
}

// ReverseTranslateNote maps a solfège name back to English, e.g. for filtering
func ReverseTranslateNote(note string, lang Language) string {
	if lang != French {
		return note
	}
	name, octave := theory.SplitOctave(note)
	if original, ok := englishNotes[name]; ok {
		return original + octave
	}
	return name + octave
}

// TranslateIntervals uses the sharp sign glyph in French
func TranslateIntervals(intervals []string, lang Language) []string {
	out := make([]string, len(intervals))
	for i, iv := range intervals {
		if lang == French {
			iv = strings.ReplaceAll(iv, "#", "♯")
		}
		out[i] = iv
	}
	return out
}

var frenchChordTypes = map[string]string{
	"":        "majeur",
	"m":       "mineur",
	"dim":     "diminué",
	"aug":     "augmenté",
	"maj7":    "majeur septième",
	"7":       "septième",
	"m7":      "mineur septième",
	"dim7":    "diminué septième",
	"m(maj7)": "mineur majeur septième",
	"m7b5":    "mineur septième bémol cinq",
	"sus2":    "suspendu seconde",
	"sus4":    "suspendu quarte",
	"6":       "sixième",
	"6/9":     "sixième neuvième",
	"9":       "neuvième",
	"11":      "onzième",
	"13":      "treizième",
	"5":       "cinquième",
}

var frenchScaleTypes = map[string]string{
	"major":                             "majeur",
	"natural minor":                     "mineur naturel",
	"harmonic minor":                    "mineur harmonique",
	"melodic minor":                     "mineur mélodique",
	"minor pentatonic":                  "pentatonique mineur",
	"major pentatonic":                  "pentatonique majeur",
	"blues":                             "blues",
	"major blues":                       "blues majeur",
	"pentatonic blues":                  "blues pentatonique",
	"whole tone":                        "ton entier",
	"augmented":                         "augmenté",
	"diminished (halftone - wholetone)": "diminué (demi-ton - ton entier)",
	"diminished (wholetone - halftone)": "diminué (ton entier - demi-ton)",
	"ionian":                            "ionien",
	"dorian":                            "dorien",
	"phrygian":                          "phrygien",
	"lydian":                            "lydien",
	"mixolydian":                        "mixolydien",
	"aeolian":                           "éolien",
	"locrian":                           "locrien",
	"diatonic":                          "diatonique",
	"dominant pentatonic":               "pentatonique dominant",
	"pentatonic neutral":                "pentatonique neutre",
	"altered":                           "altéré",
	"bebop major":                       "bebop majeur",
	"bebop minor":                       "bebop mineur",
	"bebop dominant":                    "bebop dominant",
	"bebop half diminished":             "bebop demi-diminué",
}

// ChordTypeName is the display name of a chord type code
func ChordTypeName(code string, lang Language) string {
	if lang == French {
		if name, ok := frenchChordTypes[code]; ok {
			return name
		}
	}
	if p, ok := theory.ChordPattern(code); ok {
		return p.Name
	}
	return code
}

// ScaleTypeName is the display name of a scale type code
func ScaleTypeName(code string, lang Language) string {
	if lang == French {
		if name, ok := frenchScaleTypes[strings.ToLower(code)]; ok {
			return name
		}
	}
	if p, ok := theory.ScalePattern(code); ok {
		return p.Name
	}
	return code
}

// ChordName is e.g. "C minor seventh" or "Do mineur septième"
func ChordName(root, code string, lang Language) string {
	return TranslateNote(root, lang) + " " + ChordTypeName(code, lang)
}

// ScaleName is e.g. "C Harmonic Minor" or "Do Mineur harmonique"
func ScaleName(key, code string, lang Language) string {
	typeName := ScaleTypeName(code, lang)
	if lang == French {
		typeName = capitalize(typeName)
	}
	return TranslateNote(key, lang) + " " + typeName
}

// Localized is the display form of a catalog entry in one language
type Localized struct {
	Language    Language `json:"language"`
	Name        string   `json:"name"`
	TypeName    string   `json:"typeName"`
	Notes       []string `json:"notes"`
	Intervals   []string `json:"intervals"`
	Description string   `json:"description,omitempty"`
}

// LocalizeChord renders a chord for lang
func LocalizeChord(c models.Chord, lang Language) Localized {
	return Localized{
		Language:  lang,
		Name:      ChordName(c.Root, c.Type, lang),
		TypeName:  ChordTypeName(c.Type, lang),
		Notes:     TranslateNotes(c.Notes, lang),
		Intervals: TranslateIntervals(c.Intervals, lang),
	}
}

// LocalizeScale renders a scale for lang
func LocalizeScale(s models.Scale, lang Language) Localized {
	l := Localized{
		Language:    lang,
		Name:        ScaleName(s.Key, s.Type, lang),
		TypeName:    ScaleTypeName(s.Type, lang),
		Notes:       TranslateNotes(s.Notes, lang),
		Intervals:   TranslateIntervals(s.Intervals, lang),
		Description: s.Description,
	}
	if lang == French {
		l.Description = "La gamme " + TranslateNote(s.Key, lang) + " " + l.TypeName +
			" a les notes " + strings.Join(l.Notes, ", ") + "."
	}
	return l
}

func capitalize(s string) string {
	for i := range s {
		if i > 0 {
			return strings.ToUpper(s[:i]) + s[i:]
		}
	}
	return strings.ToUpper(s)
}
