package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

// Per-entry generation failures. They never abort a batch.
var (
	ErrUnknownRoot = errors.New("unknown root")
	ErrUnknownType = errors.New("unknown type")
)

const (
	chordPageBaseURL  = "https://www.scales-chords.com/chord/piano/"
	chordChartBaseURL = "https://www.scales-chords.com/chord-charts/piano-"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Spelled is the pitch content of one root + pattern combination
type Spelled struct {
	Pattern   theory.Pattern
	Notes     []string
	Intervals []string
}

// Spell computes the notes and interval labels of pattern built on root
func Spell(root string, p theory.Pattern) (Spelled, error) {
	rootPC, err := parseRoot(root)
	if err != nil {
		return Spelled{}, err
	}

	offsets := p.Offsets()
	notes := make([]string, len(offsets))
	for i, offset := range offsets {
		notes[i] = theory.SpellNote(root, rootPC.Transpose(offset))
	}

	return Spelled{
		Pattern:   p,
		Notes:     notes,
		Intervals: theory.IntervalLabels(offsets),
	}, nil
}

func parseRoot(root string) (theory.PitchClass, error) {
	pc, err := theory.ParseNote(root)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrUnknownRoot, root, err)
	}
	return pc, nil
}

// resolve spells code on root. The root is checked before the type, so an entry
// with both wrong reports ErrUnknownRoot.
func resolve(root, code string, lookup func(string) (theory.Pattern, bool)) (Spelled, error) {
	if _, err := parseRoot(root); err != nil {
		return Spelled{}, err
	}
	p, ok := lookup(code)
	if !ok {
		return Spelled{}, fmt.Errorf("%w %q", ErrUnknownType, code)
	}
	return Spell(root, p)
}

// BuildChord builds the chord catalog entry for root and chord type code
func BuildChord(root, code string) (models.Chord, error) {
	spelled, err := resolve(root, code, theory.ChordPattern)
	if err != nil {
		return models.Chord{}, err
	}
	p := spelled.Pattern

	symbol := root + code
	fullName := root + " " + p.Name
	imageURL := chordImageURL(symbol, spelled.Notes)

	return models.Chord{
		Symbol:   symbol,
		Root:     root,
		Type:     code,
		FullName: fullName,
		Description: fmt.Sprintf("The %s Chord for Piano has the notes %s and interval structure %s.",
			fullName, strings.Join(spelled.Notes, " "), strings.Join(spelled.Intervals, " ")),
		Notes:            spelled.Notes,
		Intervals:        spelled.Intervals,
		AlternateSymbols: []string{},
		Inversions:       []models.Inversion{},
		RelatedChords:    []models.RelatedChord{},
		ImageURL:         &imageURL,
		ImageLocal:       nil,
		URL:              chordPageBaseURL + url.PathEscape(symbol),
	}, nil
}

// BuildScale builds the scale catalog entry for root and scale type code
func BuildScale(root, code string) (models.Scale, error) {
	spelled, err := resolve(root, code, theory.ScalePattern)
	if err != nil {
		return models.Scale{}, err
	}

	name := root + " " + spelled.Pattern.Name
	return models.Scale{
		ID:          ScaleID(root, code),
		Key:         root,
		Type:        code,
		Name:        name,
		Notes:       spelled.Notes,
		Intervals:   spelled.Intervals,
		Description: fmt.Sprintf("The %s scale has the notes %s.", name, strings.Join(spelled.Notes, ", ")),
	}, nil
}

// ScaleID slugifies a root and scale type, e.g. ("C#", "harmonic minor") -> "cs-harmonic-minor"
func ScaleID(root, code string) string {
	key := strings.ReplaceAll(strings.ToLower(root), "#", "s")
	slug := whitespaceRun.ReplaceAllString(code, "-")
	slug = strings.NewReplacer("(", "", ")", "").Replace(slug)
	return key + "-" + strings.ToLower(slug)
}

func chordImageURL(symbol string, notes []string) string {
	imageSymbol := strings.NewReplacer("#", "s", "/", "_", "(", "", ")", "").Replace(symbol)
	imageNotes := strings.ReplaceAll(strings.Join(notes, "-"), "#", "s")
	return chordChartBaseURL + strings.ToLower(imageSymbol) + "-c-n-l-" + imageNotes + ".jpg"
}
