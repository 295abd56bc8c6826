package models

// Chord is one entry of the chord catalog (chords.json)
type Chord struct {
	Symbol           string         `json:"symbol"`
	Root             string         `json:"root"`
	Type             string         `json:"type"` // Interval table type code, "" for major
	FullName         string         `json:"fullName"`
	Description      string         `json:"description"`
	Notes            []string       `json:"notes"`
	Intervals        []string       `json:"intervals"`
	AlternateSymbols []string       `json:"alternateSymbols"`
	Inversions       []Inversion    `json:"inversions"`
	RelatedChords    []RelatedChord `json:"relatedChords"`
	ImageURL         *string        `json:"imageUrl"`
	ImageLocal       *string        `json:"imageLocal"`
	URL              string         `json:"url"`
}

// Inversion names a chord inversion and its notes
type Inversion struct {
	Name  string   `json:"name"`
	Notes []string `json:"notes,omitempty"`
}

// RelatedChord links to a chord related to the current one
type RelatedChord struct {
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

// Identity returns the catalog key of the chord
func (c Chord) Identity() string {
	return c.Symbol
}
