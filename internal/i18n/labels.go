package i18n

var labels = map[Language]map[string]string{
	English: {
		"nav.allChords":            "All Chords",
		"nav.scales":               "Scales",
		"home.title":               "Piano Chords Database",
		"home.subtitle":            "Explore and play piano chords with interactive audio",
		"home.searchPlaceholder":   "Search chords by name, symbol, or notes...",
		"home.filterAllRoots":      "All Roots",
		"home.filterAllTypes":      "All Types",
		"home.showing":             "Showing",
		"home.of":                  "of",
		"home.chords":              "chords",
		"home.clearFilters":        "Clear filters",
		"home.noChordsFound":       "No chords found",
		"home.noChordsMessage":     "Try adjusting your search or filters to find chords.",
		"chords.backToAllChords":   "Back to All Chords",
		"chords.pianoKeyboard":     "Piano Keyboard",
		"chords.notes":             "Notes",
		"chords.intervals":         "Intervals",
		"chords.chordNotFound":     "Chord not found",
		"chords.play":              "Play",
		"scales.title":             "Musical Scale Navigator",
		"scales.subtitle":          "Select the Key and the Scale Type you want",
		"scales.searchPlaceholder": "Search scales by name, key, type, or notes...",
		"scales.filterAllKeys":     "All Keys",
		"scales.filterAllTypes":    "All Scale Types",
		"scales.scales":            "scales",
		"scales.noScalesFound":     "No scales found",
		"scales.noScalesMessage":   "Try adjusting your search or filters to find scales.",
		"scales.backToScales":      "Back to Scales",
		"scales.pianoKeyboard":     "Piano Keyboard",
		"scales.notes":             "Notes",
		"scales.intervals":         "Intervals",
		"scales.play":              "Play",
		"scales.key":               "Key",
		"scales.type":              "Type",
		"scales.scaleNotFound":     "Scale not found",
		"common.loading":           "Loading...",
		"common.error":             "Error",
		"common.nA":                "N/A",
	},
	French: {
		"nav.allChords":            "Tous les Accords",
		"nav.scales":               "Gammes",
		"home.title":               "Base de Données d'Accords de Piano",
		"home.subtitle":            "Explorez et jouez des accords de piano avec audio interactif",
		"home.searchPlaceholder":   "Rechercher des accords par nom, symbole ou notes...",
		"home.filterAllRoots":      "Toutes les Notes Fondamentales",
		"home.filterAllTypes":      "Tous les Types",
		"home.showing":             "Affichage de",
		"home.of":                  "sur",
		"home.chords":              "accords",
		"home.clearFilters":        "Effacer les filtres",
		"home.noChordsFound":       "Aucun accord trouvé",
		"home.noChordsMessage":     "Essayez d'ajuster votre recherche ou vos filtres pour trouver des accords.",
		"chords.backToAllChords":   "Retour à tous les accords",
		"chords.pianoKeyboard":     "Clavier de Piano",
		"chords.notes":             "Notes",
		"chords.intervals":         "Intervalles",
		"chords.chordNotFound":     "Accord non trouvé",
		"chords.play":              "Jouer",
		"scales.title":             "Navigateur de Gammes Musicales",
		"scales.subtitle":          "Sélectionnez la Note Fondamentale et le Type de Gamme",
		"scales.searchPlaceholder": "Rechercher des gammes par nom, note fondamentale, type ou notes...",
		"scales.filterAllKeys":     "Toutes les Notes",
		"scales.filterAllTypes":    "Tous les Types de Gammes",
		"scales.scales":            "gammes",
		"scales.noScalesFound":     "Aucune gamme trouvée",
		"scales.noScalesMessage":   "Essayez d'ajuster votre recherche ou vos filtres pour trouver des gammes.",
		"scales.backToScales":      "Retour aux Gammes",
		"scales.pianoKeyboard":     "Clavier de Piano",
		"scales.notes":             "Notes",
		"scales.intervals":         "Intervalles",
		"scales.play":              "Jouer",
		"scales.key":               "Clé",
		"scales.type":              "Type",
		"scales.scaleNotFound":     "Gamme non trouvée",
		"common.loading":           "Chargement...",
		"common.error":             "Erreur",
		"common.nA":                "N/A",
	},
}

// Label returns the UI string for key, falling back to English and then to the key itself
func Label(lang Language, key string) string {
	if s, ok := labels[lang][key]; ok {
		return s
	}
	if s, ok := labels[English][key]; ok {
		return s
	}
	return key
}
