package templates

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Conceptual-Machines/piano-chords/internal/i18n"
	"github.com/Conceptual-Machines/piano-chords/internal/playback"
)

// Option is one entry of a filter drop-down
type Option struct {
	Value string
	Label string
}

var languages = []i18n.Language{i18n.English, i18n.French}

// pathURL builds an escaped path from segments, e.g. /chords/C6%2F9
func pathURL(prefix, segment string, query url.Values) string {
	u := prefix + url.PathEscape(segment)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func langQuery(lang i18n.Language) url.Values {
	if lang == i18n.English {
		return nil
	}
	return url.Values{"lang": {string(lang)}}
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// countText renders "Showing 3 of 306 chords" in lang
func countText(lang i18n.Language, shown, total int, nounKey string) string {
	return fmt.Sprintf("%s %d %s %d %s",
		i18n.Label(lang, "home.showing"), shown, i18n.Label(lang, "home.of"), total, i18n.Label(lang, nounKey))
}

func keyClass(k playback.Key) string {
	class := "key white"
	if k.Black {
		class = "key black"
	}
	if k.Highlighted {
		class += " lit"
	}
	return class
}

func keyLabel(k playback.Key, lang i18n.Language) string {
	return i18n.TranslateNote(k.Name, lang) + strconv.Itoa(k.Octave)
}
