package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/i18n"
	"github.com/Conceptual-Machines/piano-chords/internal/logger"
	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/playback"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
	"github.com/Conceptual-Machines/piano-chords/internal/web/templates"
)

const (
	keyboardStartOctave = 4
	keyboardEndOctave   = 6
)

type WebHandler struct {
	dataDir     string
	defaultLang i18n.Language
}

func NewWebHandler(dataDir string, defaultLang i18n.Language) *WebHandler {
	return &WebHandler{dataDir: dataDir, defaultLang: defaultLang}
}

// Home renders the chord list with root, type and search filters
func (h *WebHandler) Home(c *gin.Context) {
	lang := h.language(c)
	chords, err := catalog.LoadChords(h.dataDir)
	if err != nil {
		h.renderStoreError(c, lang, "chords", err)
		return
	}

	filter := catalog.ChordFilter{
		Root:  i18n.ReverseTranslateNote(c.Query("root"), lang),
		Type:  c.Query("type"),
		Query: c.Query("q"),
	}

	types := make([]templates.Option, 0, len(theory.ChordPatterns()))
	for _, p := range theory.ChordPatterns() {
		types = append(types, templates.Option{Value: p.Code, Label: i18n.ChordTypeName(p.Code, lang)})
	}

	render(c, http.StatusOK, templates.ChordIndex(templates.ChordIndexData{
		Lang:   lang,
		Chords: filter.Apply(chords),
		Total:  len(chords),
		Root:   filter.Root,
		Type:   filter.Type,
		Query:  filter.Query,
		Roots:  rootOptions(lang),
		Types:  types,
	}))
}

// Chord renders one chord page
func (h *WebHandler) Chord(c *gin.Context) {
	lang := h.language(c)
	chords, err := catalog.LoadChords(h.dataDir)
	if err != nil {
		h.renderStoreError(c, lang, "chords", err)
		return
	}

	chord, ok := store.Find(chords, c.Param("symbol"), models.Chord.Identity)
	if !ok {
		render(c, http.StatusNotFound, templates.NotFound(lang, "chords.chordNotFound", "/", "chords.backToAllChords"))
		return
	}

	render(c, http.StatusOK, templates.ChordDetail(templates.ChordDetailData{
		Lang:      lang,
		Chord:     chord,
		Localized: i18n.LocalizeChord(chord, lang),
		Keys:      keyboardFor(chord.Notes),
	}))
}

// Scales renders the scale navigator
func (h *WebHandler) Scales(c *gin.Context) {
	lang := h.language(c)
	scales, err := catalog.LoadScales(h.dataDir)
	if err != nil {
		h.renderStoreError(c, lang, "scales", err)
		return
	}

	filter := catalog.ScaleFilter{
		Key:   i18n.ReverseTranslateNote(c.Query("key"), lang),
		Type:  c.Query("type"),
		Query: c.Query("q"),
	}

	types := make([]templates.Option, 0, len(theory.ScalePatterns()))
	for _, p := range theory.ScalePatterns() {
		types = append(types, templates.Option{Value: p.Code, Label: i18n.ScaleTypeName(p.Code, lang)})
	}

	render(c, http.StatusOK, templates.ScaleIndex(templates.ScaleIndexData{
		Lang:   lang,
		Scales: filter.Apply(scales),
		Total:  len(scales),
		Key:    filter.Key,
		Type:   filter.Type,
		Query:  filter.Query,
		Keys:   rootOptions(lang),
		Types:  types,
	}))
}

// Scale renders one scale page
func (h *WebHandler) Scale(c *gin.Context) {
	lang := h.language(c)
	scales, err := catalog.LoadScales(h.dataDir)
	if err != nil {
		h.renderStoreError(c, lang, "scales", err)
		return
	}

	scale, ok := store.Find(scales, c.Param("id"), models.Scale.Identity)
	if !ok {
		render(c, http.StatusNotFound, templates.NotFound(lang, "scales.scaleNotFound", "/scales", "scales.backToScales"))
		return
	}

	render(c, http.StatusOK, templates.ScaleDetail(templates.ScaleDetailData{
		Lang:      lang,
		Scale:     scale,
		Localized: i18n.LocalizeScale(scale, lang),
		Keys:      keyboardFor(scale.Notes),
	}))
}

func (h *WebHandler) language(c *gin.Context) i18n.Language {
	return i18n.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"), h.defaultLang)
}

func (h *WebHandler) renderStoreError(c *gin.Context, lang i18n.Language, catalogName string, err error) {
	fields := logger.WithContext(c)
	fields["catalog"] = catalogName

	status := http.StatusInternalServerError
	if errors.Is(err, store.ErrNotFound) {
		status = http.StatusNotFound
		logger.Warn("Catalog store not found", fields)
	} else {
		logger.Error("Failed to load catalog for page", err, fields)
	}

	backPath := "/"
	if catalogName == "scales" {
		backPath = "/scales"
	}
	render(c, status, templates.NotFound(lang, "common.error", backPath, "nav."+pageNavKey(catalogName)))
}

func pageNavKey(catalogName string) string {
	if catalogName == "scales" {
		return "scales"
	}
	return "allChords"
}

func render(c *gin.Context, status int, component templ.Component) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		logger.Error("Failed to render template", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
	}
}

func rootOptions(lang i18n.Language) []templates.Option {
	roots := theory.Roots()
	options := make([]templates.Option, len(roots))
	for i, r := range roots {
		options[i] = templates.Option{Value: r, Label: i18n.TranslateNote(r, lang)}
	}
	return options
}

// keyboardFor highlights notes voiced in a rising line from middle C
func keyboardFor(notes []string) []playback.Key {
	voices, err := playback.Voicing(notes, keyboardStartOctave, true)
	if err != nil {
		voices = nil
	}
	return playback.Keyboard(keyboardStartOctave, keyboardEndOctave, voices)
}
