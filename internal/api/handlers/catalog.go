package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/i18n"
	"github.com/Conceptual-Machines/piano-chords/internal/metrics"
	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/playback"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

const (
	minOctave = -1
	maxOctave = 9
)

// CatalogHandler serves the chord and scale catalogs. Every request reads the
// store files again so a regeneration is visible immediately.
type CatalogHandler struct {
	dataDir string
	spans   *metrics.SentryMetrics
}

func NewCatalogHandler(dataDir string) *CatalogHandler {
	return &CatalogHandler{dataDir: dataDir, spans: metrics.NewSentryMetrics()}
}

type chordResponse struct {
	models.Chord
	Localized *i18n.Localized `json:"localized,omitempty"`
}

type scaleResponse struct {
	models.Scale
	Localized *i18n.Localized `json:"localized,omitempty"`
}

type voicingResponse struct {
	ID        string           `json:"id"`
	Octave    int              `json:"octave"`
	Ascending bool             `json:"ascending"`
	Voices    []playback.Voice `json:"voices"`
}

// ListChords returns the chord catalog, optionally filtered by ?root=, ?type= and ?q=
func (h *CatalogHandler) ListChords(c *gin.Context) {
	chords, err := h.loadChords(c)
	if err != nil {
		respondStoreError(c, "chords", err)
		return
	}

	lang, _ := i18n.Parse(c.Query("lang"))
	filter := catalog.ChordFilter{
		Root:  i18n.ReverseTranslateNote(c.Query("root"), lang),
		Type:  c.Query("type"),
		Query: c.Query("q"),
	}
	c.JSON(http.StatusOK, filter.Apply(chords))
}

// GetChord returns one chord by symbol; ?lang= adds a localized block
func (h *CatalogHandler) GetChord(c *gin.Context) {
	chord, ok := h.findChord(c)
	if !ok {
		return
	}

	resp := chordResponse{Chord: chord}
	if lang, ok := i18n.Parse(c.Query("lang")); ok {
		l := i18n.LocalizeChord(chord, lang)
		resp.Localized = &l
	}
	c.JSON(http.StatusOK, resp)
}

// ChordVoicing returns MIDI keys and frequencies for a chord
func (h *CatalogHandler) ChordVoicing(c *gin.Context) {
	chord, ok := h.findChord(c)
	if !ok {
		return
	}
	h.respondVoicing(c, chord.Symbol, chord.Notes)
}

// ChordMIDI returns the chord as a block-chord MIDI file
func (h *CatalogHandler) ChordMIDI(c *gin.Context) {
	chord, ok := h.findChord(c)
	if !ok {
		return
	}
	h.respondMIDI(c, chord.Symbol, chord.Notes, playback.Block)
}

// ListScales returns the scale catalog, optionally filtered by ?key=, ?type= and ?q=
func (h *CatalogHandler) ListScales(c *gin.Context) {
	scales, err := h.loadScales(c)
	if err != nil {
		respondStoreError(c, "scales", err)
		return
	}

	lang, _ := i18n.Parse(c.Query("lang"))
	filter := catalog.ScaleFilter{
		Key:   i18n.ReverseTranslateNote(c.Query("key"), lang),
		Type:  c.Query("type"),
		Query: c.Query("q"),
	}
	c.JSON(http.StatusOK, filter.Apply(scales))
}

// GetScale returns one scale by id; ?lang= adds a localized block
func (h *CatalogHandler) GetScale(c *gin.Context) {
	scale, ok := h.findScale(c)
	if !ok {
		return
	}

	resp := scaleResponse{Scale: scale}
	if lang, ok := i18n.Parse(c.Query("lang")); ok {
		l := i18n.LocalizeScale(scale, lang)
		resp.Localized = &l
	}
	c.JSON(http.StatusOK, resp)
}

// ScaleVoicing returns MIDI keys and frequencies for a scale
func (h *CatalogHandler) ScaleVoicing(c *gin.Context) {
	scale, ok := h.findScale(c)
	if !ok {
		return
	}
	h.respondVoicing(c, scale.ID, scale.Notes)
}

// ScaleMIDI returns the scale as an ascending run of quarter notes
func (h *CatalogHandler) ScaleMIDI(c *gin.Context) {
	scale, ok := h.findScale(c)
	if !ok {
		return
	}
	h.respondMIDI(c, scale.ID, scale.Notes, playback.Run)
}

// ChordTypes lists the chord interval patterns in catalog order
func (h *CatalogHandler) ChordTypes(c *gin.Context) {
	c.JSON(http.StatusOK, patternInfos(theory.ChordPatterns()))
}

// ScaleTypes lists the scale interval patterns in catalog order
func (h *CatalogHandler) ScaleTypes(c *gin.Context) {
	c.JSON(http.StatusOK, patternInfos(theory.ScalePatterns()))
}

func (h *CatalogHandler) loadChords(c *gin.Context) ([]models.Chord, error) {
	start := time.Now()
	chords, err := catalog.LoadChords(h.dataDir)
	h.spans.RecordCatalogLoad(c.Request.Context(), string(catalog.Chords), len(chords), time.Since(start), err)
	return chords, err
}

func (h *CatalogHandler) loadScales(c *gin.Context) ([]models.Scale, error) {
	start := time.Now()
	scales, err := catalog.LoadScales(h.dataDir)
	h.spans.RecordCatalogLoad(c.Request.Context(), string(catalog.Scales), len(scales), time.Since(start), err)
	return scales, err
}

func (h *CatalogHandler) findChord(c *gin.Context) (models.Chord, bool) {
	chords, err := h.loadChords(c)
	if err != nil {
		respondStoreError(c, "chords", err)
		return models.Chord{}, false
	}

	symbol := c.Param("symbol")
	chord, ok := store.Find(chords, symbol, models.Chord.Identity)
	if !ok {
		respondError(c, http.StatusNotFound, codeNotFound, "Chord not found: "+symbol)
		return models.Chord{}, false
	}
	return chord, true
}

func (h *CatalogHandler) findScale(c *gin.Context) (models.Scale, bool) {
	scales, err := h.loadScales(c)
	if err != nil {
		respondStoreError(c, "scales", err)
		return models.Scale{}, false
	}

	id := c.Param("id")
	scale, ok := store.Find(scales, id, models.Scale.Identity)
	if !ok {
		respondError(c, http.StatusNotFound, codeNotFound, "Scale not found: "+id)
		return models.Scale{}, false
	}
	return scale, true
}

func (h *CatalogHandler) respondVoicing(c *gin.Context, id string, notes []string) {
	octave, ascending, ok := voicingParams(c)
	if !ok {
		return
	}

	voices, err := playback.Voicing(notes, octave, ascending)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, codeBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, voicingResponse{ID: id, Octave: octave, Ascending: ascending, Voices: voices})
}

func (h *CatalogHandler) respondMIDI(c *gin.Context, id string, notes []string, mode playback.Mode) {
	octave, ascending, ok := voicingParams(c)
	if !ok {
		return
	}
	if mode == playback.Run && c.Query("ascending") == "" {
		ascending = true
	}

	voices, err := playback.Voicing(notes, octave, ascending)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, codeBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := playback.RenderMIDI(&buf, voices, mode); err != nil {
		respondError(c, http.StatusInternalServerError, codeRenderFailed, err.Error())
		return
	}

	filename := strings.NewReplacer("/", "_", "#", "s").Replace(id) + ".mid"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "audio/midi", buf.Bytes())
}

func voicingParams(c *gin.Context) (int, bool, bool) {
	octave := playback.DefaultOctave
	if raw := c.Query("octave"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < minOctave || v > maxOctave {
			respondError(c, http.StatusBadRequest, codeBadRequest, "octave must be an integer between -1 and 9")
			return 0, false, false
		}
		octave = v
	}

	ascending := false
	if raw := c.Query("ascending"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, codeBadRequest, "ascending must be a boolean")
			return 0, false, false
		}
		ascending = v
	}
	return octave, ascending, true
}

func patternInfos(patterns []theory.Pattern) []models.PatternInfo {
	infos := make([]models.PatternInfo, len(patterns))
	for i, p := range patterns {
		infos[i] = models.PatternInfo{
			Code:      p.Code,
			Name:      p.Name,
			Offsets:   p.Offsets(),
			Intervals: theory.IntervalLabels(p.Offsets()),
		}
	}
	return infos
}
