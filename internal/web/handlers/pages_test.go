package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/i18n"
)

func newPageRouter(t *testing.T, generate bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	if generate {
		p := &catalog.Pipeline{DataDir: dir, Version: "test"}
		_, err := p.Run(context.Background(), catalog.Kinds(), io.Discard)
		require.NoError(t, err)
	}

	h := NewWebHandler(dir, i18n.English)
	r := gin.New()
	r.UseRawPath = true
	r.GET("/", h.Home)
	r.GET("/chords/:symbol", h.Chord)
	r.GET("/scales", h.Scales)
	r.GET("/scales/:id", h.Scale)
	return r
}

func TestPages(t *testing.T) {
	r := newPageRouter(t, true)

	tests := []struct {
		name     string
		target   string
		header   string
		status   int
		contains []string
	}{
		{"chord list", "/", "", http.StatusOK, []string{"Piano Chords Database", "Showing 306 of 306 chords", `href="/chords/Cm7"`}},
		{"chord list filtered", "/?root=C&type=m7", "", http.StatusOK, []string{"Showing 1 of 306", "C Eb G Bb"}},
		{"chord list empty", "/?q=zzz", "", http.StatusOK, []string{"No chords found"}},
		{"chord page", "/chords/Cm7", "", http.StatusOK, []string{"C minor seventh", "/api/chords/Cm7/midi", `class="key white lit"`}},
		{"escaped symbol", "/chords/C6%2F9", "", http.StatusOK, []string{"C6/9", "/api/chords/C6%2F9/midi"}},
		{"unknown chord", "/chords/H7", "", http.StatusNotFound, []string{"Chord not found"}},
		{"french by query", "/?lang=fr", "", http.StatusOK, []string{`lang="fr"`, "Tous les Accords", "Do Mib Sol Sib"}},
		{"french by header", "/chords/Cm7", "fr-FR,fr;q=0.9", http.StatusOK, []string{"Retour à tous les accords", "Mib"}},
		{"scale list", "/scales", "", http.StatusOK, []string{"Musical Scale Navigator", "Showing 476 of 476 scales"}},
		{"scale page", "/scales/c-harmonic-minor", "", http.StatusOK, []string{"C Harmonic Minor", "C, D, Eb, F, G, Ab, B"}},
		{"unknown scale", "/scales/h-major", "", http.StatusNotFound, []string{"Scale not found"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			body := w.Body.String()
			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestPagesWithoutStore(t *testing.T) {
	r := newPageRouter(t, false)

	for _, target := range []string{"/", "/chords/C", "/scales", "/scales/c-major"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}
}
