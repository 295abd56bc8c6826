package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/piano-chords/internal/store"
)

// HealthHandler reports whether the catalog store is usable
type HealthHandler struct {
	dataDir  string
	manifest *store.ManifestSnapshot
}

func NewHealthHandler(dataDir string, manifest *store.ManifestSnapshot) *HealthHandler {
	return &HealthHandler{dataDir: dataDir, manifest: manifest}
}

// HealthCheck returns the state of each catalog file and the last generation run.
// The service is "degraded" when a catalog cannot be read or the last run was incomplete.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	catalogs := gin.H{}
	status := "healthy"
	for name, file := range map[string]string{"chords": store.ChordsFile, "scales": store.ScalesFile} {
		st := store.Inspect(filepath.Join(h.dataDir, file))
		if st.State != "ok" {
			status = "degraded"
		}
		catalogs[name] = st
	}

	generation := gin.H{"state": "unknown"}
	if h.manifest != nil {
		m, err := h.manifest.Get()
		switch {
		case err != nil:
			generation = gin.H{"state": store.StateOf(err), "error": err.Error()}
		default:
			incomplete := m.Incomplete()
			if len(incomplete) > 0 {
				status = "degraded"
			}
			generation = gin.H{
				"state":        "ok",
				"version":      m.Version,
				"generated_at": m.GeneratedAt,
				"catalogs":     m.Catalogs,
				"incomplete":   incomplete,
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     status,
		"catalogs":   catalogs,
		"generation": generation,
	})
}
