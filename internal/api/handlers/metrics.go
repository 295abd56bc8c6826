package handlers

import (
	"net/http"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/piano-chords/internal/store"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

const bytesPerMB = 1024 * 1024

// MetricsHandler reports process and catalog figures for dashboards
type MetricsHandler struct {
	startTime time.Time
	version   string
	dataDir   string
	manifest  *store.ManifestSnapshot
}

func NewMetricsHandler(version, dataDir string, manifest *store.ManifestSnapshot) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		dataDir:   dataDir,
		manifest:  manifest,
	}
}

type MetricsResponse struct {
	Version       string         `json:"version"`
	Timestamp     time.Time      `json:"timestamp"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	Runtime       RuntimeMetrics `json:"runtime"`
	Catalog       CatalogMetrics `json:"catalog"`
}

type RuntimeMetrics struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	HeapAllocMB  uint64 `json:"heap_alloc_mb"`
	NumGC        uint32 `json:"num_gc"`
}

// CatalogMetrics combines the files on disk with the last generation run
type CatalogMetrics struct {
	Roots       int                           `json:"roots"`
	ChordTypes  int                           `json:"chord_types"`
	ScaleTypes  int                           `json:"scale_types"`
	Entries     map[string]int                `json:"entries"`
	States      map[string]string             `json:"states"`
	GeneratedAt *time.Time                    `json:"generated_at"`
	LastRun     map[string]store.CatalogStats `json:"last_run,omitempty"`
	Incomplete  []string                      `json:"incomplete"`
}

// GetMetrics returns runtime figures plus entry counts per catalog file and
// the stats recorded by the last generation
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, MetricsResponse{
		Version:       h.version,
		Timestamp:     time.Now().UTC(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Runtime: RuntimeMetrics{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			HeapAllocMB:  mem.HeapAlloc / bytesPerMB,
			NumGC:        mem.NumGC,
		},
		Catalog: h.catalogMetrics(),
	})
}

func (h *MetricsHandler) catalogMetrics() CatalogMetrics {
	m := CatalogMetrics{
		Roots:      len(theory.Roots()),
		ChordTypes: len(theory.ChordPatterns()),
		ScaleTypes: len(theory.ScalePatterns()),
		Entries:    map[string]int{},
		States:     map[string]string{},
		Incomplete: []string{},
	}

	for name, file := range map[string]string{"chords": store.ChordsFile, "scales": store.ScalesFile} {
		st := store.Inspect(filepath.Join(h.dataDir, file))
		m.Entries[name] = st.Entries
		m.States[name] = st.State
	}

	if h.manifest == nil {
		return m
	}
	manifest, err := h.manifest.Get()
	if err != nil {
		return m
	}
	generatedAt := manifest.GeneratedAt
	m.GeneratedAt = &generatedAt
	m.LastRun = manifest.Catalogs
	if incomplete := manifest.Incomplete(); incomplete != nil {
		slices.Sort(incomplete)
		m.Incomplete = incomplete
	}
	return m
}
