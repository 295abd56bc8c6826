package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/piano-chords/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/piano-chords/internal/api/middleware"
	"github.com/Conceptual-Machines/piano-chords/internal/config"
	"github.com/Conceptual-Machines/piano-chords/internal/i18n"
	"github.com/Conceptual-Machines/piano-chords/internal/metrics"
	"github.com/Conceptual-Machines/piano-chords/internal/middleware"
	"github.com/Conceptual-Machines/piano-chords/internal/regen"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
	webhandlers "github.com/Conceptual-Machines/piano-chords/internal/web/handlers"
	"github.com/Conceptual-Machines/piano-chords/pkg/embedded"
)

// Services are the long-lived collaborators the routes share
type Services struct {
	Runner     *regen.Runner
	Manifest   *store.ManifestSnapshot
	CloudWatch *metrics.Client
}

func SetupRouter(cfg *config.Config, version string, svc Services) *gin.Engine {
	router := gin.New()

	// Symbols such as C6/9 arrive percent-encoded and must stay one path segment
	router.UseRawPath = true
	router.UnescapePathValues = true

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(svc.CloudWatch))

	router.StaticFS("/static", http.FS(embedded.StaticFS()))

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg.DataDir, svc.Manifest)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, cfg.DataDir, svc.Manifest)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Web pages
	defaultLang, ok := i18n.Parse(cfg.DefaultLang)
	if !ok {
		defaultLang = i18n.English
	}
	webHandler := webhandlers.NewWebHandler(cfg.DataDir, defaultLang)
	router.GET("/", webHandler.Home)
	router.GET("/chords/:symbol", webHandler.Chord)
	router.GET("/scales", webHandler.Scales)
	router.GET("/scales/:id", webHandler.Scale)

	// Catalog API (public, read-only)
	catalogHandler := handlers.NewCatalogHandler(cfg.DataDir)
	api := router.Group("/api")
	{
		api.GET("/chords", catalogHandler.ListChords)
		api.GET("/chords/:symbol", catalogHandler.GetChord)
		api.GET("/chords/:symbol/voicing", catalogHandler.ChordVoicing)
		api.GET("/chords/:symbol/midi", catalogHandler.ChordMIDI)

		api.GET("/scales", catalogHandler.ListScales)
		api.GET("/scales/:id", catalogHandler.GetScale)
		api.GET("/scales/:id/voicing", catalogHandler.ScaleVoicing)
		api.GET("/scales/:id/midi", catalogHandler.ScaleMIDI)

		api.GET("/chord-types", catalogHandler.ChordTypes)
		api.GET("/scale-types", catalogHandler.ScaleTypes)
	}

	// Regeneration trigger
	regenerateHandler := handlers.NewRegenerateHandler(svc.Runner)
	if cfg.IsTokenMode() {
		api.POST("/regenerate", middleware.JWTAuth(cfg), middleware.AdminRequired(), regenerateHandler.Regenerate)
	} else {
		api.POST("/regenerate", apimiddleware.NoAuth(), regenerateHandler.Regenerate)
	}

	return router
}
