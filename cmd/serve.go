package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Conceptual-Machines/piano-chords/internal/api"
	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/config"
	"github.com/Conceptual-Machines/piano-chords/internal/logger"
	"github.com/Conceptual-Machines/piano-chords/internal/metrics"
	"github.com/Conceptual-Machines/piano-chords/internal/regen"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog API and web pages",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "HTTP port (default 8080)")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	defer initSentry(cfg)()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cloudwatch, err := metrics.NewClient(ctx, cfg.Environment, cfg.CloudWatchNamespace)
	if err != nil {
		return fmt.Errorf("failed to create metrics client: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	manifest := store.NewManifestSnapshot(filepath.Join(cfg.DataDir, store.ManifestFile))
	if cfg.WatchStore {
		if err := watchStore(ctx, cfg.DataDir, manifest); err != nil {
			logger.Warn("Store watcher disabled", logger.Fields{"error": err.Error(), "data_dir": cfg.DataDir})
		}
	}

	pipeline := &catalog.Pipeline{DataDir: cfg.DataDir, Version: GetVersion()}
	svc := api.Services{
		Runner:     regen.NewRunner(pipeline, cfg.RegenerateTimeout, cloudwatch),
		Manifest:   manifest,
		CloudWatch: cloudwatch,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.SetupRouter(cfg, GetVersion(), svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Starting server on port %s (data dir: %s, auth: %s)", cfg.Port, cfg.DataDir, cfg.AuthMode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			sentry.CaptureException(err)
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// watchStore refreshes the manifest snapshot whenever the data directory changes
func watchStore(ctx context.Context, dataDir string, manifest *store.ManifestSnapshot) error {
	w, err := store.NewWatcher(dataDir)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		w.Stop()
	}()
	go func() {
		for change := range w.Changes {
			logger.Info("Catalog store changed", logger.Fields{"file": change.File, "removed": change.Removed})
			manifest.Refresh()
		}
	}()
	return nil
}
