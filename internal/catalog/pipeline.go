package catalog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Conceptual-Machines/piano-chords/internal/logger"
	"github.com/Conceptual-Machines/piano-chords/internal/models"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

// Pipeline generates catalogs into a data directory
type Pipeline struct {
	DataDir string
	Version string
	Roots   []string         // defaults to theory.Roots()
	Now     func() time.Time // defaults to time.Now
}

// Run builds the selected catalogs, writes them and the manifest, and prints a summary to out.
// Per-entry failures never stop the run; the returned reports carry them.
func (p *Pipeline) Run(ctx context.Context, kinds []Kind, out io.Writer) ([]Report, error) {
	if out == nil {
		out = io.Discard
	}
	roots := p.Roots
	if roots == nil {
		roots = theory.Roots()
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}

	reports := make([]Report, 0, len(kinds))
	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		report, err := p.generate(ctx, kind, roots)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)

		codes := theory.ChordTypeCodes()
		if kind == Scales {
			codes = theory.ScaleTypeCodes()
		}
		report.WriteSummary(out, roots, codes)
	}

	if err := p.writeManifest(reports, now()); err != nil {
		return reports, err
	}
	return reports, nil
}

func (p *Pipeline) generate(ctx context.Context, kind Kind, roots []string) (Report, error) {
	start := time.Now()
	path := filepath.Join(p.DataDir, kind.File())

	var report Report
	switch kind {
	case Chords:
		result := ChordCatalog(roots)
		if err := store.Write(path, result.Entries); err != nil {
			return Report{}, fmt.Errorf("write %s: %w", kind, err)
		}
		report = newReport(kind, result,
			func(c models.Chord) string { return c.Root },
			func(c models.Chord) string { return c.Type },
			time.Since(start))
	case Scales:
		result := ScaleCatalog(roots)
		if err := store.Write(path, result.Entries); err != nil {
			return Report{}, fmt.Errorf("write %s: %w", kind, err)
		}
		report = newReport(kind, result,
			func(s models.Scale) string { return s.Key },
			func(s models.Scale) string { return s.Type },
			time.Since(start))
	default:
		return Report{}, fmt.Errorf("unknown catalog %q", kind)
	}

	logger.LogCatalogGeneration(ctx, string(kind), report.Duration, map[string]int{
		"attempted":  report.Attempted,
		"generated":  report.Generated,
		"skipped":    len(report.Skipped),
		"duplicates": report.Duplicates,
	}, logger.Fields{"path": path})

	if err := report.Err(); err != nil {
		fields := logger.Fields{
			"catalog": string(kind),
			"error":   err.Error(),
			"skipped": len(report.Skipped),
		}
		logger.Warn("Catalog generation incomplete", fields)
		logger.LogToSentry(sentry.LevelWarning, "Catalog generation incomplete", fields)
	}
	return report, nil
}

// writeManifest merges this run's stats into catalog.toml, keeping entries for catalogs not rebuilt
func (p *Pipeline) writeManifest(reports []Report, at time.Time) error {
	path := filepath.Join(p.DataDir, store.ManifestFile)

	manifest, err := store.ReadManifest(path)
	if err != nil || manifest.Catalogs == nil {
		manifest = &store.Manifest{Catalogs: make(map[string]store.CatalogStats)}
	}
	manifest.Version = p.Version
	manifest.GeneratedAt = at.UTC()
	for _, r := range reports {
		manifest.Catalogs[string(r.Kind)] = r.Stats()
	}

	if err := store.WriteManifest(path, manifest); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
