package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/config"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
	"github.com/Conceptual-Machines/piano-chords/internal/theory"
)

const checkSamples = 3

var errCheckFailed = errors.New("catalog check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the generated catalogs and interval tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return runCheck(cmd.OutOrStdout(), cfg.DataDir)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(out io.Writer, dataDir string) error {
	ok := true
	report := func(name string, problems []error) {
		if len(problems) == 0 {
			fmt.Fprintf(out, "✓ %s\n", name)
			return
		}
		ok = false
		fmt.Fprintf(out, "✗ %s: %d problem(s)\n", name, len(problems))
		for _, p := range problems {
			fmt.Fprintf(out, "    %v\n", p)
		}
	}

	report("chord patterns", single(theory.ValidatePatterns(theory.ChordPatterns())))
	report("scale patterns", single(theory.ValidatePatterns(theory.ScalePatterns())))

	chords, err := catalog.LoadChords(dataDir)
	if err != nil {
		report(store.ChordsFile, []error{err})
	} else {
		fmt.Fprintf(out, "Total chords: %d\n", len(chords))
		for _, c := range chords[:min(checkSamples, len(chords))] {
			fmt.Fprintf(out, "  %-8s %s\n", c.Symbol, strings.Join(c.Notes, " "))
		}
		report(store.ChordsFile, catalog.CheckChords(chords))
	}

	scales, err := catalog.LoadScales(dataDir)
	if err != nil {
		report(store.ScalesFile, []error{err})
	} else {
		fmt.Fprintf(out, "Total scales: %d\n", len(scales))
		for _, s := range scales[:min(checkSamples, len(scales))] {
			fmt.Fprintf(out, "  %-24s %s\n", s.ID, strings.Join(s.Notes, " "))
		}
		report(store.ScalesFile, catalog.CheckScales(scales))
	}

	manifest, err := store.ReadManifest(filepath.Join(dataDir, store.ManifestFile))
	switch {
	case err != nil:
		report(store.ManifestFile, []error{err})
	default:
		fmt.Fprintf(out, "Last generation: %s (version %s)\n", manifest.GeneratedAt.Format("2006-01-02 15:04:05 MST"), manifest.Version)
		var problems []error
		for _, name := range manifest.Incomplete() {
			problems = append(problems, fmt.Errorf("%w: %s", catalog.ErrGenerationIncomplete, name))
		}
		report(store.ManifestFile, problems)
	}

	if !ok {
		return errCheckFailed
	}
	return nil
}

func single(err error) []error {
	if err == nil {
		return nil
	}
	return []error{err}
}
