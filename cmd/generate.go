package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/config"
	"github.com/Conceptual-Machines/piano-chords/internal/metrics"
)

var generateCmd = &cobra.Command{
	Use:       "generate [chords|scales|all]",
	Short:     "Generate catalog files from the interval tables",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"chords", "scales", "all"},
	RunE:      runGenerate,
}

func init() {
	generateCmd.Flags().Bool("strict", false, "exit non-zero when a catalog is incomplete")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	defer initSentry(cfg)()

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	kinds, err := catalog.ParseKinds(arg)
	if err != nil {
		return err
	}

	pipeline := &catalog.Pipeline{DataDir: cfg.DataDir, Version: GetVersion()}
	reports, err := pipeline.Run(cmd.Context(), kinds, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	sentryMetrics := metrics.NewSentryMetrics()
	incomplete := false
	for _, r := range reports {
		sentryMetrics.RecordGeneration(cmd.Context(), string(r.Kind), r.Generated, len(r.Skipped), r.Duration)
		if rerr := r.Err(); rerr != nil {
			incomplete = true
			fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", r.Kind, rerr)
		}
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if incomplete && strict {
		return fmt.Errorf("%w (run without --strict to accept partial output)", catalog.ErrGenerationIncomplete)
	}
	return nil
}
