package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Conceptual-Machines/piano-chords/internal/config"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

var rootCmd = &cobra.Command{
	Use:   "piano-chords",
	Short: "Piano chord and scale catalog",
	Long: "piano-chords generates the chord and scale catalogs from interval tables, " +
		"serves them over HTTP and renders them as browsable pages.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("env-file", "", "dotenv file to load (default .env)")
	rootCmd.PersistentFlags().String("data-dir", "", "catalog data directory (default data)")
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	if envFile, _ := rootCmd.PersistentFlags().GetString("env-file"); envFile != "" {
		config.LoadDotEnv(envFile)
	} else {
		config.LoadDotEnv()
	}
}

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}
