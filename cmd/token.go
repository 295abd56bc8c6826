package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/piano-chords/internal/config"
	"github.com/Conceptual-Machines/piano-chords/internal/middleware"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the regeneration endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		subject, _ := cmd.Flags().GetString("subject")
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		token, err := middleware.MintToken(cfg.JWTSecret, subject, role, ttl)
		if err != nil {
			return fmt.Errorf("failed to mint token (is JWT_SECRET set?): %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("subject", "ops", "token subject")
	tokenCmd.Flags().String("role", middleware.RoleAdmin, "token role")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
