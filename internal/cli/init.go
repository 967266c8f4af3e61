package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/config"
	"github.com/example/dispatch/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize dispatch in the current directory",
		Long: `Write .dispatch/config.json with the operator identity and role, and
initialize the database.

Examples:
  dispatch init --operator ADM-001 --role ADMIN
  dispatch init --operator USR-001 --role USER
  dispatch init --operator ADM-001 --role ADMIN --seed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			operator, _ := cmd.Flags().GetString("operator")
			role, _ := cmd.Flags().GetString("role")
			seed, _ := cmd.Flags().GetBool("seed")

			if role != config.RoleAdmin && role != config.RoleUser {
				return fmt.Errorf("role must be %s or %s, got %q", config.RoleAdmin, config.RoleUser, role)
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			cfg := &config.Config{
				Version:            "1",
				Role:               role,
				OperatorID:         operator,
				FallbackDailyLimit: config.DefaultFallbackDailyLimit,
				RestoreDailyLimit:  config.DefaultRestoreDailyLimit,
			}
			if err := config.SaveConfig(cwd, cfg); err != nil {
				return err
			}

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			if seed {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Seeded starter crew, fleet, and today's capacity")
			}

			fmt.Printf("✓ Initialized dispatch for %s (%s)\n", operator, role)
			return nil
		},
	}

	cmd.Flags().String("operator", "", "Operator ID, e.g. ADM-001")
	cmd.Flags().String("role", config.RoleUser, "Operator role: ADMIN or USER")
	cmd.Flags().Bool("seed", false, "Seed development fixtures")

	return cmd
}
