package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wohure/seeder/internal/command"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the users, addresses, food_categories and food_listings schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(true)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations (all by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(false)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 0, "Number of migrations to roll back (0 = all)")
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

func runMigrate(up bool) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	fields := append(dbFields(cfg), zap.String("source", cfg.MigrationsSource()))
	if up {
		logger.Info("Migrating up", fields...)
		if err := command.MigrateUp(cfg.MigrationsSource(), cfg.DatabaseURL()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	} else {
		logger.Info("Migrating down", append(fields, zap.Int("steps", migrateSteps))...)
		if err := command.MigrateDown(cfg.MigrationsSource(), cfg.DatabaseURL(), migrateSteps); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	logger.Info("Migrations done")
	return nil
}
