package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wohure/seeder/internal/command"
	"github.com/wohure/seeder/internal/database"
	"github.com/wohure/seeder/internal/repository"
)

var seedMigrate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert test users, addresses, food categories and listings",
	RunE:  runSeed,
}

func init() {
	addSeedFlags(seedCmd)
}

func addSeedFlags(c *cobra.Command) {
	c.Flags().BoolVar(&seedMigrate, "migrate", false, "Apply migrations before seeding")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if seedMigrate {
		logger.Info("Applying migrations", zap.String("source", cfg.MigrationsSource()))
		if err := command.MigrateUp(cfg.MigrationsSource(), cfg.DatabaseURL()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()
	logger.Info("Connected to database", dbFields(cfg)...)

	res, err := command.Seed(ctx, db, command.Options{
		BcryptCost: cfg.Seed.BcryptCost,
		Logger:     logger,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			logger.Error("Database is already seeded, reset the schema before seeding again", zap.Error(err))
		}
		return fmt.Errorf("seed: %w", err)
	}

	logger.Info("Seed finished",
		zap.Int64("donor_id", res.DonorID),
		zap.Int64("address_id", res.AddressID))
	return nil
}
