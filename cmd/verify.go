package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wohure/seeder/internal/command"
	"github.com/wohure/seeder/internal/database"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the database holds exactly one seed run",
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	rep, err := command.Verify(ctx, db, logger)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "users=%d addresses=%d food_categories=%d food_listings=%d: ok\n",
		rep.Counts["users"], rep.Counts["addresses"], rep.Counts["food_categories"], rep.Counts["food_listings"])
	return nil
}
