package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagDebug  bool
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:          "wohure-seed",
	Short:        "Seed the wohure database with fixed test data",
	SilenceUsage: true,
	RunE:         runSeed, // по умолчанию — сидирование
}

// Execute запускает корневую команду (Cobra CLI)
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "./config/config.yaml", "Path to config.yaml")
	addSeedFlags(rootCmd)

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}
