// Command dzair is the operator shell of the sales & profit manager:
// clients, products, sales, sponsored fees, dashboard and exports, all
// backed by one embedded database file.
package main

import (
	"fmt"
	"os"

	"dzair/internal/config"
	"dzair/internal/database"
	"dzair/internal/ledger"
	"dzair/internal/logger"
	"dzair/internal/profit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the wired-up dependencies shared by every subcommand.
type app struct {
	cfg   config.Config
	log   *zap.Logger
	store *ledger.Store
}

var a app

var configPath string

var rootCmd = &cobra.Command{
	Use:          "dzair",
	Short:        "DZAIR sales & profit manager",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}

		log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
		if err != nil {
			return fmt.Errorf("could not initialize logger: %w", err)
		}

		db, err := database.NewDatabase(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("could not open database: %w", err)
		}

		rates := profit.Rates{PerKgRate: cfg.Pricing.PerKgRate, FixedFee: cfg.Pricing.FixedFee}
		a = app{
			cfg:   cfg,
			log:   log,
			store: ledger.NewStore(db, log, rates, cfg.Invoice.Prefix),
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if a.log != nil {
			a.log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./configs", "directory containing config.yml")

	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(saleCmd)
	rootCmd.AddCommand(feeCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
