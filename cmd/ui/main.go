package main

import (
	"fmt"
	"os"

	"dzair/internal/config"
	"dzair/internal/database"
	"dzair/internal/ledger"
	"dzair/internal/logger"
	"dzair/internal/profit"
	"dzair/internal/web"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Open the embedded database
	db, err := database.NewDatabase(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}

	rates := profit.Rates{PerKgRate: cfg.Pricing.PerKgRate, FixedFee: cfg.Pricing.FixedFee}
	store := ledger.NewStore(db, log, rates, cfg.Invoice.Prefix)

	router := web.NewRouter(store, log)

	// Loopback only: the dashboard is a local view, not a network service.
	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	log.Info("Starting local dashboard", zap.String("address", addr))

	if err := router.Run(addr); err != nil {
		log.Fatal("Dashboard server failed", zap.Error(err))
	}
}
