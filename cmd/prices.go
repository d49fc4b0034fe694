package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"cardstock/core/config"
	"cardstock/core/database"
	"cardstock/core/logger"
	"cardstock/feature/prices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Flag for prices collect
var loopCollect bool

// pricesCmd is the parent command for price collection operations.
var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Collect market price data into the local database",
}

// pricesCollectCmd runs a collection pass, once or on an interval.
var pricesCollectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch the price feed and store snapshots",
	Long: `Fetch the configured price feed and store one snapshot per card.

Runs once by default. With --loop, keeps collecting on the configured
interval until interrupted.`,
	RunE: runPricesCollect,
}

func init() {
	pricesCollectCmd.Flags().BoolVar(&loopCollect, "loop", false, "Keep collecting on the configured interval")

	pricesCmd.AddCommand(pricesCollectCmd)
	RootCmd.AddCommand(pricesCmd)
}

func runPricesCollect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	feed, err := prices.NewFeed(cfg.Prices)
	if err != nil {
		return fmt.Errorf("failed to create feed client: %w", err)
	}

	svc := prices.NewService(feed, db, l, cfg.Server.Currency)
	if err := svc.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate price schema: %w", err)
	}

	if !loopCollect {
		stored, err := svc.Collect(context.Background())
		if err != nil {
			return fmt.Errorf("failed to collect prices: %w", err)
		}
		l.Info("Stored price snapshots", zap.Int("count", stored))
		return nil
	}

	interval := time.Duration(cfg.Prices.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l.Info("Collecting prices on interval", zap.Duration("interval", interval))
	svc.CollectEvery(ctx, interval)
	l.Info("Price collection stopped")

	return nil
}
