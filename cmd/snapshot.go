package cmd

import (
	"context"
	"fmt"

	"cardstock/core/config"
	"cardstock/core/logger"
	"cardstock/core/storage"
	"cardstock/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for snapshot push
	pushExportPath string
	pushObject     string
)

// snapshotCmd is the parent command for snapshot operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage the stock snapshot in the bucket",
}

// snapshotPushCmd uploads a local stock export as the current snapshot.
var snapshotPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload a local stock export to the snapshot bucket",
	Long: `Validate a local stock export and upload it to the configured bucket.

The export is parsed first; a file that yields no usable listings is
rejected so a bad upload can't wipe the snapshot the server serves.`,
	RunE: runSnapshotPush,
}

func init() {
	snapshotPushCmd.Flags().StringVar(&pushExportPath, "export", "", "Path to the local stock export (required)")
	snapshotPushCmd.Flags().StringVar(&pushObject, "object", "", "Object name to upload as (defaults to the configured snapshot object)")
	_ = snapshotPushCmd.MarkFlagRequired("export")

	snapshotCmd.AddCommand(snapshotPushCmd)
	RootCmd.AddCommand(snapshotCmd)
}

func runSnapshotPush(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	object := pushObject
	if object == "" {
		object = cfg.Inventory.SnapshotObject
	}

	publisher := inventory.NewPublisher(client, cfg.Storage.Bucket)
	stats, err := publisher.Publish(ctx, pushExportPath, object)
	if err != nil {
		return err
	}

	l.Info("Snapshot uploaded",
		zap.String("object", object),
		zap.Int("rows", stats.Rows),
		zap.Int("loaded", stats.Loaded),
		zap.Int("dropped", stats.Dropped),
	)

	return nil
}
