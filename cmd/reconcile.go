package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cardstock/core/config"
	"cardstock/core/logger"
	"cardstock/core/storage"
	"cardstock/feature/inventory"
	"cardstock/feature/wantlist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	inventoryPath  string
	snapshotObject string
	wantsPath      string
	showPicking    bool
	outputJSON     bool
)

// reconcileCmd matches a want-list against the stock snapshot.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a want-list against the inventory snapshot",
	Long: `Reconcile a want-list against the inventory snapshot.

The snapshot is read from a local stock export (--inventory) or from the
configured bucket (--snapshot-object). The want-list is plain text, one
"<quantity> <name>" per line.

Examples:
  # Summary view from local files
  reconcile --inventory stock.csv --wants wants.txt

  # Picking list for order fulfillment
  reconcile --inventory stock.csv --wants wants.txt --picking

  # Full report as JSON, snapshot fetched from the bucket
  reconcile --wants wants.txt --snapshot-object exports/stock.csv --json`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&inventoryPath, "inventory", "", "Path to a local stock export")
	reconcileCmd.Flags().StringVar(&snapshotObject, "snapshot-object", "", "Snapshot object name in the configured bucket")
	reconcileCmd.Flags().StringVar(&wantsPath, "wants", "", "Path to the want-list file (required)")
	reconcileCmd.Flags().BoolVar(&showPicking, "picking", false, "Render the picking-list view instead of the summary")
	reconcileCmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the full report as JSON")
	_ = reconcileCmd.MarkFlagRequired("wants")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	source, err := buildSnapshotSource(cfg)
	if err != nil {
		return err
	}

	wants, err := os.Open(wantsPath)
	if err != nil {
		return fmt.Errorf("failed to open want-list %s: %w", wantsPath, err)
	}
	defer wants.Close()

	inv := inventory.NewService(source, l)
	svc := wantlist.NewService(inv, l)

	report, err := svc.Reconcile(ctx, wants)
	if err != nil {
		return fmt.Errorf("failed to reconcile: %w", err)
	}

	if outputJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	if showPicking {
		fmt.Print(wantlist.RenderPickingList(report.Picking, cfg.Server.Currency))
	} else {
		fmt.Print(wantlist.RenderSummary(report.Summary))
	}

	l.Debug("Reconciliation finished",
		zap.Int("wants", report.Summary.TotalWants),
		zap.Int("not_in_stock", report.Summary.NotInStock),
	)

	return nil
}

// buildSnapshotSource picks the snapshot source from the flags: a local
// file when --inventory is set, otherwise the configured bucket object.
func buildSnapshotSource(cfg *config.Config) (inventory.Source, error) {
	if inventoryPath != "" {
		return &inventory.FileSource{Path: inventoryPath}, nil
	}

	object := snapshotObject
	if object == "" {
		object = cfg.Inventory.SnapshotObject
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	src := inventory.NewStorageSource(client, cfg.Storage.Bucket, object)
	ttl := time.Duration(cfg.Inventory.CacheTTLMinutes) * time.Minute
	return inventory.NewCachedSource(src, ttl), nil
}
