package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"cardstock/core/config"
	"cardstock/core/logger"
	"cardstock/feature/invoice"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for invoice submit
	ordersPath    string
	dryRunInvoice bool
	yesConfirm    bool
)

// invoiceCmd is the parent command for invoicing operations.
var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Bridge order exports to the invoicing service",
}

// invoiceSubmitCmd builds invoice drafts from an order export and submits them.
var invoiceSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit invoices for an order export (report + optionally send)",
	Long: `Build invoice drafts from an order export and submit them to the
invoicing service.

Always prints a report of the drafts first. Submission requires explicit
confirmation since invoices at the SaaS side cannot be unsent.

Examples:
  # Report only (dry-run)
  invoice submit --orders orders.csv --dry-run

  # Submit with interactive confirmation
  invoice submit --orders orders.csv

  # Submit with auto-confirm (non-interactive)
  invoice submit --orders orders.csv --yes`,
	RunE: runInvoiceSubmit,
}

func init() {
	invoiceCmd.AddCommand(invoiceSubmitCmd)

	invoiceSubmitCmd.Flags().StringVar(&ordersPath, "orders", "", "Path to the order export (required)")
	invoiceSubmitCmd.Flags().BoolVar(&dryRunInvoice, "dry-run", false, "Force dry-run (no submissions even with --yes)")
	invoiceSubmitCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm submission (non-interactive)")
	_ = invoiceSubmitCmd.MarkFlagRequired("orders")

	RootCmd.AddCommand(invoiceCmd)
}

func runInvoiceSubmit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := invoice.NewClient(cfg.Invoice)
	if err != nil {
		return fmt.Errorf("failed to create invoicing client: %w", err)
	}

	svc := invoice.NewService(client, l, cfg.Server.Currency)

	orders, err := os.Open(ordersPath)
	if err != nil {
		return fmt.Errorf("failed to open order export %s: %w", ordersPath, err)
	}
	defer orders.Close()

	drafts, err := svc.BuildDrafts(orders)
	if err != nil {
		return fmt.Errorf("failed to build drafts: %w", err)
	}

	printDraftReport(l, drafts, cfg.Server.Currency)

	if len(drafts) == 0 {
		l.Info("No drafts to submit.")
		return nil
	}

	if dryRunInvoice {
		l.Info("Dry-run mode: No invoices were submitted.")
		return nil
	}

	if !confirmSubmission() {
		l.Warn("Submission cancelled by user. No invoices were sent.")
		return nil
	}

	opts := invoice.SubmitOptions{Confirmed: true}

	l.Info("Submitting invoices...")
	submitted, err := svc.Submit(ctx, drafts, opts)
	if err != nil {
		return fmt.Errorf("failed after %d submissions: %w", submitted, err)
	}

	l.Info("Successfully submitted invoices", zap.Int("count", submitted))
	return nil
}

// printDraftReport logs a per-draft overview before any submission happens.
func printDraftReport(l *zap.Logger, drafts []invoice.Draft, currency string) {
	total := 0.0
	for _, draft := range drafts {
		total += draft.Total()
	}

	l.Info("Invoice draft report",
		zap.Int("drafts", len(drafts)),
		zap.Float64("total", total),
		zap.String("currency", currency),
	)

	// Show sample of drafts (max 5 for logger)
	maxShow := 5
	if len(drafts) < maxShow {
		maxShow = len(drafts)
	}
	for i := 0; i < maxShow; i++ {
		draft := drafts[i]
		l.Info("Sample draft",
			zap.String("order_id", draft.OrderID),
			zap.String("buyer", draft.Buyer),
			zap.Int("lines", len(draft.Lines)),
			zap.Float64("total", draft.Total()),
		)
	}
	if len(drafts) > maxShow {
		l.Info("Additional drafts not shown", zap.Int("count", len(drafts)-maxShow))
	}
}

// confirmSubmission prompts the user for confirmation or uses --yes flag.
func confirmSubmission() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to submit the invoices: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
