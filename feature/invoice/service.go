package invoice

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Service builds invoice drafts from order exports and submits them.
type Service struct {
	client   Client
	logger   *zap.Logger
	currency string
}

// NewService creates a new invoice service.
func NewService(client Client, logger *zap.Logger, currency string) *Service {
	return &Service{client: client, logger: logger, currency: currency}
}

// BuildDrafts parses an order export into invoice drafts.
func (s *Service) BuildDrafts(r io.Reader) ([]Draft, error) {
	drafts, err := ParseOrders(r, s.currency)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Built invoice drafts", zap.Int("count", len(drafts)))
	return drafts, nil
}

// Submit sends the drafts to the invoicing service one by one.
// It returns the number of invoices created. Requires opts.Confirmed=true
// and opts.DryRun=false to actually send anything; otherwise it is a no-op,
// matching the confirm discipline of the other mutating commands.
func (s *Service) Submit(ctx context.Context, drafts []Draft, opts SubmitOptions) (int, error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	submitted := 0
	for i := range drafts {
		draft := &drafts[i]

		id, err := s.client.CreateInvoice(ctx, draft)
		if err != nil {
			return submitted, fmt.Errorf("failed at order %s: %w", draft.OrderID, err)
		}

		s.logger.Info("Invoice created",
			zap.String("order_id", draft.OrderID),
			zap.String("invoice_id", id),
			zap.Float64("total", draft.Total()),
		)
		submitted++
	}

	return submitted, nil
}
