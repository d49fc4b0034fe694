package wantlist

import (
	"context"
	"io"

	"cardstock/core/recon"
	"cardstock/feature/inventory"

	"go.uber.org/zap"
)

// Report bundles everything a reconciliation run produces: the raw match
// results plus both shaped views.
type Report struct {
	// Results holds one match result per want entry, in want-list order.
	Results []recon.MatchResult `json:"results"`

	// Summary is the per-entry aggregate view.
	Summary recon.Summary `json:"summary"`

	// Picking is the fulfillment view grouping matched listings per entry.
	Picking []recon.PickingGroup `json:"picking"`
}

// Service reconciles want-lists against the inventory snapshot.
type Service struct {
	inventory *inventory.Service
	logger    *zap.Logger
}

// NewService creates a new want-list service.
func NewService(inv *inventory.Service, logger *zap.Logger) *Service {
	return &Service{inventory: inv, logger: logger}
}

// Reconcile parses the want-list and matches it against the current
// inventory snapshot.
func (s *Service) Reconcile(ctx context.Context, r io.Reader) (*Report, error) {
	wants, err := ParseWants(r)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.inventory.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	results := recon.Match(snapshot, wants)

	s.logger.Debug("Reconciled want-list",
		zap.Int("wants", len(wants)),
		zap.Int("listings", len(snapshot)),
	)

	return &Report{
		Results: results,
		Summary: recon.Summarize(results),
		Picking: recon.BuildPickingList(results),
	}, nil
}
