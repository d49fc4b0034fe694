package inventory

import (
	"context"
	"strings"

	"cardstock/core/recon"

	"go.uber.org/zap"
)

// Service exposes inventory snapshot operations.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService creates a new inventory service on top of a snapshot source.
func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Snapshot returns the current sanitized inventory snapshot.
func (s *Service) Snapshot(ctx context.Context) ([]recon.Listing, error) {
	return s.source.Load(ctx)
}

// SnapshotSummary aggregates a snapshot for the stock overview endpoint.
type SnapshotSummary struct {
	// Listings is the number of listing rows in the snapshot.
	Listings int `json:"listings"`
	// Copies is the total quantity across all listings.
	Copies int `json:"copies"`
	// Value is the summed quantity-weighted price.
	Value float64 `json:"value"`
	// Locations is the number of distinct storage locations.
	Locations int `json:"locations"`
}

// Summary computes aggregate stats over the current snapshot.
func (s *Service) Summary(ctx context.Context) (*SnapshotSummary, error) {
	listings, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	summary := &SnapshotSummary{Listings: len(listings)}
	locations := make(map[string]struct{})

	for _, listing := range listings {
		summary.Copies += listing.Quantity
		summary.Value += float64(listing.Quantity) * listing.Price
		if listing.Location != "" {
			locations[listing.Location] = struct{}{}
		}
	}
	summary.Locations = len(locations)

	return summary, nil
}

// Search returns the listings whose name matches, case-insensitively,
// in snapshot order.
func (s *Service) Search(ctx context.Context, name string) ([]recon.Listing, error) {
	listings, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]recon.Listing, 0)
	for _, listing := range listings {
		if strings.EqualFold(listing.Name, name) {
			matches = append(matches, listing)
		}
	}

	return matches, nil
}
