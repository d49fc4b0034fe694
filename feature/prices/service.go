package prices

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs price collection and answers price queries.
type Service struct {
	feed     Feed
	db       *gorm.DB
	logger   *zap.Logger
	currency string
}

// NewService creates a new price service.
func NewService(feed Feed, db *gorm.DB, logger *zap.Logger, currency string) *Service {
	return &Service{feed: feed, db: db, logger: logger, currency: currency}
}

// Migrate creates the snapshot table if it doesn't exist.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&Snapshot{})
}

// Collect fetches the feed once and stores one snapshot row per usable
// record. Records without a name or with a non-positive price are skipped,
// never failing the run. Returns the number of snapshots stored.
func (s *Service) Collect(ctx context.Context) (int, error) {
	records, err := s.feed.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	snapshots := make([]Snapshot, 0, len(records))
	skipped := 0

	for _, record := range records {
		if strings.TrimSpace(record.Name) == "" || record.Price <= 0 {
			skipped++
			continue
		}
		snapshots = append(snapshots, Snapshot{
			Name:        record.Name,
			Set:         record.Set,
			Foil:        record.Foil,
			Price:       record.Price,
			Currency:    s.currency,
			CollectedAt: now,
		})
	}

	if len(snapshots) > 0 {
		if err := s.db.WithContext(ctx).CreateInBatches(snapshots, 500).Error; err != nil {
			return 0, fmt.Errorf("failed to store price snapshots: %w", err)
		}
	}

	s.logger.Info("Price collection finished",
		zap.Int("stored", len(snapshots)),
		zap.Int("skipped", skipped),
	)

	return len(snapshots), nil
}

// CollectEvery runs Collect on the given interval until the context is
// cancelled. A failing run is logged and the loop carries on; transient
// feed outages shouldn't kill the collector.
func (s *Service) CollectEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.Collect(ctx); err != nil {
			s.logger.Warn("Price collection failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Latest returns the most recent snapshot for the given card name,
// matched case-insensitively. Returns gorm.ErrRecordNotFound when the card
// has never been priced.
func (s *Service) Latest(ctx context.Context, name string) (*Snapshot, error) {
	var snapshot Snapshot
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Order("collected_at DESC").
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
