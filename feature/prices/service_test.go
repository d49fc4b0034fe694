package prices

import (
	"context"
	"testing"
	"time"

	"cardstock/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubFeed struct {
	records []FeedRecord
	err     error
}

func (s *stubFeed) Fetch(ctx context.Context) ([]FeedRecord, error) {
	return s.records, s.err
}

func setupService(t *testing.T, feed Feed) *Service {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	svc := NewService(feed, db, zap.NewNop(), "EUR")
	require.NoError(t, svc.Migrate())
	return svc
}

func TestService_Collect(t *testing.T) {
	feed := &stubFeed{records: []FeedRecord{
		{Name: "Lightning Bolt", Set: "2ED", Price: 14.5},
		{Name: "Lightning Bolt", Set: "2ED", Foil: true, Price: 40},
		{Name: "", Price: 3},              // no name
		{Name: "Delisted Card", Price: 0}, // non-positive price
	}}
	svc := setupService(t, feed)

	stored, err := svc.Collect(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, stored)

	latest, err := svc.Latest(context.Background(), "lightning bolt")
	require.NoError(t, err)
	assert.Equal(t, "Lightning Bolt", latest.Name)
	assert.Equal(t, "EUR", latest.Currency)
}

func TestService_Latest_OrdersByTime(t *testing.T) {
	svc := setupService(t, &stubFeed{})

	old := Snapshot{Name: "Bolt", Price: 10, Currency: "EUR", CollectedAt: time.Now().Add(-time.Hour)}
	fresh := Snapshot{Name: "Bolt", Price: 12, Currency: "EUR", CollectedAt: time.Now()}
	require.NoError(t, svc.db.Create(&old).Error)
	require.NoError(t, svc.db.Create(&fresh).Error)

	latest, err := svc.Latest(context.Background(), "Bolt")
	require.NoError(t, err)
	assert.InDelta(t, 12.0, latest.Price, 1e-9)
}

func TestService_Latest_NotFound(t *testing.T) {
	svc := setupService(t, &stubFeed{})

	_, err := svc.Latest(context.Background(), "Unknown Card")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestService_Collect_FeedError(t *testing.T) {
	svc := setupService(t, &stubFeed{err: assert.AnError})

	_, err := svc.Collect(context.Background())
	assert.Error(t, err)
}
