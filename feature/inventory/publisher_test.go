package inventory_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cardstock/core/storage/mocks"
	"cardstock/feature/inventory"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPublisher_Publish(t *testing.T) {
	path := writeExport(t, smallExport)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "snapshots").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "snapshots", "exports/stock.csv", mock.Anything, int64(len(smallExport)), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	pub := inventory.NewPublisher(mockClient, "snapshots")
	stats, err := pub.Publish(context.Background(), path, "exports/stock.csv")
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.Loaded)

	mockClient.AssertExpectations(t)
}

func TestPublisher_RejectsEmptyExport(t *testing.T) {
	path := writeExport(t, "Name;Quantity;Price\n")

	mockClient := new(mocks.Client)

	pub := inventory.NewPublisher(mockClient, "snapshots")
	_, err := pub.Publish(context.Background(), path, "exports/stock.csv")
	assert.Error(t, err)
	mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisher_MissingBucket(t *testing.T) {
	path := writeExport(t, smallExport)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "snapshots").Return(false, nil)

	pub := inventory.NewPublisher(mockClient, "snapshots")
	_, err := pub.Publish(context.Background(), path, "exports/stock.csv")
	assert.Error(t, err)
}
