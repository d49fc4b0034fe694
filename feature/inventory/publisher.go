package inventory

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"cardstock/core/storage"

	"github.com/minio/minio-go/v7"
)

// Publisher uploads a local stock export to the snapshot bucket so the
// server and other operators pick it up on the next cache refresh.
type Publisher struct {
	client storage.Client
	bucket string
}

// NewPublisher creates a publisher targeting the given bucket.
func NewPublisher(client storage.Client, bucket string) *Publisher {
	return &Publisher{client: client, bucket: bucket}
}

// Publish validates the export at path and uploads it under the given
// object name. The export must parse to at least one listing; pushing an
// empty or malformed file would wipe the snapshot everyone reconciles
// against.
func (p *Publisher) Publish(ctx context.Context, path, object string) (ParseStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParseStats{}, fmt.Errorf("failed to read export %s: %w", path, err)
	}

	listings, stats, err := ParseSnapshot(bytes.NewReader(data))
	if err != nil {
		return stats, fmt.Errorf("export %s is not a valid snapshot: %w", path, err)
	}
	if len(listings) == 0 {
		return stats, fmt.Errorf("export %s contains no usable listings", path)
	}

	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return stats, fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		return stats, fmt.Errorf("bucket %s does not exist", p.bucket)
	}

	_, err = p.client.PutObject(ctx, p.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return stats, fmt.Errorf("failed to upload snapshot %s: %w", object, err)
	}

	return stats, nil
}
