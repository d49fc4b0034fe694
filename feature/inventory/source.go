package inventory

import (
	"context"
	"fmt"
	"os"

	"cardstock/core/recon"
	"cardstock/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source supplies a parsed inventory snapshot.
type Source interface {
	// Load returns the sanitized listings of the current snapshot.
	Load(ctx context.Context) ([]recon.Listing, error)
}

// FileSource reads a snapshot from a local stock export file.
type FileSource struct {
	// Path is the location of the export on disk.
	Path string
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]recon.Listing, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", s.Path, err)
	}
	defer f.Close()

	listings, _, err := ParseSnapshot(f)
	return listings, err
}

// StorageSource reads a snapshot object from the configured bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	object string
}

// NewStorageSource creates a source reading the given snapshot object.
func NewStorageSource(client storage.Client, bucket, object string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, object: object}
}

// Load implements Source.
func (s *StorageSource) Load(ctx context.Context) ([]recon.Listing, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot %s: %w", s.object, err)
	}
	defer obj.Close()

	listings, _, err := ParseSnapshot(obj)
	return listings, err
}
