// Package storage provides an abstraction layer for the snapshot bucket.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the snapshot workflow needs: fetching the current stock export
// and pushing a fresh one. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the snapshot bucket.
//   - GetObject: Retrieves a stock export as a stream.
//   - PutObject: Uploads a stock export (with size and options).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "snapshots")
package storage
