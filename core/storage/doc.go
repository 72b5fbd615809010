// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface used for floor
// background images and published renders. Both AWS S3 and self-hosted MinIO
// work.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Helpers
//
//   - EnsureBucket: creates the configured bucket on first start.
//   - PutBytes: uploads an in-memory render with its content type.
//   - ListKeys: lists object keys below a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
