// Package storage provides an abstraction layer for object storage.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// dump-file operations the tool needs: checking bucket access, uploading
// dumps, fetching them as streams, and listing what is available. The
// abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making storage
// interactions mockable for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "dumps")
package storage
