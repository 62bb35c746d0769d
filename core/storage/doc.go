// Package storage wraps the MinIO client for the report bucket. It works
// against MinIO and AWS S3 alike.
//
// Client is the narrow interface the features depend on; core/storage/mocks
// provides a testify mock of it. EnsureBucket creates the bucket on first use
// and IsNotFound recognizes missing keys and buckets, so the reorder exports
// and the integrity storage check share one notion of both.
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket)
package storage
