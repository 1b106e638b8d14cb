// Package storage provides an abstraction layer for object storage services.
//
// The rest of the application sees the remote side of the track library only through
// the ObjectStore interface: existence checks, metadata lookups, uploads and presigned
// download URLs. Absent objects are reported as "not found" values, never as errors.
//
// # Providers
//
//   - minio: MinioStore over the MinIO Go client (Client), for MinIO and S3-compatible endpoints.
//   - s3: S3Store over the AWS SDK v2, with a presign client for playback URLs.
//   - memory: MemoryStore, an in-process store for development and tests.
//
// Stores also implement Admin, which the health feature uses to verify and create the
// bucket and to probe listing of the track namespace.
//
// # Client Interface
//
// Client mirrors the subset of the MinIO API in use so that it can be mocked
// (see core/storage/mocks).
//
// # Usage
//
//	store, err := storage.Open(cfg.Storage)
//	info, found, err := store.Stat(ctx, "tracks/demo.wav")
package storage
