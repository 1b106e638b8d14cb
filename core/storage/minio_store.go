package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
)

// MinioStore implements ObjectStore and Admin on top of a MinIO Client.
type MinioStore struct {
	client Client
	bucket string
}

// NewMinioStore wraps client for the given bucket.
func NewMinioStore(client Client, bucket string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket}
}

func (s *MinioStore) Exists(ctx context.Context, key string) (bool, error) {
	_, found, err := s.Stat(ctx, key)
	return found, err
}

func (s *MinioStore) Stat(ctx context.Context, key string) (ObjectInfo, bool, error) {
	obj, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isMinioNotFound(err) {
			return ObjectInfo{}, false, nil
		}
		return ObjectInfo{}, false, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	return ObjectInfo{
		Key:          obj.Key,
		Size:         obj.Size,
		LastModified: obj.LastModified,
		ContentType:  obj.ContentType,
	}, true, nil
}

func (s *MinioStore) Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (s *MinioStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return u.String(), nil
}

func (s *MinioStore) BucketExists(ctx context.Context) (bool, error) {
	return s.client.BucketExists(ctx, s.bucket)
}

func (s *MinioStore) CreateBucket(ctx context.Context) error {
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *MinioStore) ListKeys(ctx context.Context, prefix string, max int) ([]string, error) {
	// Stop the listing goroutine when we break out early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
		MaxKeys:   max,
	}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return keys, obj.Err
		}
		keys = append(keys, obj.Key)
		if max > 0 && len(keys) >= max {
			break
		}
	}
	return keys, nil
}

// isMinioNotFound maps the store's "no such object" responses.
func isMinioNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NotFound":
		return true
	}
	return resp.StatusCode == http.StatusNotFound && resp.Code != "NoSuchBucket"
}
