package mocks

import (
	"context"
	"time"

	"track-manager/core/storage"

	"github.com/stretchr/testify/mock"
)

// ObjectStore is a mock implementation of storage.ObjectStore
type ObjectStore struct {
	mock.Mock
}

func (m *ObjectStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *ObjectStore) Stat(ctx context.Context, key string) (storage.ObjectInfo, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(storage.ObjectInfo), args.Bool(1), args.Error(2)
}

func (m *ObjectStore) Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	args := m.Called(ctx, key, data, contentType, metadata)
	return args.Error(0)
}

func (m *ObjectStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
