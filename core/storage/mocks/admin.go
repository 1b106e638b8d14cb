package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Admin is a mock implementation of storage.Admin
type Admin struct {
	mock.Mock
}

func (m *Admin) BucketExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *Admin) CreateBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Admin) ListKeys(ctx context.Context, prefix string, max int) ([]string, error) {
	args := m.Called(ctx, prefix, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
