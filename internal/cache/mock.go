package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockCache is a testify mock for any Cache[V]. Get expectations must
// return a V (or nil for the zero value).
type MockCache[V any] struct {
	mock.Mock
}

var _ Cache[string] = (*MockCache[string])(nil)

func (m *MockCache[V]) Get(ctx context.Context, key string) (V, error) {
	args := m.Called(ctx, key)
	var val V
	if v, ok := args.Get(0).(V); ok {
		val = v
	}
	return val, args.Error(1)
}

func (m *MockCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache[V]) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
