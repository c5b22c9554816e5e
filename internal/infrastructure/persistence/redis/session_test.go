package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storefront/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// fakeKV 内存实现,down为true时模拟Redis不可用
type fakeKV struct {
	data  map[string]string
	ttl   map[string]time.Duration
	down  bool
	calls int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string), ttl: make(map[string]time.Duration)}
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.calls++
	if f.down {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	f.data[key] = value.(string)
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	f.calls++
	if f.down {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func TestTokenBlacklist_AddContains(t *testing.T) {
	kv := newFakeKV()
	bl := newTokenBlacklist(kv)
	ctx := context.Background()

	ok, err := bl.Contains(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, bl.Add(ctx, "token-a", 2*time.Hour))
	assert.Equal(t, 2*time.Hour, kv.ttl["blacklist:token-a"])

	ok, err = bl.Contains(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTokenBlacklist_MissDoesNotTripBreaker(t *testing.T) {
	bl := newTokenBlacklist(newFakeKV())
	for i := 0; i < 20; i++ {
		_, err := bl.Contains(context.Background(), "missing")
		require.NoError(t, err)
	}
	assert.Equal(t, circuitbreaker.StateClosed, bl.breaker.State())
}

func TestTokenBlacklist_BreakerOpensWhenRedisDown(t *testing.T) {
	kv := newFakeKV()
	kv.down = true
	bl := newTokenBlacklist(kv)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := bl.Contains(ctx, "t")
		assert.ErrorIs(t, err, apperrors.ErrRedisError)
	}
	assert.Equal(t, circuitbreaker.StateOpen, bl.breaker.State())

	calls := kv.calls
	_, err := bl.Contains(ctx, "t")
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Equal(t, calls, kv.calls, "熔断后不应再访问Redis")
}
