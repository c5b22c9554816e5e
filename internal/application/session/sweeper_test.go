package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/xiebiao/storefront/pkg/metrics"
)

type fakeStore struct {
	evict  int
	calls  atomic.Int32
	gotAge atomic.Int64
}

func (f *fakeStore) EvictIdle(maxIdle time.Duration) int {
	f.calls.Add(1)
	f.gotAge.Store(int64(maxIdle))
	return f.evict
}

func TestSweeper_Sweep(t *testing.T) {
	carts := &fakeStore{evict: 3}
	flows := &fakeStore{}
	s := NewSweeper(map[string]Evicter{"cart": carts, "checkout": flows}, time.Hour, time.Minute, zap.NewNop())

	cartBefore := testutil.ToFloat64(metrics.SessionsEvictedTotal.WithLabelValues("cart"))
	flowBefore := testutil.ToFloat64(metrics.SessionsEvictedTotal.WithLabelValues("checkout"))

	assert.Equal(t, 3, s.Sweep())
	assert.Equal(t, int32(1), carts.calls.Load())
	assert.Equal(t, int32(1), flows.calls.Load())
	assert.Equal(t, int64(time.Hour), carts.gotAge.Load())

	assert.Equal(t, cartBefore+3, testutil.ToFloat64(metrics.SessionsEvictedTotal.WithLabelValues("cart")))
	assert.Equal(t, flowBefore, testutil.ToFloat64(metrics.SessionsEvictedTotal.WithLabelValues("checkout")))
}

func TestSweeper_StartStop(t *testing.T) {
	store := &fakeStore{}
	s := NewSweeper(map[string]Evicter{"wishlist": store}, time.Hour, 5*time.Millisecond, zap.NewNop())

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return store.calls.Load() >= 2 }, time.Second, time.Millisecond)

	s.Stop()
	stopped := store.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, store.calls.Load(), "Stop后不再清理")

	t.Run("重复Stop不阻塞", func(t *testing.T) {
		s.Stop()
	})

	t.Run("未启动时Stop直接返回", func(t *testing.T) {
		NewSweeper(nil, time.Hour, time.Minute, zap.NewNop()).Stop()
	})
}

func TestSweeper_StopsWithContext(t *testing.T) {
	store := &fakeStore{}
	s := NewSweeper(map[string]Evicter{"cart": store}, time.Hour, time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("ctx取消后清理协程应退出")
	}
	s.Stop()
}
