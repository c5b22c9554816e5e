package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storefront/pkg/metrics"
)

// Evicter 按会话保存状态、能清理闲置条目的存储
// cart.Store、wishlist.Store、checkout.Store都实现了它
type Evicter interface {
	EvictIdle(maxIdle time.Duration) int
}

// Sweeper 定时清理闲置的会话状态
//
// 设计说明:
// 1. 购物车、收藏夹、结算流程都放在进程内存里,浏览器丢掉Cookie后就再也不会被访问
// 2. 闲置时间超过maxIdle(与会话Cookie有效期相同)的条目每interval清理一次
// 3. 单个存储的清理互不影响,清理数量记入storefront_sessions_evicted_total
type Sweeper struct {
	stores   map[string]Evicter
	maxIdle  time.Duration
	interval time.Duration
	logger   *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewSweeper 创建清理器,stores的key作为指标标签
func NewSweeper(stores map[string]Evicter, maxIdle, interval time.Duration, logger *zap.Logger) *Sweeper {
	metrics.InitMetrics()
	return &Sweeper{
		stores:   stores,
		maxIdle:  maxIdle,
		interval: interval,
		logger:   logger,
	}
}

// Sweep 清理一轮,返回清理总数
func (s *Sweeper) Sweep() int {
	total := 0
	for name, store := range s.stores {
		n := store.EvictIdle(s.maxIdle)
		if n == 0 {
			continue
		}
		metrics.AddCounterVec(metrics.SessionsEvictedTotal, map[string]string{"store": name}, float64(n))
		total += n
	}
	if total > 0 {
		s.logger.Info("idle sessions evicted",
			zap.Int("count", total),
			zap.Duration("max_idle", s.maxIdle),
		)
	}
	return total
}

// Start 启动后台清理,ctx取消或调用Stop时退出
func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()

	s.logger.Info("session sweeper started",
		zap.Duration("interval", s.interval),
		zap.Duration("max_idle", s.maxIdle),
	)
}

// Stop 停止后台清理并等待当前一轮结束,可重复调用
func (s *Sweeper) Stop() {
	s.once.Do(func() {
		if s.cancel == nil {
			return
		}
		s.cancel()
		<-s.done
		s.logger.Info("session sweeper stopped")
	})
}
