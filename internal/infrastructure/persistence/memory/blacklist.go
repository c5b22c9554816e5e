package memory

import (
	"context"
	"sync"
	"time"

	"github.com/xiebiao/storefront/internal/domain/user"
)

// TokenBlacklist 进程内Token黑名单(session.store=memory)
// 查询时顺带清理过期条目
type TokenBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time // token → 过期时间
	now     func() time.Time
}

var _ user.TokenBlacklist = (*TokenBlacklist)(nil)

// NewTokenBlacklist 创建内存黑名单
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{entries: make(map[string]time.Time), now: time.Now}
}

func (b *TokenBlacklist) Add(_ context.Context, token string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[token] = b.now().Add(ttl)
	return nil
}

func (b *TokenBlacklist) Contains(_ context.Context, token string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	for t, exp := range b.entries {
		if !now.Before(exp) {
			delete(b.entries, t)
		}
	}
	_, ok := b.entries[token]
	return ok, nil
}
