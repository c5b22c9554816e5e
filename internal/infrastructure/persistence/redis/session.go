package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/storefront/internal/domain/user"
	"github.com/xiebiao/storefront/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

const blacklistPrefix = "blacklist:"

// kv TokenBlacklist用到的Redis命令(*redis.Client实现了它)
type kv interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// TokenBlacklist 基于Redis的Token黑名单
// 设计说明：
// 1. Key设计：blacklist:{token}，过期时间 = Access Token有效期，到期自动删除
// 2. 多实例部署时共享注销状态
// 3. 所有命令经过熔断器，Redis故障时快速失败而不是每个请求都等超时
type TokenBlacklist struct {
	client  kv
	breaker *circuitbreaker.CircuitBreaker
}

var _ user.TokenBlacklist = (*TokenBlacklist)(nil)

// NewTokenBlacklist 创建Redis黑名单
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return newTokenBlacklist(client)
}

func newTokenBlacklist(client kv) *TokenBlacklist {
	return &TokenBlacklist{
		client: client,
		breaker: circuitbreaker.New("redis-blacklist", circuitbreaker.Config{
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     10 * time.Second,
			// key不存在是正常结果
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, redis.Nil)
			},
		}),
	}
}

// Add 将Token加入黑名单
func (b *TokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	err := b.breaker.Execute(func() error {
		return b.client.Set(ctx, blacklistPrefix+token, "revoked", ttl).Err()
	})
	if err != nil {
		return apperrors.ErrRedisError.WithCause(err)
	}
	return nil
}

// Contains 检查Token是否在黑名单中
func (b *TokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	err := b.breaker.Execute(func() error {
		return b.client.Get(ctx, blacklistPrefix+token).Err()
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, apperrors.ErrRedisError.WithCause(err)
	}
}
