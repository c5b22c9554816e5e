package user

import (
	"context"
	"time"
)

// Repository 账户仓储接口
// 接口定义在domain层,实现在infrastructure/persistence/memory
type Repository interface {
	// Create 创建账户,邮箱已存在时返回ErrDuplicateEmail
	Create(ctx context.Context, user *User) error

	// FindByEmail 根据邮箱查找账户
	// 如果不存在,返回ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update 更新账户信息
	Update(ctx context.Context, user *User) error
}

// TokenBlacklist 已注销Token的黑名单
// 两种实现:进程内(memory)和Redis(多实例共享)
type TokenBlacklist interface {
	// Add 加入黑名单,ttl到期后自动失效(与Token剩余有效期一致即可)
	Add(ctx context.Context, token string, ttl time.Duration) error

	// Contains 是否已注销
	Contains(ctx context.Context, token string) (bool, error)
}
