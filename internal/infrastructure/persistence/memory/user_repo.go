package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/storefront/internal/domain/user"
)

// userRepository 账户仓储的内存实现
// 账户来自配置,进程内有效;返回值都是副本
type userRepository struct {
	mu    sync.RWMutex
	users map[string]user.User // key: 规范化后的邮箱
}

// NewUserRepository 创建内存账户仓储
func NewUserRepository() user.Repository {
	return &userRepository{users: make(map[string]user.User)}
}

func (r *userRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := user.NormalizeEmail(u.Email)
	if _, ok := r.users[key]; ok {
		return user.ErrDuplicateEmail
	}
	r.users[key] = *u
	return nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[user.NormalizeEmail(email)]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepository) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := user.NormalizeEmail(u.Email)
	if _, ok := r.users[key]; !ok {
		return user.ErrUserNotFound
	}
	r.users[key] = *u
	return nil
}
