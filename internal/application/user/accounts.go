package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/xiebiao/storefront/internal/domain/user"
	"github.com/xiebiao/storefront/internal/infrastructure/config"
)

// SeedAccounts 把配置中的预置账户写入仓储(启动时调用一次)
// 明文密码只在这里出现,仓储只保存bcrypt哈希
func SeedAccounts(ctx context.Context, repo user.Repository, svc user.Service, accounts []config.AccountConfig) error {
	for _, acc := range accounts {
		if acc.Role == "" {
			acc.Role = string(user.RoleUser)
		}
		role, ok := user.ParseRole(acc.Role)
		if !ok {
			return fmt.Errorf("account %s: invalid role %q", acc.Email, acc.Role)
		}
		hashed, err := svc.HashPassword(acc.Password)
		if err != nil {
			return fmt.Errorf("account %s: %w", acc.Email, err)
		}

		u := user.NewUser(uuid.NewString(), acc.Email, hashed, acc.Name, role)
		u.Phone = acc.Phone
		if err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("account %s: %w", acc.Email, err)
		}
	}
	return nil
}
