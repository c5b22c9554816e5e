package user

import (
	"strings"
	"time"
)

// Role 账户角色
// 守卫按角色判断能否访问受保护的接口(结算、账户页 vs 管理后台)
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole 解析角色,大小写不敏感
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User 账户实体(聚合根)
// 1. 账户来自配置,启动时加载到仓储,密码只保存bcrypt哈希
// 2. Email是登录名,同时作为地址簿和资料的归属键
type User struct {
	ID        string
	Email     string
	Password  string // bcrypt哈希值
	Name      string
	Phone     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建账户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewUser(id, email, hashedPassword, name string, role Role) *User {
	now := time.Now()
	return &User{
		ID:        id,
		Email:     NormalizeEmail(email),
		Password:  hashedPassword,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpdateProfile 更新资料(领域行为),空值表示不修改
func (u *User) UpdateProfile(name, phone string) {
	if name = strings.TrimSpace(name); name != "" {
		u.Name = name
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		u.Phone = phone
	}
	u.UpdatedAt = time.Now()
}

// NormalizeEmail 邮箱统一小写去空白,登录和仓储查找都用它
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
