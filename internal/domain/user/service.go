package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// Service 用户领域服务
// 1. Service包含不属于单个实体的业务逻辑(密码哈希、登录校验)
// 2. Service依赖Repository接口,不依赖具体实现
type Service interface {
	// Login 登录校验
	Login(ctx context.Context, email, password string) (*User, error)

	// Profile 读取账户资料
	Profile(ctx context.Context, email string) (*User, error)

	// UpdateProfile 更新账户资料,空字段不修改
	UpdateProfile(ctx context.Context, email, name, phone string) (*User, error)

	// HashPassword 生成密码哈希(加载预置账户时使用)
	HashPassword(password string) (string, error)
}

type service struct {
	repo Repository
	cost int
}

// NewService 创建用户服务
// cost为0时使用bcrypt.DefaultCost
func NewService(repo Repository, cost int) Service {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &service{repo: repo, cost: cost}
}

// Login 用户登录
// 业务规则:
// 1. 邮箱和密码都不能为空(字段级校验错误)
// 2. 邮箱不存在和密码错误返回同一个错误,不泄露账户是否存在
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(email) == "" {
		fields["email"] = "Email is required"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return nil, ErrMissingCredentials.WithFields(fields)
	}

	u, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.validatePassword(u.Password, password); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Profile(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, NormalizeEmail(email))
}

func (s *service) UpdateProfile(ctx context.Context, email, name, phone string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	u.UpdateProfile(name, phone)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// HashPassword bcrypt自动加盐,同一密码每次结果不同
func (s *service) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

// validatePassword 验证明文密码与哈希值是否匹配
func (s *service) validatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidCredentials
		}
		return apperrors.Wrap(err, "failed to verify password")
	}
	return nil
}
