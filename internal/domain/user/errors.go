package user

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 账户不存在(登录时不会返回给客户端,统一为ErrInvalidCredentials)
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")

	// ErrMissingCredentials 邮箱或密码为空
	ErrMissingCredentials = apperrors.New(apperrors.ErrCodeInvalidParams, "Please fill in all fields")

	// ErrDuplicateEmail 预置账户邮箱重复
	ErrDuplicateEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "Email already exists")
)
