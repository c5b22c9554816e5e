package address

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

var (
	// ErrInvalidAddress 缺少必填字段
	ErrInvalidAddress = apperrors.New(apperrors.ErrCodeInvalidParams, "Please fill in all required address fields")

	// ErrAddressNotFound 地址不存在
	ErrAddressNotFound = apperrors.New(apperrors.ErrCodeAddressNotFound, "Address not found")
)
