package cart

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrOutOfStock 缺货图书不能加入购物车
	ErrOutOfStock = apperrors.New(apperrors.ErrCodeOutOfStock, "This book is out of stock")

	// ErrInvalidQuantity 数量必须为正数
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "Quantity must be at least 1")
)
