package book

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrInvalidBook 目录数据不合法
	ErrInvalidBook = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid book record")

	// ErrDuplicateBookID 目录中存在重复ID
	ErrDuplicateBookID = apperrors.New(apperrors.ErrCodeInvalidParams, "Duplicate book id")

	// ErrInvalidSortKey 不支持的排序方式
	ErrInvalidSortKey = apperrors.New(apperrors.ErrCodeInvalidParams, "Unsupported sort key")

	// ErrInvalidFormat 不支持的装帧形式
	ErrInvalidFormat = apperrors.New(apperrors.ErrCodeInvalidParams, "Unsupported format")
)
