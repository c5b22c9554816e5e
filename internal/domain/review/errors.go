package review

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// ErrInvalidReview 评论输入不合法(字段级提示见Fields)
var ErrInvalidReview = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid review")
