package checkout

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 结算领域错误定义
var (
	// ErrEmptyCart 购物车为空时不能进入结算
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeEmptyCart, "Your cart is empty")

	// ErrInvalidStep 当前步骤不允许该操作
	ErrInvalidStep = apperrors.New(apperrors.ErrCodeInvalidStep, "This action is not allowed at the current checkout step")

	// ErrCheckoutNotActive 尚未进入结算流程
	ErrCheckoutNotActive = apperrors.New(apperrors.ErrCodeCheckoutNotActive, "Checkout has not been started")

	// ErrInvalidPayment 支付信息不完整
	ErrInvalidPayment = apperrors.New(apperrors.ErrCodeInvalidParams, "Please complete the payment details")
)
