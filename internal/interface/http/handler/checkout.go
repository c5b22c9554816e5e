package handler

import (
	"github.com/gin-gonic/gin"

	appcheckout "github.com/xiebiao/storefront/internal/application/checkout"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/response"
)

// CheckoutHandler 结算HTTP处理器
// 需要登录（预填默认地址）和会话（购物车与流程按会话保存）
type CheckoutHandler struct {
	checkoutUseCase *appcheckout.CheckoutUseCase
}

// NewCheckoutHandler 创建结算处理器
func NewCheckoutHandler(checkoutUseCase *appcheckout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUseCase: checkoutUseCase}
}

// Enter 进入结算
// @Summary      进入结算
// @Description  购物车为空时拒绝；已有流程时原样返回
// @Tags         结算
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcheckout.FlowView}
// @Failure      200 {object} response.Response "40003 购物车为空"
// @Router       /api/v1/checkout [post]
func (h *CheckoutHandler) Enter(c *gin.Context) {
	result, err := h.checkoutUseCase.Enter(c.Request.Context(), middleware.GetSessionID(c), middleware.MustGetIdentity(c).Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 当前结算流程
// @Summary      当前结算流程
// @Tags         结算
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcheckout.FlowView}
// @Failure      200 {object} response.Response "40006 未进入结算"
// @Router       /api/v1/checkout [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	result, err := h.checkoutUseCase.Get(c.Request.Context(), middleware.GetSessionID(c), middleware.MustGetIdentity(c).Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SubmitAddress 提交收货地址
// @Summary      提交收货地址
// @Description  Address → Payment，缺失字段逐个提示
// @Tags         结算
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddressRequest true "收货地址"
// @Success      200 {object} response.Response{data=appcheckout.FlowView}
// @Failure      200 {object} response.Response "40900 缺少必填字段 / 40002 步骤不允许"
// @Router       /api/v1/checkout/address [post]
func (h *CheckoutHandler) SubmitAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.checkoutUseCase.SubmitAddress(c.Request.Context(), middleware.GetSessionID(c), middleware.MustGetIdentity(c).Email, req.ToDetails())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SubmitPayment 提交支付信息
// @Summary      提交支付信息
// @Description  Payment → Summary，只保留卡号后四位
// @Tags         结算
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PaymentRequest true "支付信息"
// @Success      200 {object} response.Response{data=appcheckout.FlowView}
// @Router       /api/v1/checkout/payment [post]
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.checkoutUseCase.SubmitPayment(c.Request.Context(), middleware.GetSessionID(c), middleware.MustGetIdentity(c).Email, appcheckout.PaymentRequest{
		Type:       req.Type,
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
		NameOnCard: req.NameOnCard,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// PlaceOrder 提交订单
// @Summary      提交订单
// @Description  Summary → Confirmation，生成订单号并清空购物车
// @Tags         结算
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcheckout.FlowView}
// @Failure      200 {object} response.Response "40002 步骤不允许 / 40003 购物车为空"
// @Router       /api/v1/checkout/place-order [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	result, err := h.checkoutUseCase.PlaceOrder(c.Request.Context(), middleware.GetSessionID(c), middleware.MustGetIdentity(c).Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Back 后退一步
// @Summary      后退一步
// @Description  Address和Confirmation不能后退
// @Tags         结算
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcheckout.FlowView}
// @Router       /api/v1/checkout/back [post]
func (h *CheckoutHandler) Back(c *gin.Context) {
	result, err := h.checkoutUseCase.Back(c.Request.Context(), middleware.GetSessionID(c), middleware.MustGetIdentity(c).Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Finish 结束结算（继续购物）
// @Summary      结束结算
// @Tags         结算
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/checkout [delete]
func (h *CheckoutHandler) Finish(c *gin.Context) {
	if err := h.checkoutUseCase.Finish(c.Request.Context(), middleware.GetSessionID(c), middleware.MustGetIdentity(c).Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
