package handler

import (
	"github.com/gin-gonic/gin"

	appaddress "github.com/xiebiao/storefront/internal/application/address"
	appuser "github.com/xiebiao/storefront/internal/application/user"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/response"
)

// AccountHandler 账户HTTP处理器（资料与地址簿），全部需要登录
// 地址簿按账户邮箱归属
type AccountHandler struct {
	profileUseCase *appuser.ProfileUseCase
	addressUseCase *appaddress.AddressUseCase
}

// NewAccountHandler 创建账户处理器
func NewAccountHandler(profileUseCase *appuser.ProfileUseCase, addressUseCase *appaddress.AddressUseCase) *AccountHandler {
	return &AccountHandler{
		profileUseCase: profileUseCase,
		addressUseCase: addressUseCase,
	}
}

// GetProfile 账户资料
// @Summary      账户资料
// @Tags         账户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appuser.UserInfo}
// @Router       /api/v1/account/profile [get]
func (h *AccountHandler) GetProfile(c *gin.Context) {
	result, err := h.profileUseCase.Get(c.Request.Context(), middleware.MustGetIdentity(c).Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateProfile 更新资料
// @Summary      更新资料
// @Description  只修改非空字段
// @Tags         账户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateProfileRequest true "资料"
// @Success      200 {object} response.Response{data=appuser.UserInfo}
// @Router       /api/v1/account/profile [put]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.profileUseCase.Update(c.Request.Context(), middleware.MustGetIdentity(c).Email, appuser.UpdateProfileRequest{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListAddresses 地址列表
// @Summary      地址列表
// @Tags         地址簿
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]appaddress.AddressView}
// @Router       /api/v1/account/addresses [get]
func (h *AccountHandler) ListAddresses(c *gin.Context) {
	result, err := h.addressUseCase.List(c.Request.Context(), middleware.MustGetIdentity(c).Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddAddress 新增地址
// @Summary      新增地址
// @Description  第一个地址自动成为默认地址
// @Tags         地址簿
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SaveAddressRequest true "地址"
// @Success      200 {object} response.Response{data=appaddress.AddressView}
// @Failure      200 {object} response.Response "40900 缺少必填字段"
// @Router       /api/v1/account/addresses [post]
func (h *AccountHandler) AddAddress(c *gin.Context) {
	var req dto.SaveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.addressUseCase.Add(c.Request.Context(), middleware.MustGetIdentity(c).Email, toSaveAddress(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// EditAddress 修改地址
// @Summary      修改地址
// @Tags         地址簿
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                  true "地址ID"
// @Param        request body dto.SaveAddressRequest  true "地址"
// @Success      200 {object} response.Response{data=appaddress.AddressView}
// @Failure      200 {object} response.Response "40404 地址不存在"
// @Router       /api/v1/account/addresses/{id} [put]
func (h *AccountHandler) EditAddress(c *gin.Context) {
	var req dto.SaveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.addressUseCase.Edit(c.Request.Context(), middleware.MustGetIdentity(c).Email, c.Param("id"), toSaveAddress(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteAddress 删除地址
// @Summary      删除地址
// @Description  删除默认地址时，剩余的第一个地址成为默认地址
// @Tags         地址簿
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "地址ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/account/addresses/{id} [delete]
func (h *AccountHandler) DeleteAddress(c *gin.Context) {
	if err := h.addressUseCase.Delete(c.Request.Context(), middleware.MustGetIdentity(c).Email, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// SetDefaultAddress 设为默认地址
// @Summary      设为默认地址
// @Tags         地址簿
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "地址ID"
// @Success      200 {object} response.Response{data=appaddress.AddressView}
// @Router       /api/v1/account/addresses/{id}/default [post]
func (h *AccountHandler) SetDefaultAddress(c *gin.Context) {
	result, err := h.addressUseCase.SetDefault(c.Request.Context(), middleware.MustGetIdentity(c).Email, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func toSaveAddress(req dto.SaveAddressRequest) appaddress.SaveAddressRequest {
	return appaddress.SaveAddressRequest{
		Label:     req.Label,
		Phone:     req.Phone,
		Details:   req.ToDetails(),
		IsDefault: req.IsDefault,
	}
}
