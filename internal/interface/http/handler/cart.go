package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/storefront/internal/application/cart"
	appwishlist "github.com/xiebiao/storefront/internal/application/wishlist"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/response"
)

// CartHandler 购物车与收藏HTTP处理器
// 两者都按会话隔离，不要求登录
type CartHandler struct {
	getCartUseCase    *appcart.GetCartUseCase
	updateCartUseCase *appcart.UpdateCartUseCase
	wishlistUseCase   *appwishlist.WishlistUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	getCartUseCase *appcart.GetCartUseCase,
	updateCartUseCase *appcart.UpdateCartUseCase,
	wishlistUseCase *appwishlist.WishlistUseCase,
) *CartHandler {
	return &CartHandler{
		getCartUseCase:    getCartUseCase,
		updateCartUseCase: updateCartUseCase,
		wishlistUseCase:   wishlistUseCase,
	}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Description  包含小计、运费、税费和总额（分）
// @Tags         购物车
// @Produce      json
// @Param        X-Session-ID header string false "会话ID（也可使用Cookie）"
// @Success      200 {object} response.Response{data=appcart.CartView}
// @Router       /api/v1/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	result, err := h.getCartUseCase.Execute(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  已存在时累加数量；缺货图书不能加入
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        request body dto.AddToCartRequest true "图书与数量"
// @Success      200 {object} response.Response{data=appcart.CartView}
// @Failure      200 {object} response.Response "40001 缺货 / 40402 图书不存在"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	result, err := h.updateCartUseCase.Add(c.Request.Context(), middleware.GetSessionID(c), req.BookID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateItem 修改数量
// @Summary      修改数量
// @Description  数量<=0时删除该行
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        bookId  path string                     true "图书ID"
// @Param        request body dto.UpdateCartItemRequest  true "数量"
// @Success      200 {object} response.Response{data=appcart.CartView}
// @Router       /api/v1/cart/items/{bookId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.updateCartUseCase.UpdateQuantity(c.Request.Context(), middleware.GetSessionID(c), c.Param("bookId"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RemoveItem 删除一行
// @Summary      删除购物车中的图书
// @Tags         购物车
// @Produce      json
// @Param        bookId path string true "图书ID"
// @Success      200 {object} response.Response{data=appcart.CartView}
// @Router       /api/v1/cart/items/{bookId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	result, err := h.updateCartUseCase.Remove(c.Request.Context(), middleware.GetSessionID(c), c.Param("bookId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ClearCart 清空购物车
// @Summary      清空购物车
// @Tags         购物车
// @Produce      json
// @Success      200 {object} response.Response{data=appcart.CartView}
// @Router       /api/v1/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	result, err := h.updateCartUseCase.Clear(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetWishlist 查看收藏
// @Summary      查看收藏
// @Tags         收藏
// @Produce      json
// @Success      200 {object} response.Response{data=appwishlist.WishlistView}
// @Router       /api/v1/wishlist [get]
func (h *CartHandler) GetWishlist(c *gin.Context) {
	result, err := h.wishlistUseCase.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ToggleWishlist 收藏/取消收藏
// @Summary      收藏切换
// @Description  已收藏则取消，否则加入
// @Tags         收藏
// @Produce      json
// @Param        bookId path string true "图书ID"
// @Success      200 {object} response.Response{data=appwishlist.ToggleResult}
// @Router       /api/v1/wishlist/{bookId}/toggle [post]
func (h *CartHandler) ToggleWishlist(c *gin.Context) {
	result, err := h.wishlistUseCase.Toggle(c.Request.Context(), middleware.GetSessionID(c), c.Param("bookId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RemoveWishlist 取消收藏
// @Summary      取消收藏
// @Tags         收藏
// @Produce      json
// @Param        bookId path string true "图书ID"
// @Success      200 {object} response.Response{data=appwishlist.WishlistView}
// @Router       /api/v1/wishlist/{bookId} [delete]
func (h *CartHandler) RemoveWishlist(c *gin.Context) {
	result, err := h.wishlistUseCase.Remove(c.Request.Context(), middleware.GetSessionID(c), c.Param("bookId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
