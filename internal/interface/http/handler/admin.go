package handler

import (
	"github.com/gin-gonic/gin"

	appadmin "github.com/xiebiao/storefront/internal/application/admin"
	"github.com/xiebiao/storefront/pkg/response"
)

// AdminHandler 后台HTTP处理器（需要admin角色）
type AdminHandler struct {
	overviewUseCase *appadmin.OverviewUseCase
}

// NewAdminHandler 创建后台处理器
func NewAdminHandler(overviewUseCase *appadmin.OverviewUseCase) *AdminHandler {
	return &AdminHandler{overviewUseCase: overviewUseCase}
}

// Overview 后台概览
// @Summary      后台概览
// @Description  目录规模、分类、缺货数量、本进程下单数
// @Tags         后台
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appadmin.Overview}
// @Failure      200 {object} response.Response "40104 无权限"
// @Router       /api/v1/admin/overview [get]
func (h *AdminHandler) Overview(c *gin.Context) {
	result, err := h.overviewUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
