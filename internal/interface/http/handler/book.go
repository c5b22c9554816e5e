package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/storefront/internal/application/book"
	appreview "github.com/xiebiao/storefront/internal/application/review"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/response"
)

// BookHandler 图书HTTP处理器（目录、分类、评论）
type BookHandler struct {
	listBooksUseCase      *appbook.ListBooksUseCase
	getBookUseCase        *appbook.GetBookUseCase
	listCategoriesUseCase *appbook.ListCategoriesUseCase
	reviewUseCase         *appreview.ReviewUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	listCategoriesUseCase *appbook.ListCategoriesUseCase,
	reviewUseCase *appreview.ReviewUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:      listBooksUseCase,
		getBookUseCase:        getBookUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
		reviewUseCase:         reviewUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  关键词搜索、分类/价格/评分/库存/装帧过滤、排序与分页
// @Tags         图书
// @Produce      json
// @Param        q          query string false "关键词（标题、作者、分类、简介）"
// @Param        category   query string false "分类"
// @Param        min_price  query string false "最低价（美元）"
// @Param        max_price  query string false "最高价（美元）"
// @Param        min_rating query number false "最低评分"
// @Param        in_stock   query bool   false "只看有货"
// @Param        format     query string false "装帧" Enums(Paperback, Hardcover, eBook)
// @Param        sort       query string false "排序" Enums(featured, title, price-asc, price-desc, rating-desc)
// @Param        page       query int    false "页码" default(1)
// @Param        page_size  query int    false "每页数量" default(12)
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Failure      200 {object} response.Response "40900 参数错误"
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	h.list(c, &req)
}

// CategoryBooks 分类下的图书
// @Summary      分类图书
// @Description  与图书列表相同的过滤排序参数，分类取自路径
// @Tags         图书
// @Produce      json
// @Param        name path string true "分类名（大小写不敏感）"
// @Param        sort query string false "排序"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Router       /api/v1/categories/{name}/books [get]
func (h *BookHandler) CategoryBooks(c *gin.Context) {
	var req dto.ListBooksQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	req.Category = c.Param("name")
	h.list(c, &req)
}

func (h *BookHandler) list(c *gin.Context, req *dto.ListBooksQuery) {
	query, err := req.ToQuery()
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Query:    query,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  包含简介、库存与评论统计
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookDetail}
// @Failure      200 {object} response.Response "40402 图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.getBookUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListCategories 分类列表
// @Summary      分类列表
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]appbook.CategoryItem}
// @Router       /api/v1/categories [get]
func (h *BookHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListReviews 图书评论
// @Summary      图书评论
// @Description  按发表顺序返回，附带数量和平均分
// @Tags         评论
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=appreview.ListReviewsResponse}
// @Router       /api/v1/books/{id}/reviews [get]
func (h *BookHandler) ListReviews(c *gin.Context) {
	result, err := h.reviewUseCase.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddReview 发表评论
// @Summary      发表评论
// @Description  评分1-5，评论不能为空（需要登录）
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                true "图书ID"
// @Param        request body dto.AddReviewRequest  true "评论内容"
// @Success      200 {object} response.Response{data=appreview.ReviewView}
// @Failure      200 {object} response.Response "40900 评分或内容不合法"
// @Router       /api/v1/books/{id}/reviews [post]
func (h *BookHandler) AddReview(c *gin.Context) {
	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id := middleware.MustGetIdentity(c)
	userName := id.Name
	if userName == "" {
		userName = id.Email
	}

	result, err := h.reviewUseCase.Add(c.Request.Context(), appreview.AddReviewRequest{
		BookID:   c.Param("id"),
		UserID:   id.UserID,
		UserName: userName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
