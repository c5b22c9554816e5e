package book

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/book"
)

const (
	defaultPageSize = 12 // 与前端分页组件一致
	maxPageSize     = 100
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 目录在内存中,过滤排序交给domain/book.Apply(纯函数)
// 2. 用例只负责分页和DTO转换
// 3. 列表不返回description字段(减少数据传输量)
type ListBooksUseCase struct {
	catalog *book.Catalog
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(catalog *book.Catalog) *ListBooksUseCase {
	return &ListBooksUseCase{catalog: catalog}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page     int        // 页码(从1开始)
	PageSize int        // 每页数量
	Query    book.Query // 搜索、过滤、排序条件
}

// BookListItem 列表项DTO(不含description)
type BookListItem struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Author         string      `json:"author"`
	Price          int64       `json:"price"`                // 原价(分)
	SalePrice      *int64      `json:"sale_price,omitempty"` // 促销价(分)
	EffectivePrice int64       `json:"effective_price"`      // 实际售价(分)
	Category       string      `json:"category"`
	CoverImage     string      `json:"cover_image"`
	Rating         float64     `json:"rating"`
	ReviewCount    int         `json:"review_count"`
	InStock        bool        `json:"in_stock"`
	Format         book.Format `json:"format"`
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List       []BookListItem `json:"list"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// Execute 执行列表查询用例
// 1. 参数默认值处理(page默认1, pageSize默认12)
// 2. 参数范围限制(pageSize最大100)
// 3. 页码超出范围时返回空列表,Total仍是过滤后的总数
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}

	matched := book.Apply(uc.catalog.All(), req.Query)
	total := len(matched)

	totalPages := (total + req.PageSize - 1) / req.PageSize

	// 先比较页码再相乘,超大页码不会溢出
	page := []book.Book{}
	if req.Page <= totalPages {
		start := (req.Page - 1) * req.PageSize
		page = matched[start:min(start+req.PageSize, total)]
	}

	items := make([]BookListItem, len(page))
	for i := range page {
		items[i] = NewBookListItem(&page[i])
	}

	return &ListBooksResponse{
		List:       items,
		Total:      int64(total),
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}

// NewBookListItem 图书 → 列表项DTO
func NewBookListItem(b *book.Book) BookListItem {
	return BookListItem{
		ID:             b.ID,
		Title:          b.Title,
		Author:         b.Author,
		Price:          b.Price,
		SalePrice:      b.SalePrice,
		EffectivePrice: b.EffectivePrice(),
		Category:       b.Category,
		CoverImage:     b.CoverImage,
		Rating:         b.Rating,
		ReviewCount:    b.ReviewCount,
		InStock:        b.Available(),
		Format:         b.Format,
	}
}
