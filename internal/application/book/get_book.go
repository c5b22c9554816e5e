package book

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/review"
)

// GetBookUseCase 图书详情用例
// 详情附带本进程内提交的评论统计(目录自带的ReviewCount/Rating是初始数据)
type GetBookUseCase struct {
	catalog *book.Catalog
	reviews *review.Store
}

// NewGetBookUseCase 创建详情用例
func NewGetBookUseCase(catalog *book.Catalog, reviews *review.Store) *GetBookUseCase {
	return &GetBookUseCase{catalog: catalog, reviews: reviews}
}

// BookDetail 详情DTO
type BookDetail struct {
	BookListItem
	Description   string         `json:"description"`
	ISBN          string         `json:"isbn"`
	Stock         int            `json:"stock"`
	PublishedDate string         `json:"published_date"`
	Reviews       review.Summary `json:"reviews"`
}

// Execute 按ID查询,不存在时返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (*BookDetail, error) {
	b, err := uc.catalog.ByID(id)
	if err != nil {
		return nil, err
	}

	return &BookDetail{
		BookListItem:  NewBookListItem(&b),
		Description:   b.Description,
		ISBN:          b.ISBN,
		Stock:         b.Stock,
		PublishedDate: b.PublishedDate,
		Reviews:       uc.reviews.Summary(b.ID),
	}, nil
}

// ListCategoriesUseCase 分类列表用例
type ListCategoriesUseCase struct {
	catalog *book.Catalog
}

// NewListCategoriesUseCase 创建分类列表用例
func NewListCategoriesUseCase(catalog *book.Catalog) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{catalog: catalog}
}

// CategoryItem 分类及图书数量
type CategoryItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Execute 按首次出现顺序返回分类
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]CategoryItem, error) {
	names := uc.catalog.Categories()
	items := make([]CategoryItem, len(names))
	for i, name := range names {
		items[i] = CategoryItem{Name: name, Count: len(uc.catalog.ByCategory(name))}
	}
	return items, nil
}
