package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/book"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// BookRepository 图书目录的MySQL数据源
// 设计说明:
// 1. 实现domain/book.Source,启动时一次性读出全部图书
// 2. 负责domain实体与GORM模型之间的转换
// 3. 表为空时可写入初始数据(Seed)
type BookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// LoadAll 按插入顺序读取全部图书(目录顺序即featured顺序)
func (r *BookRepository) LoadAll(ctx context.Context) ([]book.Book, error) {
	var models []BookModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to load books")
	}

	books := make([]book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Seed 表为空时写入初始图书,返回写入数量
// 多个实例同时启动时可能并发写入,唯一索引冲突视为已写入
func (r *BookRepository) Seed(ctx context.Context, books []book.Book) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&BookModel{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(err, "failed to count books")
	}
	if count > 0 {
		return 0, nil
	}

	models := make([]BookModel, len(books))
	for i := range books {
		models[i] = toBookModel(&books[i])
	}
	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		if isDuplicateError(err) {
			return 0, nil
		}
		return 0, apperrors.Wrap(err, "failed to seed books")
	}
	return len(models), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) book.Book {
	b := book.Book{
		ID:            m.BookID,
		Title:         m.Title,
		Author:        m.Author,
		Description:   m.Description,
		ISBN:          m.ISBN,
		CoverImage:    m.CoverImage,
		Price:         m.Price,
		Category:      m.Category,
		InStock:       m.InStock,
		Rating:        m.Rating,
		ReviewCount:   m.ReviewCount,
		Stock:         m.Stock,
		Format:        book.Format(m.Format),
		PublishedDate: m.PublishedDate,
	}
	if f, ok := book.ParseFormat(m.Format); ok {
		b.Format = f
	}
	if m.SalePrice != nil {
		b.SalePrice = book.Int64Ptr(*m.SalePrice)
	}
	return b
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) BookModel {
	m := BookModel{
		BookID:        b.ID,
		ISBN:          b.ISBN,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		CoverImage:    b.CoverImage,
		Price:         b.Price,
		Category:      b.Category,
		InStock:       b.InStock,
		Rating:        b.Rating,
		ReviewCount:   b.ReviewCount,
		Stock:         b.Stock,
		Format:        string(b.Format),
		PublishedDate: b.PublishedDate,
	}
	if b.SalePrice != nil {
		m.SalePrice = book.Int64Ptr(*b.SalePrice)
	}
	return m
}
