package book

import (
	"strings"
)

// Format 图书装帧形式
type Format string

const (
	FormatPaperback Format = "Paperback"
	FormatHardcover Format = "Hardcover"
	FormatEBook     Format = "eBook"
)

// ParseFormat 解析装帧形式（大小写不敏感）
func ParseFormat(s string) (Format, bool) {
	for _, f := range []Format{FormatPaperback, FormatHardcover, FormatEBook} {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, true
		}
	}
	return "", false
}

// Book 图书实体
// DDD设计说明:
// 1. 目录加载后不可变,所有查询返回副本(见Clone)
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. SalePrice是可选字段,用指针显式表达"没有促销价"
type Book struct {
	ID            string
	Title         string
	Author        string
	Description   string
	ISBN          string
	CoverImage    string
	Price         int64  // 原价(分)
	SalePrice     *int64 // 促销价(分),nil表示无促销
	Category      string
	InStock       bool
	Rating        float64 // 0-5
	ReviewCount   int
	Stock         int
	Format        Format
	PublishedDate string // YYYY-MM-DD
}

// EffectivePrice 实际售价
// 规则:有促销价且低于原价时取促销价,否则取原价
func (b *Book) EffectivePrice() int64 {
	if b.SalePrice != nil && *b.SalePrice < b.Price {
		return *b.SalePrice
	}
	return b.Price
}

// OnSale 是否处于促销中
func (b *Book) OnSale() bool {
	return b.EffectivePrice() < b.Price
}

// Available 是否可以加入购物车
func (b *Book) Available() bool {
	return b.InStock && b.Stock > 0
}

// Clone 深拷贝(SalePrice是指针,浅拷贝会共享)
func (b *Book) Clone() Book {
	cp := *b
	if b.SalePrice != nil {
		sp := *b.SalePrice
		cp.SalePrice = &sp
	}
	return cp
}

// Validate 校验目录数据,加载时拒绝不合法的图书
func (b *Book) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(b.ID) == "" {
		fields["id"] = "id is required"
	}
	if strings.TrimSpace(b.Title) == "" {
		fields["title"] = "title is required"
	}
	if b.Price < 0 {
		fields["price"] = "price must not be negative"
	}
	if b.SalePrice != nil && (*b.SalePrice < 0 || *b.SalePrice > b.Price) {
		fields["salePrice"] = "salePrice must be between 0 and price"
	}
	if b.Rating < 0 || b.Rating > 5 {
		fields["rating"] = "rating must be between 0 and 5"
	}
	if b.Stock < 0 {
		fields["stock"] = "stock must not be negative"
	}
	if b.ReviewCount < 0 {
		fields["reviewCount"] = "reviewCount must not be negative"
	}
	if _, ok := ParseFormat(string(b.Format)); !ok {
		fields["format"] = "format must be Paperback, Hardcover or eBook"
	}

	if len(fields) > 0 {
		return ErrInvalidBook.WithFields(fields)
	}
	return nil
}

// Int64Ptr 辅助函数,构造SalePrice
func Int64Ptr(v int64) *int64 {
	return &v
}
