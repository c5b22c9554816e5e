package dto

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/storefront/internal/domain/book"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// ListBooksQuery HTTP图书列表查询参数
// 价格参数单位为美元(如 min_price=10.50),转换为分后按实际售价比较
type ListBooksQuery struct {
	Q         string `form:"q" binding:"omitempty,max=100" example:"gatsby"`
	Category  string `form:"category" binding:"omitempty,max=50" example:"Fiction"`
	MinPrice  string `form:"min_price" example:"10"`
	MaxPrice  string `form:"max_price" example:"30.50"`
	MinRating string `form:"min_rating" example:"4"`
	InStock   bool   `form:"in_stock" example:"true"`
	Format    string `form:"format" example:"Paperback"`
	Sort      string `form:"sort" example:"price-asc"`
	Page      int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"12"`
}

// ToQuery 转换为领域查询条件,非法参数返回带字段提示的校验错误
func (q *ListBooksQuery) ToQuery() (book.Query, error) {
	fields := make(map[string]string)
	out := book.Query{
		SearchText:  q.Q,
		Category:    q.Category,
		InStockOnly: q.InStock,
	}

	if v, ok := parseDollars(q.MinPrice); ok {
		out.MinPrice = v
	} else {
		fields["min_price"] = "min_price must be an amount between 0 and 1000000000"
	}
	if v, ok := parseDollars(q.MaxPrice); ok {
		out.MaxPrice = v
	} else {
		fields["max_price"] = "max_price must be an amount between 0 and 1000000000"
	}
	if out.MinPrice != nil && out.MaxPrice != nil && *out.MinPrice > *out.MaxPrice {
		fields["max_price"] = "max_price must not be less than min_price"
	}

	if q.MinRating != "" {
		r, err := decimal.NewFromString(q.MinRating)
		if err != nil || r.IsNegative() || r.GreaterThan(decimal.NewFromInt(5)) {
			fields["min_rating"] = "min_rating must be between 0 and 5"
		} else {
			f := r.InexactFloat64()
			out.MinRating = &f
		}
	}

	if q.Format != "" {
		f, ok := book.ParseFormat(q.Format)
		if !ok {
			fields["format"] = "format must be Paperback, Hardcover or eBook"
		}
		out.Format = f
	}

	sortKey, err := book.ParseSortKey(q.Sort)
	if err != nil {
		fields["sort"] = "sort must be one of featured, title, price-asc, price-desc, rating-desc"
	}
	out.SortKey = sortKey

	if len(fields) > 0 {
		return book.Query{}, apperrors.Validation("Invalid query parameters", fields)
	}
	return out, nil
}

// maxPriceDollars 价格过滤上限,超出时转换为分会溢出int64
var maxPriceDollars = decimal.NewFromInt(1_000_000_000)

// parseDollars 美元字符串转分(四舍五入),空串表示不限制
func parseDollars(s string) (*int64, bool) {
	if s == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || d.GreaterThan(maxPriceDollars) {
		return nil, false
	}
	cents := d.Shift(2).Round(0).IntPart()
	return &cents, true
}

// AddReviewRequest HTTP发表评论请求
// 评分范围和评论内容由应用层校验(返回字段级提示)
type AddReviewRequest struct {
	Rating  int    `json:"rating" example:"5"`
	Comment string `json:"comment" binding:"max=2000" example:"A timeless classic."`
}
