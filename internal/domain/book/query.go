package book

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey 排序方式
type SortKey string

const (
	SortFeatured   SortKey = "featured" // 保持目录顺序
	SortTitle      SortKey = "title"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
)

// ParseSortKey 解析排序方式,空串视为featured
// "rating"是前端使用的旧值,等价于rating-desc
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortFeatured, nil
	case "rating":
		return SortRatingDesc, nil
	case SortFeatured, SortTitle, SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return k, nil
	default:
		return "", ErrInvalidSortKey.WithFields(map[string]string{"sort": "unsupported sort key " + s})
	}
}

// Query 过滤与排序条件,零值字段表示不过滤
type Query struct {
	SearchText  string
	Category    string
	MinPrice    *int64 // 分,按实际售价比较,闭区间
	MaxPrice    *int64
	MinRating   *float64
	InStockOnly bool
	Format      Format
	SortKey     SortKey
}

// Apply 过滤并排序
// 纯函数:不修改输入,同样的输入总是得到同样的输出。
// 所有条件之间是AND关系;排序是稳定的,并列时保持输入顺序。
func Apply(books []Book, q Query) []Book {
	out := make([]Book, 0, len(books))
	needle := strings.ToLower(strings.TrimSpace(q.SearchText))
	category := strings.TrimSpace(q.Category)

	for i := range books {
		b := &books[i]
		if needle != "" && !matchesText(b, needle) {
			continue
		}
		if category != "" && !strings.EqualFold(b.Category, category) {
			continue
		}
		price := b.EffectivePrice()
		if q.MinPrice != nil && price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && price > *q.MaxPrice {
			continue
		}
		if q.MinRating != nil && b.Rating < *q.MinRating {
			continue
		}
		if q.InStockOnly && !b.Available() {
			continue
		}
		if q.Format != "" && b.Format != q.Format {
			continue
		}
		out = append(out, b.Clone())
	}

	if less := comparator(q.SortKey); less != nil {
		slices.SortStableFunc(out, less)
	}
	return out
}

// matchesText 标题、作者、分类、描述任一包含关键词(needle已转小写)
func matchesText(b *Book, needle string) bool {
	for _, field := range []string{b.Title, b.Author, b.Category, b.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func comparator(key SortKey) func(a, b Book) int {
	switch key {
	case SortTitle:
		return func(a, b Book) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortPriceAsc:
		return func(a, b Book) int {
			return cmp.Compare(a.EffectivePrice(), b.EffectivePrice())
		}
	case SortPriceDesc:
		return func(a, b Book) int {
			return cmp.Compare(b.EffectivePrice(), a.EffectivePrice())
		}
	case SortRatingDesc:
		return func(a, b Book) int {
			return cmp.Compare(b.Rating, a.Rating)
		}
	default:
		return nil
	}
}
