package book

import (
	"context"
	"fmt"
	"strings"
)

// Catalog 图书目录(只读)
// 设计说明:
// 1. 启动时从Source加载一次,之后不再变化,因此读操作无需加锁
// 2. 所有返回值都是副本,调用方修改不会影响目录
type Catalog struct {
	books []Book
	index map[string]int
}

// NewCatalog 校验并构建目录,任一图书不合法或ID重复都会拒绝整个目录
func NewCatalog(books []Book) (*Catalog, error) {
	c := &Catalog{
		books: make([]Book, 0, len(books)),
		index: make(map[string]int, len(books)),
	}
	for i := range books {
		b := books[i].Clone()
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("book #%d (%s): %w", i, b.ID, err)
		}
		if _, dup := c.index[b.ID]; dup {
			return nil, fmt.Errorf("book #%d: %w: %s", i, ErrDuplicateBookID, b.ID)
		}
		c.index[b.ID] = len(c.books)
		c.books = append(c.books, b)
	}
	return c, nil
}

// LoadCatalog 从数据源加载目录
func LoadCatalog(ctx context.Context, src Source) (*Catalog, error) {
	books, err := src.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(books)
}

// All 全部图书,保持目录顺序
func (c *Catalog) All() []Book {
	return cloneAll(c.books)
}

// ByID 按ID查询
func (c *Catalog) ByID(id string) (Book, error) {
	i, ok := c.index[id]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return c.books[i].Clone(), nil
}

// ByCategory 按分类查询(大小写不敏感),保持目录顺序
func (c *Catalog) ByCategory(category string) []Book {
	category = strings.TrimSpace(category)
	out := make([]Book, 0)
	for i := range c.books {
		if strings.EqualFold(c.books[i].Category, category) {
			out = append(out, c.books[i].Clone())
		}
	}
	return out
}

// Categories 去重后的分类列表,按首次出现顺序
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range c.books {
		key := strings.ToLower(c.books[i].Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c.books[i].Category)
	}
	return out
}

// Len 图书总数
func (c *Catalog) Len() int {
	return len(c.books)
}

// OutOfStockCount 不可售图书数量
func (c *Catalog) OutOfStockCount() int {
	n := 0
	for i := range c.books {
		if !c.books[i].Available() {
			n++
		}
	}
	return n
}

func cloneAll(books []Book) []Book {
	out := make([]Book, len(books))
	for i := range books {
		out[i] = books[i].Clone()
	}
	return out
}
