package cart

import (
	"time"

	"github.com/xiebiao/storefront/internal/domain/book"
)

// Snapshot 加入购物车时的图书快照
// 之后目录数据变化不影响已加入的商品(目录本身不可变,这里主要用于展示和计价)
type Snapshot struct {
	Title      string      `json:"title"`
	Author     string      `json:"author"`
	Price      int64       `json:"price"`
	SalePrice  *int64      `json:"sale_price,omitempty"`
	Format     book.Format `json:"format"`
	CoverImage string      `json:"cover_image"`
}

// SnapshotOf 从图书生成快照
func SnapshotOf(b book.Book) Snapshot {
	b = b.Clone()
	return Snapshot{
		Title:      b.Title,
		Author:     b.Author,
		Price:      b.Price,
		SalePrice:  b.SalePrice,
		Format:     b.Format,
		CoverImage: b.CoverImage,
	}
}

// EffectivePrice 与book.Book相同的规则:促销价低于原价时取促销价
func (s Snapshot) EffectivePrice() int64 {
	if s.SalePrice != nil && *s.SalePrice < s.Price {
		return *s.SalePrice
	}
	return s.Price
}

func (s Snapshot) clone() Snapshot {
	if s.SalePrice != nil {
		sp := *s.SalePrice
		s.SalePrice = &sp
	}
	return s
}

// LineItem 购物车行
// 不变量:同一BookID最多一行,Quantity >= 1
type LineItem struct {
	BookID   string   `json:"book_id"`
	Quantity int      `json:"quantity"`
	Book     Snapshot `json:"book"`
}

// LineTotal 行小计(分)
func (li LineItem) LineTotal() int64 {
	return li.Book.EffectivePrice() * int64(li.Quantity)
}

// Cart 购物车快照(只读副本),行按首次加入顺序排列
type Cart struct {
	Items []LineItem `json:"items"`
}

// Subtotal Σ 实际售价 × 数量
func (c Cart) Subtotal() int64 {
	var total int64
	for _, li := range c.Items {
		total += li.LineTotal()
	}
	return total
}

// ItemCount Σ 数量
func (c Cart) ItemCount() int {
	n := 0
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

// IsEmpty 是否为空
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find 查找某本书的行
func (c Cart) Find(bookID string) (LineItem, bool) {
	for _, li := range c.Items {
		if li.BookID == bookID {
			return li, true
		}
	}
	return LineItem{}, false
}

// cart 单个会话的可变购物车,只在Store的锁内访问
type cart struct {
	order   []string
	items   map[string]*LineItem
	touched time.Time // 最后一次变更
}

func newCart() *cart {
	return &cart{items: make(map[string]*LineItem)}
}

func (c *cart) add(bookID string, snap Snapshot, qty int) {
	if qty <= 0 {
		return
	}
	if li, ok := c.items[bookID]; ok {
		li.Quantity += qty
		return
	}
	c.items[bookID] = &LineItem{BookID: bookID, Quantity: qty, Book: snap.clone()}
	c.order = append(c.order, bookID)
}

func (c *cart) set(bookID string, qty int) {
	li, ok := c.items[bookID]
	if !ok {
		return
	}
	if qty <= 0 {
		c.remove(bookID)
		return
	}
	li.Quantity = qty
}

func (c *cart) remove(bookID string) {
	if _, ok := c.items[bookID]; !ok {
		return
	}
	delete(c.items, bookID)
	for i, id := range c.order {
		if id == bookID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *cart) clear() {
	c.order = nil
	c.items = make(map[string]*LineItem)
}

func (c *cart) snapshot() Cart {
	out := Cart{Items: make([]LineItem, 0, len(c.order))}
	for _, id := range c.order {
		li := *c.items[id]
		li.Book = li.Book.clone()
		out.Items = append(out.Items, li)
	}
	return out
}
