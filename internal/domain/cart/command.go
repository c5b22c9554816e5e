package cart

import (
	"github.com/xiebiao/storefront/internal/domain/book"
)

// Command 购物车变更命令
// 所有变更都通过Store.Dispatch进入,命令类型是封闭的(apply未导出)
type Command interface {
	// Op 命令名,用于日志和指标
	Op() string
	apply(c *cart)
}

// AddToCart 已存在则累加数量,否则新增一行;Quantity <= 0 时不做任何事
type AddToCart struct {
	Book     book.Book
	Quantity int
}

func (AddToCart) Op() string { return "add" }

func (cmd AddToCart) apply(c *cart) {
	c.add(cmd.Book.ID, SnapshotOf(cmd.Book), cmd.Quantity)
}

// UpdateQuantity 设置数量;Quantity <= 0 等同于RemoveFromCart;不存在时不做任何事
type UpdateQuantity struct {
	BookID   string
	Quantity int
}

func (UpdateQuantity) Op() string { return "update" }

func (cmd UpdateQuantity) apply(c *cart) {
	c.set(cmd.BookID, cmd.Quantity)
}

// RemoveFromCart 删除一行,不存在时不是错误
type RemoveFromCart struct {
	BookID string
}

func (RemoveFromCart) Op() string { return "remove" }

func (cmd RemoveFromCart) apply(c *cart) {
	c.remove(cmd.BookID)
}

// ClearCart 清空购物车
type ClearCart struct{}

func (ClearCart) Op() string { return "clear" }

func (ClearCart) apply(c *cart) {
	c.clear()
}

// ReturnItems 把取出的行加回购物车(下单失败时的补偿)
// 与AddToCart相同的合并规则,期间新加入的商品不受影响
type ReturnItems struct {
	Items []LineItem
}

func (ReturnItems) Op() string { return "return" }

func (cmd ReturnItems) apply(c *cart) {
	for _, li := range cmd.Items {
		c.add(li.BookID, li.Book, li.Quantity)
	}
}
