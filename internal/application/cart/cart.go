package cart

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/checkout"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// ItemView 购物车行DTO
type ItemView struct {
	BookID         string      `json:"book_id"`
	Title          string      `json:"title"`
	Author         string      `json:"author"`
	Format         book.Format `json:"format"`
	CoverImage     string      `json:"cover_image"`
	Price          int64       `json:"price"`
	SalePrice      *int64      `json:"sale_price,omitempty"`
	EffectivePrice int64       `json:"effective_price"`
	Quantity       int         `json:"quantity"`
	LineTotal      int64       `json:"line_total"`
}

// CartView 购物车DTO,附带按当前小计估算的运费和税费(空购物车全为0)
type CartView struct {
	Items     []ItemView      `json:"items"`
	ItemCount int             `json:"item_count"`
	Totals    checkout.Totals `json:"totals"`
}

// NewCartView 快照 → DTO
func NewCartView(c cart.Cart, pricing checkout.Pricing) *CartView {
	items := make([]ItemView, len(c.Items))
	for i, li := range c.Items {
		items[i] = ItemView{
			BookID:         li.BookID,
			Title:          li.Book.Title,
			Author:         li.Book.Author,
			Format:         li.Book.Format,
			CoverImage:     li.Book.CoverImage,
			Price:          li.Book.Price,
			SalePrice:      li.Book.SalePrice,
			EffectivePrice: li.Book.EffectivePrice(),
			Quantity:       li.Quantity,
			LineTotal:      li.LineTotal(),
		}
	}
	view := &CartView{Items: items, ItemCount: c.ItemCount()}
	if !c.IsEmpty() {
		view.Totals = pricing.Compute(c.Subtotal())
	}
	return view
}

// GetCartUseCase 查看购物车
type GetCartUseCase struct {
	store   *cart.Store
	pricing checkout.Pricing
}

// NewGetCartUseCase 创建查看购物车用例
func NewGetCartUseCase(store *cart.Store, pricing checkout.Pricing) *GetCartUseCase {
	return &GetCartUseCase{store: store, pricing: pricing}
}

// Execute 当前会话的购物车
func (uc *GetCartUseCase) Execute(ctx context.Context, sessionID string) (*CartView, error) {
	return NewCartView(uc.store.Snapshot(sessionID), uc.pricing), nil
}

// UpdateCartUseCase 购物车变更(加入、修改数量、删除、清空)
// 设计说明:
// 1. 图书ID在这里对照目录校验,domain/cart只接受已确认存在的图书
// 2. 缺货图书不能加入(前端按钮置灰,服务端同样拒绝)
// 3. 每次变更记录指标
type UpdateCartUseCase struct {
	catalog *book.Catalog
	store   *cart.Store
	pricing checkout.Pricing
	logger  *zap.Logger
}

// NewUpdateCartUseCase 创建购物车变更用例
func NewUpdateCartUseCase(catalog *book.Catalog, store *cart.Store, pricing checkout.Pricing, logger *zap.Logger) *UpdateCartUseCase {
	metrics.InitMetrics()
	return &UpdateCartUseCase{catalog: catalog, store: store, pricing: pricing, logger: logger}
}

// Add 加入购物车,已存在时累加数量
func (uc *UpdateCartUseCase) Add(ctx context.Context, sessionID, bookID string, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, cart.ErrInvalidQuantity
	}
	b, err := uc.catalog.ByID(bookID)
	if err != nil {
		return nil, err
	}
	if !b.Available() {
		return nil, cart.ErrOutOfStock
	}
	return uc.dispatch(sessionID, cart.AddToCart{Book: b, Quantity: quantity}), nil
}

// UpdateQuantity 修改数量,quantity <= 0 时删除该行
func (uc *UpdateCartUseCase) UpdateQuantity(ctx context.Context, sessionID, bookID string, quantity int) (*CartView, error) {
	return uc.dispatch(sessionID, cart.UpdateQuantity{BookID: bookID, Quantity: quantity}), nil
}

// Remove 删除一行,不存在时不是错误
func (uc *UpdateCartUseCase) Remove(ctx context.Context, sessionID, bookID string) (*CartView, error) {
	return uc.dispatch(sessionID, cart.RemoveFromCart{BookID: bookID}), nil
}

// Clear 清空购物车
func (uc *UpdateCartUseCase) Clear(ctx context.Context, sessionID string) (*CartView, error) {
	return uc.dispatch(sessionID, cart.ClearCart{}), nil
}

func (uc *UpdateCartUseCase) dispatch(sessionID string, cmd cart.Command) *CartView {
	c := uc.store.Dispatch(sessionID, cmd)
	metrics.IncCounterVec(metrics.CartMutationsTotal, map[string]string{"op": cmd.Op()})
	uc.logger.Debug("cart updated",
		zap.String("session_id", sessionID),
		zap.String("op", cmd.Op()),
		zap.Int("items", len(c.Items)),
	)
	return NewCartView(c, uc.pricing)
}
