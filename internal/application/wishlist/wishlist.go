package wishlist

import (
	"context"

	appbook "github.com/xiebiao/storefront/internal/application/book"
	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/wishlist"
)

// WishlistView 收藏夹DTO,列表项与图书列表共用结构
type WishlistView struct {
	Items []appbook.BookListItem `json:"items"`
}

// ToggleResult 切换结果
type ToggleResult struct {
	BookID     string `json:"book_id"`
	InWishlist bool   `json:"in_wishlist"`
}

// WishlistUseCase 收藏夹用例(查看、切换、移除)
type WishlistUseCase struct {
	catalog *book.Catalog
	store   *wishlist.Store
}

// NewWishlistUseCase 创建收藏夹用例
func NewWishlistUseCase(catalog *book.Catalog, store *wishlist.Store) *WishlistUseCase {
	return &WishlistUseCase{catalog: catalog, store: store}
}

// Get 当前会话的收藏夹
func (uc *WishlistUseCase) Get(ctx context.Context, sessionID string) (*WishlistView, error) {
	entries := uc.store.Items(sessionID)
	items := make([]appbook.BookListItem, len(entries))
	for i := range entries {
		items[i] = appbook.NewBookListItem(&entries[i].Book)
	}
	return &WishlistView{Items: items}, nil
}

// Toggle 加入或移除,图书必须存在于目录中
func (uc *WishlistUseCase) Toggle(ctx context.Context, sessionID, bookID string) (*ToggleResult, error) {
	b, err := uc.catalog.ByID(bookID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{BookID: b.ID, InWishlist: uc.store.Toggle(sessionID, b)}, nil
}

// Remove 移除收藏,不存在时不是错误
func (uc *WishlistUseCase) Remove(ctx context.Context, sessionID, bookID string) (*WishlistView, error) {
	uc.store.Remove(sessionID, bookID)
	return uc.Get(ctx, sessionID)
}
