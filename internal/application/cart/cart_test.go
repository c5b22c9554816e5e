package cart

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/checkout"
	"github.com/xiebiao/storefront/internal/infrastructure/fixtures"
	"github.com/xiebiao/storefront/pkg/metrics"
)

const sid = "sid-1"

func newUseCases(t *testing.T) (*GetCartUseCase, *UpdateCartUseCase) {
	t.Helper()
	catalog, err := book.NewCatalog(fixtures.Books())
	require.NoError(t, err)
	store := cart.NewStore()
	pricing := checkout.DefaultPricing()
	return NewGetCartUseCase(store, pricing), NewUpdateCartUseCase(catalog, store, pricing, zap.NewNop())
}

func TestUpdateCart_Add(t *testing.T) {
	get, update := newUseCases(t)
	ctx := context.Background()

	before := testutil.ToFloat64(metrics.CartMutationsTotal.WithLabelValues("add"))

	_, err := update.Add(ctx, sid, "1", 1)
	require.NoError(t, err)
	view, err := update.Add(ctx, sid, "1", 2)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, int64(3*1599), view.Items[0].LineTotal)
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.CartMutationsTotal.WithLabelValues("add")))

	got, err := get.Execute(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, view, got)
}

func TestUpdateCart_AddRejections(t *testing.T) {
	_, update := newUseCases(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		bookID  string
		qty     int
		wantErr error
	}{
		{"未知图书", "missing", 1, book.ErrBookNotFound},
		{"缺货图书", "10", 1, cart.ErrOutOfStock},
		{"数量为0", "1", 0, cart.ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := update.Add(ctx, sid, tt.bookID, tt.qty)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateCart_UpdateRemoveClear(t *testing.T) {
	_, update := newUseCases(t)
	ctx := context.Background()

	_, _ = update.Add(ctx, sid, "1", 1)
	_, _ = update.Add(ctx, sid, "2", 1)

	view, err := update.UpdateQuantity(ctx, sid, "1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Items[0].Quantity)

	view, err = update.UpdateQuantity(ctx, sid, "1", 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "2", view.Items[0].BookID)

	view, err = update.Remove(ctx, sid, "not-in-cart")
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)

	view, err = update.Clear(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, checkout.Totals{}, view.Totals)
}

func TestCartView_TotalsUseSalePrice(t *testing.T) {
	_, update := newUseCases(t)

	// Mockingbird 18.99 促销 14.99;Dune 21.99 促销 16.99;The Pragmatic Programmer 49.99
	_, _ = update.Add(context.Background(), sid, "2", 1)
	_, _ = update.Add(context.Background(), sid, "5", 1)
	view, err := update.Add(context.Background(), sid, "7", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1499+1699+4999), view.Totals.Subtotal)
	assert.Equal(t, int64(0), view.Totals.Shipping)
	assert.Equal(t, int64(656), view.Totals.Tax) // 8197 * 0.08 = 655.76
}
