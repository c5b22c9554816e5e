package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storefront/internal/domain/address"
	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/checkout"
	"github.com/xiebiao/storefront/internal/infrastructure/fixtures"
)

func TestOverview(t *testing.T) {
	catalog, err := book.NewCatalog(fixtures.Books())
	require.NoError(t, err)
	flows := checkout.NewStore()
	uc := NewOverviewUseCase(catalog, flows)

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, got.CatalogSize)
	assert.Equal(t, 2, got.OutOfStockCount)
	assert.Equal(t, "Fiction", got.Categories[0])
	assert.Len(t, got.Categories, 8)
	assert.Zero(t, got.OrdersPlaced)

	// 走完一次结算后计数加1
	_, err = flows.Begin("sid", "u", func() (*checkout.Flow, error) {
		return checkout.NewFlow("sid", "u", nil, time.Now()), nil
	})
	require.NoError(t, err)
	_, err = flows.Update("sid", func(f *checkout.Flow) error {
		if err := f.SubmitAddress(address.Details{
			FirstName: "Jane", LastName: "Doe", Address: "1 Main St",
			City: "Springfield", State: "IL", ZipCode: "62701",
		}); err != nil {
			return err
		}
		if err := f.SubmitPayment(checkout.PaymentInput{Type: checkout.PaymentPayPal}); err != nil {
			return err
		}
		return f.Confirm(checkout.Order{OrderNo: "ORD-1"})
	})
	require.NoError(t, err)

	got, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.OrdersPlaced)
}
