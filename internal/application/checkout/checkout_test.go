package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/address"
	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/checkout"
	"github.com/xiebiao/storefront/internal/infrastructure/fixtures"
	"github.com/xiebiao/storefront/pkg/metrics"
)

const (
	sid   = "sid-1"
	owner = "user-1"
)

type testEnv struct {
	catalog  *book.Catalog
	carts    *cart.Store
	flows    *checkout.Store
	book     *address.Book
	checkout *CheckoutUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	catalog, err := book.NewCatalog(fixtures.Books())
	require.NoError(t, err)

	carts := cart.NewStore()
	flows := checkout.NewStore()
	addressBook := address.NewBook()
	pricing := checkout.DefaultPricing()

	placer := NewPlaceOrderUseCase(carts, flows, pricing, checkout.NewOrderNumberGenerator(), time.Second, zap.NewNop())
	return &testEnv{
		catalog:  catalog,
		carts:    carts,
		flows:    flows,
		book:     addressBook,
		checkout: NewCheckoutUseCase(carts, flows, addressBook, pricing, placer),
	}
}

func (e *testEnv) addToCart(t *testing.T, bookID string, qty int) {
	t.Helper()
	b, err := e.catalog.ByID(bookID)
	require.NoError(t, err)
	e.carts.Dispatch(sid, cart.AddToCart{Book: b, Quantity: qty})
}

func shippingAddress() address.Details {
	return address.Details{
		FirstName: "Jane",
		LastName:  "Doe",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62701",
	}
}

func cardPayment() PaymentRequest {
	return PaymentRequest{
		Type:       "credit",
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/30",
		CVV:        "123",
		NameOnCard: "Jane Doe",
	}
}

func TestCheckout_EnterRequiresItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	before := testutil.ToFloat64(metrics.CheckoutRejectedTotal.WithLabelValues("address"))
	_, err := env.checkout.Enter(ctx, sid, owner)
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CheckoutRejectedTotal.WithLabelValues("address")))

	_, err = env.checkout.Get(ctx, sid, owner)
	assert.ErrorIs(t, err, checkout.ErrCheckoutNotActive)
}

func TestCheckout_EnterPrefillsDefaultAddress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addToCart(t, "1", 1)

	_, err := env.book.Add(owner, "Home", "555-0100", shippingAddress(), true)
	require.NoError(t, err)

	view, err := env.checkout.Enter(ctx, sid, owner)
	require.NoError(t, err)
	assert.Equal(t, int(checkout.StepAddress), view.Step)
	assert.Equal(t, "address", view.StepName)
	assert.False(t, view.CanBack)
	assert.Equal(t, "Jane", view.Address.FirstName)
	assert.Equal(t, address.DefaultCountry, view.Address.Country)

	t.Run("重复进入返回同一流程", func(t *testing.T) {
		_, err := env.checkout.SubmitAddress(ctx, sid, owner, shippingAddress())
		require.NoError(t, err)

		again, err := env.checkout.Enter(ctx, sid, owner)
		require.NoError(t, err)
		assert.Equal(t, int(checkout.StepPayment), again.Step)
	})
}

func TestCheckout_FullFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addToCart(t, "1", 1)

	placedBefore := testutil.ToFloat64(metrics.OrdersPlacedTotal)

	view, err := env.checkout.Enter(ctx, sid, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1599), view.Totals.Subtotal)

	view, err = env.checkout.SubmitAddress(ctx, sid, owner, shippingAddress())
	require.NoError(t, err)
	assert.Equal(t, "payment", view.StepName)
	assert.True(t, view.CanBack)

	view, err = env.checkout.SubmitPayment(ctx, sid, owner, cardPayment())
	require.NoError(t, err)
	assert.Equal(t, "summary", view.StepName)
	require.NotNil(t, view.Payment)
	assert.Equal(t, "4242", view.Payment.CardLast4)
	assert.Equal(t, "Credit Card ending in 4242", view.Payment.Description)

	view, err = env.checkout.PlaceOrder(ctx, sid, owner)
	require.NoError(t, err)
	assert.Equal(t, "confirmation", view.StepName)
	assert.False(t, view.CanBack)
	require.NotNil(t, view.Order)

	order := view.Order
	assert.Regexp(t, `^ORD-\d+$`, order.OrderNo)
	assert.Equal(t, checkout.Totals{Subtotal: 1599, Shipping: 599, Tax: 128, Total: 2326}, order.Totals)
	assert.Equal(t, "23.26", order.TotalDisplay)
	assert.Equal(t, "Jane", order.ShippingAddress.FirstName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "The Great Gatsby", order.Items[0].Title)

	assert.True(t, env.carts.Snapshot(sid).IsEmpty(), "下单后购物车应被清空")
	assert.Equal(t, int64(1), env.flows.OrdersPlaced())
	assert.Equal(t, placedBefore+1, testutil.ToFloat64(metrics.OrdersPlacedTotal))

	t.Run("确认后不能后退", func(t *testing.T) {
		_, err := env.checkout.Back(ctx, sid, owner)
		assert.ErrorIs(t, err, checkout.ErrInvalidStep)
	})

	t.Run("确认后再次进入仍展示订单", func(t *testing.T) {
		again, err := env.checkout.Enter(ctx, sid, owner)
		require.NoError(t, err)
		require.NotNil(t, again.Order)
		assert.Equal(t, order.OrderNo, again.Order.OrderNo)
	})

	t.Run("Finish后流程结束", func(t *testing.T) {
		require.NoError(t, env.checkout.Finish(ctx, sid, owner))
		_, err := env.checkout.Get(ctx, sid, owner)
		assert.ErrorIs(t, err, checkout.ErrCheckoutNotActive)
	})
}

func TestCheckout_StepValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addToCart(t, "1", 1)

	_, err := env.checkout.Enter(ctx, sid, owner)
	require.NoError(t, err)

	t.Run("Address步骤不能后退", func(t *testing.T) {
		_, err := env.checkout.Back(ctx, sid, owner)
		assert.ErrorIs(t, err, checkout.ErrInvalidStep)
	})

	t.Run("地址不完整时停留在Address", func(t *testing.T) {
		_, err := env.checkout.SubmitAddress(ctx, sid, owner, address.Details{FirstName: "Jane"})
		assert.ErrorIs(t, err, address.ErrInvalidAddress)

		view, err := env.checkout.Get(ctx, sid, owner)
		require.NoError(t, err)
		assert.Equal(t, "address", view.StepName)
	})

	t.Run("未到Payment时不能提交支付", func(t *testing.T) {
		_, err := env.checkout.SubmitPayment(ctx, sid, owner, cardPayment())
		assert.ErrorIs(t, err, checkout.ErrInvalidStep)
	})

	t.Run("后退保留已填信息", func(t *testing.T) {
		_, err := env.checkout.SubmitAddress(ctx, sid, owner, shippingAddress())
		require.NoError(t, err)

		view, err := env.checkout.Back(ctx, sid, owner)
		require.NoError(t, err)
		assert.Equal(t, "address", view.StepName)
		assert.Equal(t, "Springfield", view.Address.City)
	})
}

func TestPlaceOrder_Preconditions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.checkout.PlaceOrder(ctx, sid, owner)
	assert.ErrorIs(t, err, checkout.ErrCheckoutNotActive)

	env.addToCart(t, "1", 2)
	env.addToCart(t, "7", 1)
	_, err = env.checkout.Enter(ctx, sid, owner)
	require.NoError(t, err)
	_, err = env.checkout.SubmitAddress(ctx, sid, owner, shippingAddress())
	require.NoError(t, err)

	t.Run("未到Summary时不动购物车", func(t *testing.T) {
		compensationsBefore := testutil.ToFloat64(metrics.SagaCompensationsTotal)

		_, err := env.checkout.PlaceOrder(ctx, sid, owner)
		require.ErrorIs(t, err, checkout.ErrInvalidStep)

		c := env.carts.Snapshot(sid)
		require.Len(t, c.Items, 2)
		assert.Equal(t, 3, c.ItemCount())
		assert.Equal(t, int64(2*1599+4999), c.Subtotal())
		assert.Equal(t, compensationsBefore, testutil.ToFloat64(metrics.SagaCompensationsTotal))
		assert.Zero(t, env.flows.OrdersPlaced())

		view, err := env.checkout.Get(ctx, sid, owner)
		require.NoError(t, err)
		assert.Equal(t, "payment", view.StepName)
	})

	t.Run("购物车被清空后不能下单", func(t *testing.T) {
		_, err := env.checkout.SubmitPayment(ctx, sid, owner, cardPayment())
		require.NoError(t, err)
		env.carts.Dispatch(sid, cart.ClearCart{})

		_, err = env.checkout.PlaceOrder(ctx, sid, owner)
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)

		view, err := env.checkout.Get(ctx, sid, owner)
		require.NoError(t, err)
		assert.Equal(t, "summary", view.StepName)
	})
}

// failingFlows confirm前往购物车加一件商品,然后让confirm失败
type failingFlows struct {
	flowStore
	beforeUpdate func()
	err          error
}

func (f *failingFlows) Update(sessionID string, fn func(f *checkout.Flow) error) (*checkout.Flow, error) {
	f.beforeUpdate()
	return nil, f.err
}

func TestPlaceOrder_ReturnsTakenItemsOnFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addToCart(t, "1", 2)
	env.addToCart(t, "7", 1)

	_, err := env.checkout.Enter(ctx, sid, owner)
	require.NoError(t, err)
	_, err = env.checkout.SubmitAddress(ctx, sid, owner, shippingAddress())
	require.NoError(t, err)
	_, err = env.checkout.SubmitPayment(ctx, sid, owner, cardPayment())
	require.NoError(t, err)

	boom := errors.New("boom")
	placer := env.checkout.placer
	placer.flows = &failingFlows{
		flowStore: env.flows,
		beforeUpdate: func() {
			// 取出之后、确认之前加入的商品
			assert.True(t, env.carts.Snapshot(sid).IsEmpty())
			env.addToCart(t, "1", 1)
			env.addToCart(t, "3", 1)
		},
		err: boom,
	}

	compensationsBefore := testutil.ToFloat64(metrics.SagaCompensationsTotal)
	_, err = placer.Execute(ctx, sid, owner)
	require.ErrorIs(t, err, boom)

	c := env.carts.Snapshot(sid)
	require.Len(t, c.Items, 3)
	li, ok := c.Find("1")
	require.True(t, ok)
	assert.Equal(t, 3, li.Quantity)
	_, ok = c.Find("3")
	assert.True(t, ok, "期间加入的商品不能被覆盖")
	assert.Equal(t, 5, c.ItemCount())
	assert.Equal(t, compensationsBefore+1, testutil.ToFloat64(metrics.SagaCompensationsTotal))
	assert.Zero(t, env.flows.OrdersPlaced())
}

func TestPlaceOrder_ConcurrentAdds(t *testing.T) {
	const n = 2000

	t.Run("未到Summary时并发加购不丢失", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		env.addToCart(t, "1", 1)
		_, err := env.checkout.Enter(ctx, sid, owner)
		require.NoError(t, err)

		b, err := env.catalog.ByID("1")
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				env.carts.Dispatch(sid, cart.AddToCart{Book: b, Quantity: 1})
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_, err := env.checkout.PlaceOrder(ctx, sid, owner)
				assert.ErrorIs(t, err, checkout.ErrInvalidStep)
			}
		}()
		wg.Wait()

		li, ok := env.carts.Snapshot(sid).Find("1")
		require.True(t, ok)
		assert.Equal(t, 1+n, li.Quantity)
		assert.Zero(t, env.flows.OrdersPlaced())
	})

	t.Run("下单与加购同时进行时数量守恒", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		env.addToCart(t, "1", 1)
		_, err := env.checkout.Enter(ctx, sid, owner)
		require.NoError(t, err)
		_, err = env.checkout.SubmitAddress(ctx, sid, owner, shippingAddress())
		require.NoError(t, err)
		_, err = env.checkout.SubmitPayment(ctx, sid, owner, cardPayment())
		require.NoError(t, err)

		b, err := env.catalog.ByID("1")
		require.NoError(t, err)

		var (
			wg   sync.WaitGroup
			view *FlowView
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				env.carts.Dispatch(sid, cart.AddToCart{Book: b, Quantity: 1})
			}
		}()
		go func() {
			defer wg.Done()
			var err error
			view, err = env.checkout.PlaceOrder(ctx, sid, owner)
			assert.NoError(t, err)
		}()
		wg.Wait()

		require.NotNil(t, view)
		require.NotNil(t, view.Order)
		ordered := view.Order.Items[0].Quantity
		remaining := 0
		if li, ok := env.carts.Snapshot(sid).Find("1"); ok {
			remaining = li.Quantity
		}
		assert.Equal(t, 1+n, ordered+remaining)
		assert.Equal(t, int64(1), env.flows.OrdersPlaced())
	})
}

func TestCheckout_FlowBelongsToOwner(t *testing.T) {
	const other = "user-2"
	env := newTestEnv(t)
	ctx := context.Background()
	env.addToCart(t, "1", 1)

	_, err := env.checkout.Enter(ctx, sid, owner)
	require.NoError(t, err)
	_, err = env.checkout.SubmitAddress(ctx, sid, owner, shippingAddress())
	require.NoError(t, err)
	_, err = env.checkout.SubmitPayment(ctx, sid, owner, cardPayment())
	require.NoError(t, err)

	t.Run("其他账户看不到也不能操作", func(t *testing.T) {
		_, err := env.checkout.Get(ctx, sid, other)
		assert.ErrorIs(t, err, checkout.ErrCheckoutNotActive)
		_, err = env.checkout.Back(ctx, sid, other)
		assert.ErrorIs(t, err, checkout.ErrCheckoutNotActive)
		_, err = env.checkout.PlaceOrder(ctx, sid, other)
		assert.ErrorIs(t, err, checkout.ErrCheckoutNotActive)
		require.NoError(t, env.checkout.Finish(ctx, sid, other))

		view, err := env.checkout.Get(ctx, sid, owner)
		require.NoError(t, err)
		assert.Equal(t, "summary", view.StepName)
		assert.False(t, env.carts.Snapshot(sid).IsEmpty())
	})

	t.Run("其他账户进入时重新开始", func(t *testing.T) {
		view, err := env.checkout.Enter(ctx, sid, other)
		require.NoError(t, err)
		assert.Equal(t, "address", view.StepName)
		assert.Empty(t, view.Address.FirstName)
		assert.Nil(t, view.Payment)

		_, err = env.checkout.Get(ctx, sid, owner)
		assert.ErrorIs(t, err, checkout.ErrCheckoutNotActive)
	})
}
