package checkout

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/checkout"
	"github.com/xiebiao/storefront/pkg/metrics"
	"github.com/xiebiao/storefront/pkg/saga"
	"github.com/xiebiao/storefront/pkg/tracing"
)

const tracerName = "storefront/checkout"

// flowStore 下单用到的流程存储操作
type flowStore interface {
	Get(sessionID string) (*checkout.Flow, bool)
	Update(sessionID string, fn func(f *checkout.Flow) error) (*checkout.Flow, error)
}

// PlaceOrderUseCase 下单用例
// 流程(Saga):
// 1. take-cart:原子地取出购物车中的全部行,补偿为把这些行加回购物车
// 2. confirm:流程进入Confirmation并保存订单,要求当前在Summary且已填支付信息
// 步骤和支付信息在动购物车之前先检查,取出之后新加入的商品留在购物车中
type PlaceOrderUseCase struct {
	carts       *cart.Store
	flows       flowStore
	pricing     checkout.Pricing
	orderNo     *checkout.OrderNumberGenerator
	sagaTimeout time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	carts *cart.Store,
	flows *checkout.Store,
	pricing checkout.Pricing,
	orderNo *checkout.OrderNumberGenerator,
	sagaTimeout time.Duration,
	logger *zap.Logger,
) *PlaceOrderUseCase {
	metrics.InitMetrics()
	return &PlaceOrderUseCase{
		carts:       carts,
		flows:       flows,
		pricing:     pricing,
		orderNo:     orderNo,
		sagaTimeout: sagaTimeout,
		logger:      logger,
		now:         time.Now,
	}
}

// Execute 提交订单
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, sessionID, owner string) (view *OrderView, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PlaceOrder")
	defer func() { tracing.End(span, err) }()

	f, ok := uc.flows.Get(sessionID)
	if !ok || f.Owner != owner {
		return nil, checkout.ErrCheckoutNotActive
	}
	if err := f.ReadyToPlace(); err != nil {
		return nil, err
	}

	var (
		taken   cart.Cart
		totals  checkout.Totals
		orderNo string
		placed  *checkout.Order
	)

	s := saga.New("place-order", uc.sagaTimeout, saga.WithLogger(uc.logger))
	s.AddStep("take-cart",
		func(ctx context.Context) error {
			taken = uc.carts.Take(sessionID)
			if taken.IsEmpty() {
				return checkout.ErrEmptyCart
			}
			totals = uc.pricing.Compute(taken.Subtotal())
			orderNo = uc.orderNo.Next()
			return nil
		},
		func(ctx context.Context) error {
			uc.carts.Dispatch(sessionID, cart.ReturnItems{Items: taken.Items})
			return nil
		},
	)
	s.AddStep("confirm",
		func(ctx context.Context) error {
			f, err := uc.flows.Update(sessionID, func(f *checkout.Flow) error {
				if f.Owner != owner {
					return checkout.ErrCheckoutNotActive
				}
				if err := f.ReadyToPlace(); err != nil {
					return err
				}
				return f.Confirm(checkout.Order{
					OrderNo:         orderNo,
					Items:           taken.Items,
					ShippingAddress: f.Address,
					Payment:         *f.Payment,
					Totals:          totals,
					PlacedAt:        uc.now(),
				})
			})
			if err != nil {
				return err
			}
			placed = f.Order
			return nil
		},
		nil,
	)

	if err := s.Execute(ctx); err != nil {
		uc.logger.Warn("place order failed",
			zap.String("session_id", sessionID),
			zap.String("order_no", orderNo),
			zap.Error(err),
		)
		return nil, err
	}

	span.SetAttributes(attribute.String("order.no", orderNo), attribute.Int64("order.total", totals.Total))
	metrics.IncCounter(metrics.OrdersPlacedTotal)
	metrics.ObserveHistogram(metrics.OrderValue, float64(totals.Total)/100)
	uc.logger.Info("order placed",
		zap.String("order_no", orderNo),
		zap.Int("items", taken.ItemCount()),
		zap.Int64("total", totals.Total),
	)

	return toOrderView(placed), nil
}
