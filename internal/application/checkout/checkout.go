package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/storefront/internal/domain/address"
	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/checkout"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// FlowView 结算流程DTO
type FlowView struct {
	Step     int             `json:"step"`
	StepName string          `json:"step_name"`
	CanBack  bool            `json:"can_back"`
	Address  address.Details `json:"address"`
	Payment  *PaymentView    `json:"payment,omitempty"`
	Items    []OrderItemView `json:"items"`
	Totals   checkout.Totals `json:"totals"`
	Order    *OrderView      `json:"order,omitempty"`
}

// PaymentView 脱敏后的支付信息
type PaymentView struct {
	checkout.Payment
	Description string `json:"description"`
}

// OrderItemView 订单行
type OrderItemView struct {
	BookID    string `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// OrderView 下单确认DTO
type OrderView struct {
	OrderNo         string          `json:"order_no"`
	Items           []OrderItemView `json:"items"`
	ShippingAddress address.Details `json:"shipping_address"`
	Payment         PaymentView     `json:"payment"`
	Totals          checkout.Totals `json:"totals"`
	TotalDisplay    string          `json:"total_display"` // 如"59.40"
	PlacedAt        time.Time       `json:"placed_at"`
}

// PaymentRequest 支付信息请求
type PaymentRequest struct {
	Type       string
	CardNumber string
	ExpiryDate string
	CVV        string
	NameOnCard string
}

// CheckoutUseCase 结算流程用例
// 设计说明:
// 1. 流程按会话保存在checkout.Store,状态机规则在domain/checkout
// 2. 进入结算时购物车不能为空(已在Confirmation时除外)
// 3. 下单使用Saga:先取出购物车内容,确认失败时加回
// 4. 流程记录发起账户,会话换账户登录后旧流程对新账户不可见
type CheckoutUseCase struct {
	carts   *cart.Store
	flows   *checkout.Store
	address *address.Book
	pricing checkout.Pricing
	now     func() time.Time
	placer  *PlaceOrderUseCase
}

// NewCheckoutUseCase 创建结算用例
func NewCheckoutUseCase(
	carts *cart.Store,
	flows *checkout.Store,
	addressBook *address.Book,
	pricing checkout.Pricing,
	placer *PlaceOrderUseCase,
) *CheckoutUseCase {
	metrics.InitMetrics()
	return &CheckoutUseCase{
		carts:   carts,
		flows:   flows,
		address: addressBook,
		pricing: pricing,
		now:     time.Now,
		placer:  placer,
	}
}

// Enter 进入结算
// 本账户已有流程时原样返回;新流程从Address开始,用账户默认地址预填
func (uc *CheckoutUseCase) Enter(ctx context.Context, sessionID, owner string) (*FlowView, error) {
	if f, ok := uc.flows.Get(sessionID); ok && f.Owner == owner && f.Step == checkout.StepConfirmation {
		return uc.view(sessionID, f), nil
	}
	if uc.carts.Snapshot(sessionID).IsEmpty() {
		uc.reject(checkout.StepAddress)
		return nil, checkout.ErrEmptyCart
	}

	f, err := uc.flows.Begin(sessionID, owner, func() (*checkout.Flow, error) {
		var prefill *address.Details
		if a, ok := uc.address.Default(owner); ok {
			prefill = &a.Details
		}
		return checkout.NewFlow(sessionID, owner, prefill, uc.now()), nil
	})
	if err != nil {
		return nil, err
	}
	return uc.view(sessionID, f), nil
}

// Get 当前流程
func (uc *CheckoutUseCase) Get(ctx context.Context, sessionID, owner string) (*FlowView, error) {
	f, err := uc.owned(sessionID, owner)
	if err != nil {
		return nil, err
	}
	return uc.view(sessionID, f), nil
}

// SubmitAddress Address → Payment
func (uc *CheckoutUseCase) SubmitAddress(ctx context.Context, sessionID, owner string, d address.Details) (*FlowView, error) {
	return uc.update(sessionID, owner, checkout.StepAddress, func(f *checkout.Flow) error {
		return f.SubmitAddress(d)
	})
}

// SubmitPayment Payment → Summary
func (uc *CheckoutUseCase) SubmitPayment(ctx context.Context, sessionID, owner string, req PaymentRequest) (*FlowView, error) {
	in := checkout.PaymentInput{
		Type:       checkout.PaymentType(req.Type),
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
		NameOnCard: req.NameOnCard,
	}
	return uc.update(sessionID, owner, checkout.StepPayment, func(f *checkout.Flow) error {
		return f.SubmitPayment(in)
	})
}

// Back 后退一步
func (uc *CheckoutUseCase) Back(ctx context.Context, sessionID, owner string) (*FlowView, error) {
	f, err := uc.flows.Update(sessionID, func(f *checkout.Flow) error {
		if f.Owner != owner {
			return checkout.ErrCheckoutNotActive
		}
		return f.Back()
	})
	if err != nil {
		return nil, err
	}
	return uc.view(sessionID, f), nil
}

// PlaceOrder Summary → Confirmation
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, sessionID, owner string) (*FlowView, error) {
	if _, err := uc.placer.Execute(ctx, sessionID, owner); err != nil {
		return nil, err
	}
	return uc.Get(ctx, sessionID, owner)
}

// Finish 结束流程("继续购物"),订单随之丢弃
// 没有本账户的流程时什么也不做
func (uc *CheckoutUseCase) Finish(ctx context.Context, sessionID, owner string) error {
	if _, err := uc.owned(sessionID, owner); err == nil {
		uc.flows.Delete(sessionID)
	}
	return nil
}

// owned 会话中属于owner的流程
func (uc *CheckoutUseCase) owned(sessionID, owner string) (*checkout.Flow, error) {
	f, ok := uc.flows.Get(sessionID)
	if !ok || f.Owner != owner {
		return nil, checkout.ErrCheckoutNotActive
	}
	return f, nil
}

func (uc *CheckoutUseCase) update(sessionID, owner string, step checkout.Step, fn func(f *checkout.Flow) error) (*FlowView, error) {
	f, err := uc.flows.Update(sessionID, func(f *checkout.Flow) error {
		if f.Owner != owner {
			return checkout.ErrCheckoutNotActive
		}
		return fn(f)
	})
	if err != nil {
		if !errors.Is(err, checkout.ErrCheckoutNotActive) && !errors.Is(err, checkout.ErrInvalidStep) {
			uc.reject(step)
		}
		return nil, err
	}
	return uc.view(sessionID, f), nil
}

func (uc *CheckoutUseCase) reject(step checkout.Step) {
	metrics.IncCounterVec(metrics.CheckoutRejectedTotal, map[string]string{"step": step.String()})
}

// view 确认前展示当前购物车和预估金额,确认后展示订单
func (uc *CheckoutUseCase) view(sessionID string, f *checkout.Flow) *FlowView {
	_, canBack := f.Step.Previous()
	v := &FlowView{
		Step:     int(f.Step),
		StepName: f.Step.String(),
		CanBack:  canBack,
		Address:  f.Address,
	}
	if f.Payment != nil {
		v.Payment = toPaymentView(*f.Payment)
	}

	if f.Order != nil {
		order := toOrderView(f.Order)
		v.Order = order
		v.Items = order.Items
		v.Totals = order.Totals
		return v
	}

	c := uc.carts.Snapshot(sessionID)
	v.Items = toItemViews(c.Items)
	if !c.IsEmpty() {
		v.Totals = uc.pricing.Compute(c.Subtotal())
	}
	return v
}

func toPaymentView(p checkout.Payment) *PaymentView {
	return &PaymentView{Payment: p, Description: p.Description()}
}

func toItemViews(items []cart.LineItem) []OrderItemView {
	out := make([]OrderItemView, len(items))
	for i, li := range items {
		out[i] = OrderItemView{
			BookID:    li.BookID,
			Title:     li.Book.Title,
			Author:    li.Book.Author,
			UnitPrice: li.Book.EffectivePrice(),
			Quantity:  li.Quantity,
			LineTotal: li.LineTotal(),
		}
	}
	return out
}

func toOrderView(o *checkout.Order) *OrderView {
	return &OrderView{
		OrderNo:         o.OrderNo,
		Items:           toItemViews(o.Items),
		ShippingAddress: o.ShippingAddress,
		Payment:         *toPaymentView(o.Payment),
		Totals:          o.Totals,
		TotalDisplay:    checkout.FormatCents(o.Totals.Total),
		PlacedAt:        o.PlacedAt,
	}
}
