package checkout

import (
	"slices"
	"time"

	"github.com/xiebiao/storefront/internal/domain/address"
	"github.com/xiebiao/storefront/internal/domain/cart"
)

// Order 下单结果(不持久化,只保存在结算流程中直到Finish)
type Order struct {
	OrderNo         string
	Items           []cart.LineItem
	ShippingAddress address.Details
	Payment         Payment
	Totals          Totals
	PlacedAt        time.Time
}

// Flow 一个会话的结算流程
// Owner是发起结算的账户,同一浏览器会话换账户登录后不能看到上一个账户的流程
type Flow struct {
	SessionID string
	Owner     string
	Step      Step
	Address   address.Details // 进入时用默认地址预填,SubmitAddress后为提交值
	Payment   *Payment
	Order     *Order
	StartedAt time.Time
}

// NewFlow 创建结算流程,起始步骤为Address
func NewFlow(sessionID, owner string, prefill *address.Details, now time.Time) *Flow {
	f := &Flow{SessionID: sessionID, Owner: owner, Step: StepAddress, StartedAt: now}
	if prefill != nil {
		f.Address = *prefill
	}
	return f
}

// SubmitAddress Address → Payment
// 校验失败时步骤不变,不保存任何字段
func (f *Flow) SubmitAddress(d address.Details) error {
	if f.Step != StepAddress {
		return ErrInvalidStep
	}
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return err
	}
	f.Address = d
	f.Step = StepPayment
	return nil
}

// SubmitPayment Payment → Summary,只保存脱敏后的支付信息
func (f *Flow) SubmitPayment(in PaymentInput) error {
	if f.Step != StepPayment {
		return ErrInvalidStep
	}
	if err := in.Validate(); err != nil {
		return err
	}
	p := in.Mask()
	f.Payment = &p
	f.Step = StepSummary
	return nil
}

// ReadyToPlace 是否可以下单:处于Summary且已填写支付信息
func (f *Flow) ReadyToPlace() error {
	if f.Step != StepSummary || f.Payment == nil {
		return ErrInvalidStep
	}
	return nil
}

// Confirm Summary → Confirmation,之后不可逆
func (f *Flow) Confirm(o Order) error {
	if !f.Step.CanTransitionTo(StepConfirmation) {
		return ErrInvalidStep
	}
	f.Order = &o
	f.Step = StepConfirmation
	return nil
}

// Back 后退一步,Address和Confirmation不允许后退
func (f *Flow) Back() error {
	prev, ok := f.Step.Previous()
	if !ok {
		return ErrInvalidStep
	}
	f.Step = prev
	return nil
}

// Clone 深拷贝
func (f *Flow) Clone() *Flow {
	cp := *f
	if f.Payment != nil {
		p := *f.Payment
		cp.Payment = &p
	}
	if f.Order != nil {
		o := *f.Order
		o.Items = slices.Clone(f.Order.Items)
		cp.Order = &o
	}
	return &cp
}
