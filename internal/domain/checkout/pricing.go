package checkout

import (
	"github.com/shopspring/decimal"
)

// Pricing 运费与税费规则(来自配置)
type Pricing struct {
	FreeShippingThreshold int64           // 分;小计严格大于该值时免运费
	ShippingFee           int64           // 分
	TaxRate               decimal.Decimal // 如0.08
}

// DefaultPricing 满50免运费,否则5.99;税率8%
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: 5000,
		ShippingFee:           599,
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

// NewPricing 从配置构造,税率是十进制字符串
func NewPricing(threshold, fee int64, taxRate string) (Pricing, error) {
	rate, err := decimal.NewFromString(taxRate)
	if err != nil {
		return Pricing{}, err
	}
	return Pricing{FreeShippingThreshold: threshold, ShippingFee: fee, TaxRate: rate}, nil
}

// Totals 订单金额(分)
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// Compute 计算运费、税费与总额
// 税费 = 小计 × 税率,四舍五入到分
func (p Pricing) Compute(subtotal int64) Totals {
	shipping := p.ShippingFee
	if subtotal > p.FreeShippingThreshold {
		shipping = 0
	}
	tax := decimal.NewFromInt(subtotal).Mul(p.TaxRate).Round(0).IntPart()
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// FormatCents 金额格式化,如 1599 → "15.99"
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
