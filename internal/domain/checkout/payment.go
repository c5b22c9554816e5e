package checkout

import (
	"strings"
	"unicode"
)

// PaymentType 支付方式
type PaymentType string

const (
	PaymentCredit PaymentType = "credit"
	PaymentDebit  PaymentType = "debit"
	PaymentPayPal PaymentType = "paypal"
)

// PaymentInput 用户提交的支付信息(只在校验时存在,不保存)
type PaymentInput struct {
	Type       PaymentType
	CardNumber string
	ExpiryDate string
	CVV        string
	NameOnCard string
}

// Validate 支付信息校验
// 业务规则:PayPal总是合法;银行卡需要卡号、有效期、CVV、持卡人姓名
func (p PaymentInput) Validate() error {
	fields := make(map[string]string)
	switch p.Type {
	case PaymentPayPal:
		return nil
	case PaymentCredit, PaymentDebit:
	default:
		fields["type"] = "Payment type must be credit, debit or paypal"
		return ErrInvalidPayment.WithFields(fields)
	}

	if strings.TrimSpace(p.NameOnCard) == "" {
		fields["name_on_card"] = "Name on card is required"
	}
	if strings.TrimSpace(p.CardNumber) == "" {
		fields["card_number"] = "Card number is required"
	}
	if strings.TrimSpace(p.ExpiryDate) == "" {
		fields["expiry_date"] = "Expiry date is required"
	}
	if strings.TrimSpace(p.CVV) == "" {
		fields["cvv"] = "CVV is required"
	}
	if len(fields) > 0 {
		return ErrInvalidPayment.WithFields(fields)
	}
	return nil
}

// Mask 只保留卡号后四位,其余信息丢弃
func (p PaymentInput) Mask() Payment {
	if p.Type == PaymentPayPal {
		return Payment{Type: PaymentPayPal}
	}
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, p.CardNumber)
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return Payment{
		Type:       p.Type,
		CardLast4:  digits,
		NameOnCard: strings.TrimSpace(p.NameOnCard),
	}
}

// Payment 脱敏后的支付信息
type Payment struct {
	Type       PaymentType `json:"type"`
	CardLast4  string      `json:"card_last4,omitempty"`
	NameOnCard string      `json:"name_on_card,omitempty"`
}

// Description 展示文案,如 "Credit Card ending in 4242"
func (p Payment) Description() string {
	switch p.Type {
	case PaymentPayPal:
		return "PayPal"
	case PaymentDebit:
		return "Debit Card ending in " + p.CardLast4
	default:
		return "Credit Card ending in " + p.CardLast4
	}
}
