package dto

import (
	"github.com/xiebiao/storefront/internal/domain/address"
)

// AddressRequest HTTP收货地址
// 必填字段由领域层校验,缺失时逐个字段返回提示
type AddressRequest struct {
	FirstName string `json:"first_name" example:"Jane"`
	LastName  string `json:"last_name" example:"Doe"`
	Address   string `json:"address" example:"1 Main St"`
	City      string `json:"city" example:"Springfield"`
	State     string `json:"state" example:"IL"`
	ZipCode   string `json:"zip_code" example:"62701"`
	Country   string `json:"country" example:"USA"` // 省略时为USA
}

// ToDetails 转换为领域地址
func (r AddressRequest) ToDetails() address.Details {
	return address.Details{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
		Country:   r.Country,
	}
}

// SaveAddressRequest HTTP地址簿新增/修改请求
type SaveAddressRequest struct {
	AddressRequest
	Label     string `json:"label" binding:"max=50" example:"Home"`
	Phone     string `json:"phone" binding:"max=30" example:"555-0100"`
	IsDefault bool   `json:"is_default"`
}

// PaymentRequest HTTP支付信息请求
type PaymentRequest struct {
	Type       string `json:"type" binding:"required,oneof=credit debit paypal" example:"credit"`
	CardNumber string `json:"card_number" example:"4242424242424242"`
	ExpiryDate string `json:"expiry_date" example:"12/30"`
	CVV        string `json:"cvv" example:"123"`
	NameOnCard string `json:"name_on_card" example:"Jane Doe"`
}
