package address

import (
	"strings"
)

// DefaultCountry 未填写国家时的默认值
const DefaultCountry = "USA"

// Details 收货地址正文,结算流程和地址簿共用
type Details struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// Normalize 去除首尾空白,国家为空时填充默认值
func (d Details) Normalize() Details {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Address = strings.TrimSpace(d.Address)
	d.City = strings.TrimSpace(d.City)
	d.State = strings.TrimSpace(d.State)
	d.ZipCode = strings.TrimSpace(d.ZipCode)
	d.Country = strings.TrimSpace(d.Country)
	if d.Country == "" {
		d.Country = DefaultCountry
	}
	return d
}

// Validate 必填字段校验,返回的错误为每个缺失字段给出提示
func (d Details) Validate() error {
	required := []struct {
		field string
		label string
		value string
	}{
		{"first_name", "First name", d.FirstName},
		{"last_name", "Last name", d.LastName},
		{"address", "Address", d.Address},
		{"city", "City", d.City},
		{"state", "State", d.State},
		{"zip_code", "ZIP code", d.ZipCode},
	}

	fields := make(map[string]string)
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields[r.field] = r.label + " is required"
		}
	}
	if len(fields) > 0 {
		return ErrInvalidAddress.WithFields(fields)
	}
	return nil
}

// Address 地址簿中的一条地址
type Address struct {
	ID        string
	Label     string // 如 Home / Office
	Details   Details
	Phone     string
	IsDefault bool
}
