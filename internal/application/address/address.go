package address

import (
	"context"
	"strings"

	"github.com/xiebiao/storefront/internal/domain/address"
)

// AddressView 地址DTO
type AddressView struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	address.Details
	Phone     string `json:"phone"`
	IsDefault bool   `json:"is_default"`
}

// SaveAddressRequest 新增/修改地址请求
type SaveAddressRequest struct {
	Label     string
	Phone     string
	Details   address.Details
	IsDefault bool // 仅新增时有效,修改用SetDefault
}

// AddressUseCase 地址簿用例
// 地址按账户邮箱归属,只能操作自己的地址
type AddressUseCase struct {
	book *address.Book
}

// NewAddressUseCase 创建地址簿用例
func NewAddressUseCase(book *address.Book) *AddressUseCase {
	return &AddressUseCase{book: book}
}

// List 全部地址
func (uc *AddressUseCase) List(ctx context.Context, owner string) ([]AddressView, error) {
	list := uc.book.List(owner)
	out := make([]AddressView, len(list))
	for i, a := range list {
		out[i] = toView(a)
	}
	return out, nil
}

// Add 新增地址,第一条地址自动成为默认
func (uc *AddressUseCase) Add(ctx context.Context, owner string, req SaveAddressRequest) (*AddressView, error) {
	a, err := uc.book.Add(owner, strings.TrimSpace(req.Label), strings.TrimSpace(req.Phone), req.Details, req.IsDefault)
	if err != nil {
		return nil, err
	}
	view := toView(a)
	return &view, nil
}

// Edit 修改地址
func (uc *AddressUseCase) Edit(ctx context.Context, owner, id string, req SaveAddressRequest) (*AddressView, error) {
	a, err := uc.book.Edit(owner, id, strings.TrimSpace(req.Label), strings.TrimSpace(req.Phone), req.Details)
	if err != nil {
		return nil, err
	}
	view := toView(a)
	return &view, nil
}

// Delete 删除地址
func (uc *AddressUseCase) Delete(ctx context.Context, owner, id string) error {
	return uc.book.Delete(owner, id)
}

// SetDefault 设为默认地址
func (uc *AddressUseCase) SetDefault(ctx context.Context, owner, id string) (*AddressView, error) {
	a, err := uc.book.SetDefault(owner, id)
	if err != nil {
		return nil, err
	}
	view := toView(a)
	return &view, nil
}

func toView(a address.Address) AddressView {
	return AddressView{
		ID:        a.ID,
		Label:     a.Label,
		Details:   a.Details,
		Phone:     a.Phone,
		IsDefault: a.IsDefault,
	}
}
