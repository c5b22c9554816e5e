package address

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Book 地址簿,按账户邮箱隔离
// 不变量:
// 1. 每个账户最多一个默认地址
// 2. 账户有地址时一定有默认地址(第一条自动成为默认,删除默认地址时顺延到剩余的第一条)
type Book struct {
	mu    sync.RWMutex
	lists map[string][]Address
	newID func() string
}

// NewBook 创建地址簿
func NewBook() *Book {
	return &Book{
		lists: make(map[string][]Address),
		newID: uuid.NewString,
	}
}

// Add 新增地址,makeDefault为true或这是第一条地址时设为默认
func (b *Book) Add(owner, label, phone string, d Details, makeDefault bool) (Address, error) {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return Address{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.lists[owner]
	a := Address{ID: b.newID(), Label: label, Details: d, Phone: phone}
	list = append(list, a)
	if makeDefault || len(list) == 1 {
		setDefault(list, a.ID)
	}
	b.lists[owner] = list
	return list[len(list)-1], nil
}

// Edit 修改地址内容,默认标记不变
func (b *Book) Edit(owner, id, label, phone string, d Details) (Address, error) {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return Address{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.lists[owner]
	i := indexOf(list, id)
	if i < 0 {
		return Address{}, ErrAddressNotFound
	}
	list[i].Label = label
	list[i].Phone = phone
	list[i].Details = d
	return list[i], nil
}

// Delete 删除地址,删除的是默认地址时,剩余的第一条成为默认
func (b *Book) Delete(owner, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.lists[owner]
	i := indexOf(list, id)
	if i < 0 {
		return ErrAddressNotFound
	}
	wasDefault := list[i].IsDefault
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(b.lists, owner)
		return nil
	}
	if wasDefault {
		list[0].IsDefault = true
	}
	b.lists[owner] = list
	return nil
}

// SetDefault 设为默认地址,其余地址取消默认
func (b *Book) SetDefault(owner, id string) (Address, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.lists[owner]
	i := indexOf(list, id)
	if i < 0 {
		return Address{}, ErrAddressNotFound
	}
	setDefault(list, id)
	return list[i], nil
}

// List 账户的全部地址(按添加顺序)
func (b *Book) List(owner string) []Address {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := slices.Clone(b.lists[owner])
	if out == nil {
		out = []Address{}
	}
	return out
}

// Default 默认地址
func (b *Book) Default(owner string) (Address, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, a := range b.lists[owner] {
		if a.IsDefault {
			return a, true
		}
	}
	return Address{}, false
}

func setDefault(list []Address, id string) {
	for i := range list {
		list[i].IsDefault = list[i].ID == id
	}
}

func indexOf(list []Address, id string) int {
	return slices.IndexFunc(list, func(a Address) bool { return a.ID == id })
}
