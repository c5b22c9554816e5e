package address

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storefront/internal/domain/address"
)

const owner = "test@test.com"

var home = address.Details{
	FirstName: "Jane",
	LastName:  "Doe",
	Address:   "1 Main St",
	City:      "Springfield",
	State:     "IL",
	ZipCode:   "62701",
}

func TestAddressUseCase_KeepsOneDefault(t *testing.T) {
	uc := NewAddressUseCase(address.NewBook())
	ctx := context.Background()

	first, err := uc.Add(ctx, owner, SaveAddressRequest{Label: " Home ", Details: home})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.Equal(t, "Home", first.Label)
	assert.Equal(t, "USA", first.Country)

	office := home
	office.Address = "200 Office Park"
	second, err := uc.Add(ctx, owner, SaveAddressRequest{Label: "Office", Details: office, IsDefault: true})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	list, err := uc.List(ctx, owner)
	require.NoError(t, err)
	defaults := 0
	for _, a := range list {
		if a.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	// 删除默认地址后剩余的第一条成为默认
	require.NoError(t, uc.Delete(ctx, owner, second.ID))
	list, _ = uc.List(ctx, owner)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsDefault)
}

func TestAddressUseCase_EditAndErrors(t *testing.T) {
	uc := NewAddressUseCase(address.NewBook())
	ctx := context.Background()

	a, err := uc.Add(ctx, owner, SaveAddressRequest{Details: home})
	require.NoError(t, err)

	changed := home
	changed.City = "Chicago"
	edited, err := uc.Edit(ctx, owner, a.ID, SaveAddressRequest{Label: "Home", Phone: "555-0100", Details: changed})
	require.NoError(t, err)
	assert.Equal(t, "Chicago", edited.City)
	assert.True(t, edited.IsDefault)

	_, err = uc.Edit(ctx, owner, a.ID, SaveAddressRequest{Details: address.Details{}})
	assert.ErrorIs(t, err, address.ErrInvalidAddress)

	_, err = uc.SetDefault(ctx, "other@test.com", a.ID)
	assert.ErrorIs(t, err, address.ErrAddressNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, owner, "missing"), address.ErrAddressNotFound)
}
