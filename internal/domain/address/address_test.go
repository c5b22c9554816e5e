package address

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

const owner = "test@test.com"

func home() Details {
	return Details{FirstName: "Jay", LastName: "Gatsby", Address: "1 Egg Rd", City: "West Egg", State: "NY", ZipCode: "11000"}
}

func newTestBook() *Book {
	b := NewBook()
	n := 0
	b.newID = func() string {
		n++
		return fmt.Sprintf("addr-%d", n)
	}
	return b
}

func defaults(list []Address) []string {
	var out []string
	for _, a := range list {
		if a.IsDefault {
			out = append(out, a.ID)
		}
	}
	return out
}

func TestDetails_Validate(t *testing.T) {
	require.NoError(t, home().Validate())

	err := Details{FirstName: "Jay", City: " "}.Validate()
	require.ErrorIs(t, err, ErrInvalidAddress)
	fields := apperrors.GetAppError(err).Fields
	assert.Len(t, fields, 5)
	for _, f := range []string{"last_name", "address", "city", "state", "zip_code"} {
		assert.Contains(t, fields, f)
	}
}

func TestDetails_NormalizeDefaultsCountry(t *testing.T) {
	d := Details{FirstName: "  Jay "}.Normalize()
	assert.Equal(t, "Jay", d.FirstName)
	assert.Equal(t, "USA", d.Country)

	d = Details{Country: "Canada"}.Normalize()
	assert.Equal(t, "Canada", d.Country)
}

func TestBook_FirstAddressBecomesDefault(t *testing.T) {
	b := newTestBook()

	a1, err := b.Add(owner, "Home", "555-0100", home(), false)
	require.NoError(t, err)
	assert.True(t, a1.IsDefault)
	assert.Equal(t, "USA", a1.Details.Country)

	a2, err := b.Add(owner, "Office", "", home(), false)
	require.NoError(t, err)
	assert.False(t, a2.IsDefault)

	def, ok := b.Default(owner)
	require.True(t, ok)
	assert.Equal(t, a1.ID, def.ID)
}

func TestBook_AddRejectsInvalid(t *testing.T) {
	b := newTestBook()
	_, err := b.Add(owner, "Home", "", Details{}, false)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Empty(t, b.List(owner))
}

func TestBook_SetDefaultKeepsExactlyOne(t *testing.T) {
	b := newTestBook()
	b.Add(owner, "Home", "", home(), false)
	b.Add(owner, "Office", "", home(), false)
	b.Add(owner, "Cabin", "", home(), true)

	assert.Equal(t, []string{"addr-3"}, defaults(b.List(owner)))

	_, err := b.SetDefault(owner, "addr-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"addr-2"}, defaults(b.List(owner)))

	_, err = b.SetDefault(owner, "missing")
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestBook_DeleteDefaultPromotesFirstRemaining(t *testing.T) {
	b := newTestBook()
	b.Add(owner, "Home", "", home(), false)
	b.Add(owner, "Office", "", home(), false)
	b.Add(owner, "Cabin", "", home(), false)
	b.SetDefault(owner, "addr-2")

	require.NoError(t, b.Delete(owner, "addr-2"))
	assert.Equal(t, []string{"addr-1"}, defaults(b.List(owner)))

	require.NoError(t, b.Delete(owner, "addr-3"))
	assert.Equal(t, []string{"addr-1"}, defaults(b.List(owner)))

	require.NoError(t, b.Delete(owner, "addr-1"))
	_, ok := b.Default(owner)
	assert.False(t, ok)

	assert.ErrorIs(t, b.Delete(owner, "addr-1"), ErrAddressNotFound)
}

func TestBook_Edit(t *testing.T) {
	b := newTestBook()
	b.Add(owner, "Home", "", home(), false)

	d := home()
	d.City = "East Egg"
	a, err := b.Edit(owner, "addr-1", "Mansion", "555-0199", d)
	require.NoError(t, err)
	assert.Equal(t, "East Egg", a.Details.City)
	assert.Equal(t, "Mansion", a.Label)
	assert.True(t, a.IsDefault)

	_, err = b.Edit(owner, "addr-1", "x", "", Details{})
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = b.Edit("other@x.com", "addr-1", "x", "", home())
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestBook_OwnersAreIsolated(t *testing.T) {
	b := newTestBook()
	b.Add(owner, "Home", "", home(), false)

	assert.Empty(t, b.List("other@x.com"))
	_, ok := b.Default("other@x.com")
	assert.False(t, ok)
}
