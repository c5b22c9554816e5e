package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

func sampleBooks() []Book {
	return []Book{
		{ID: "1", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Fiction",
			Description: "A story of wealth and love in the Jazz Age.", Price: 1599, InStock: true, Stock: 50,
			Rating: 4.5, Format: FormatPaperback},
		{ID: "2", Title: "atomic Habits", Author: "James Clear", Category: "Self-Help",
			Description: "Tiny changes, remarkable results.", Price: 2700, SalePrice: Int64Ptr(1899), InStock: true, Stock: 10,
			Rating: 4.8, Format: FormatHardcover},
		{ID: "3", Title: "Dune", Author: "Frank Herbert", Category: "Science Fiction",
			Description: "Desert planet politics.", Price: 1899, InStock: false, Stock: 0,
			Rating: 4.5, Format: FormatEBook},
		{ID: "4", Title: "Beloved", Author: "Toni Morrison", Category: "fiction",
			Description: "A haunting novel.", Price: 1500, InStock: true, Stock: 3,
			Rating: 4.2, Format: FormatPaperback},
	}
}

func ids(books []Book) []string {
	out := make([]string, len(books))
	for i := range books {
		out[i] = books[i].ID
	}
	return out
}

func TestBook_EffectivePrice(t *testing.T) {
	b := Book{Price: 2000}
	assert.Equal(t, int64(2000), b.EffectivePrice())
	assert.False(t, b.OnSale())

	b.SalePrice = Int64Ptr(1500)
	assert.Equal(t, int64(1500), b.EffectivePrice())
	assert.True(t, b.OnSale())

	// 促销价不低于原价时按原价
	b.SalePrice = Int64Ptr(2000)
	assert.Equal(t, int64(2000), b.EffectivePrice())
	assert.False(t, b.OnSale())
}

func TestBook_Validate(t *testing.T) {
	valid := sampleBooks()[1]
	require.NoError(t, valid.Validate())

	bad := Book{ID: "", Price: -1, SalePrice: Int64Ptr(5), Rating: 6, Stock: -1, Format: "Scroll"}
	err := bad.Validate()
	require.ErrorIs(t, err, ErrInvalidBook)

	fields := apperrors.GetAppError(err).Fields
	for _, f := range []string{"id", "title", "price", "salePrice", "rating", "stock", "format"} {
		assert.Contains(t, fields, f)
	}
}

func TestBook_ValidateSalePriceAbovePrice(t *testing.T) {
	bad := Book{ID: "x", Title: "t", Price: 100, SalePrice: Int64Ptr(200), Format: FormatPaperback}
	err := bad.Validate()
	require.Error(t, err)

	fields := apperrors.GetAppError(err).Fields
	assert.Contains(t, fields, "salePrice")
	assert.NotContains(t, fields, "price")
}

func TestBook_CloneIsDeep(t *testing.T) {
	b := sampleBooks()[1]
	cp := b.Clone()
	*cp.SalePrice = 1
	assert.Equal(t, int64(1899), *b.SalePrice)
}

func TestNewCatalog_RejectsInvalidAndDuplicates(t *testing.T) {
	books := sampleBooks()
	books[2].Rating = 7
	_, err := NewCatalog(books)
	assert.ErrorIs(t, err, ErrInvalidBook)

	books = sampleBooks()
	books[3].ID = "1"
	_, err = NewCatalog(books)
	assert.ErrorIs(t, err, ErrDuplicateBookID)
}

func TestCatalog_Queries(t *testing.T) {
	c, err := NewCatalog(sampleBooks())
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(c.All()))
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 1, c.OutOfStockCount())

	b, err := c.ByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Dune", b.Title)

	_, err = c.ByID("missing")
	assert.ErrorIs(t, err, ErrBookNotFound)

	assert.Equal(t, []string{"1", "4"}, ids(c.ByCategory("FICTION")))
	assert.Empty(t, c.ByCategory("Poetry"))
	assert.Equal(t, []string{"Fiction", "Self-Help", "Science Fiction"}, c.Categories())
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c, err := NewCatalog(sampleBooks())
	require.NoError(t, err)

	all := c.All()
	all[0].Title = "changed"
	*all[1].SalePrice = 1

	b, _ := c.ByID("1")
	assert.Equal(t, "The Great Gatsby", b.Title)
	b2, _ := c.ByID("2")
	assert.Equal(t, int64(1899), *b2.SalePrice)
}

func TestLoadCatalog(t *testing.T) {
	src := SourceFunc(func(context.Context) ([]Book, error) { return sampleBooks(), nil })
	c, err := LoadCatalog(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	boom := errors.New("db down")
	_, err = LoadCatalog(context.Background(), SourceFunc(func(context.Context) ([]Book, error) { return nil, boom }))
	assert.ErrorIs(t, err, boom)
}
