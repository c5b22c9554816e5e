package wishlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storefront/internal/domain/book"
)

var (
	gatsby = book.Book{ID: "1", Title: "The Great Gatsby", Price: 1599, Format: book.FormatPaperback}
	dune   = book.Book{ID: "2", Title: "Dune", Price: 1899, SalePrice: book.Int64Ptr(1499), Format: book.FormatEBook}
)

func TestToggle_TwiceRestoresState(t *testing.T) {
	s := NewStore()

	assert.True(t, s.Toggle("s", gatsby))
	assert.True(t, s.Contains("s", "1"))

	assert.False(t, s.Toggle("s", gatsby))
	assert.False(t, s.Contains("s", "1"))
	assert.Empty(t, s.Items("s"))
}

func TestItems_InsertionOrderWithoutDuplicates(t *testing.T) {
	s := NewStore()
	s.Toggle("s", dune)
	s.Toggle("s", gatsby)

	items := s.Items("s")
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].BookID)
	assert.Equal(t, "1", items[1].BookID)
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Toggle("s", gatsby)

	assert.False(t, s.Remove("s", "missing"))
	assert.True(t, s.Remove("s", "1"))
	assert.False(t, s.Contains("s", "1"))
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewStore()
	s.Toggle("a", gatsby)

	assert.False(t, s.Contains("b", "1"))
	assert.Empty(t, s.Items("b"))
}

func TestItems_ReturnsCopies(t *testing.T) {
	s := NewStore()
	s.Toggle("s", dune)

	items := s.Items("s")
	*items[0].Book.SalePrice = 1

	assert.Equal(t, int64(1499), *s.Items("s")[0].Book.SalePrice)
}

func TestEvictIdle(t *testing.T) {
	s := NewStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Toggle("old", gatsby)
	now = now.Add(2 * time.Hour)
	s.Toggle("fresh", dune)

	assert.Equal(t, 1, s.EvictIdle(time.Hour))
	assert.Empty(t, s.Items("old"))
	assert.True(t, s.Contains("fresh", "2"))
	assert.Equal(t, 1, s.Len())

	// 清空的收藏夹不再计入
	s.Toggle("fresh", dune)
	assert.Zero(t, s.Len())
	assert.Zero(t, s.EvictIdle(0))
}
