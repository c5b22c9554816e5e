package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storefront/internal/domain/user"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := user.NewUser("u-1", "Test@Test.com", "hash", "Test", user.RoleAdmin)
	require.NoError(t, repo.Create(ctx, u))
	assert.ErrorIs(t, repo.Create(ctx, u), user.ErrDuplicateEmail)

	got, err := repo.FindByEmail(ctx, "test@test.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	// 返回副本,修改不影响仓储
	got.Name = "changed"
	again, _ := repo.FindByEmail(ctx, "test@test.com")
	assert.Equal(t, "Test", again.Name)

	require.NoError(t, repo.Update(ctx, got))
	again, _ = repo.FindByEmail(ctx, "test@test.com")
	assert.Equal(t, "changed", again.Name)

	_, err = repo.FindByEmail(ctx, "nobody@test.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &user.User{Email: "nobody@test.com"}), user.ErrUserNotFound)
}

func TestTokenBlacklist_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bl := NewTokenBlacklist()
	bl.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, "tok", time.Hour))
	ok, _ := bl.Contains(ctx, "tok")
	assert.True(t, ok)

	now = now.Add(time.Hour)
	ok, _ = bl.Contains(ctx, "tok")
	assert.False(t, ok)
	assert.Empty(t, bl.entries)
}
