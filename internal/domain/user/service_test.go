package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

type fakeRepo struct {
	users map[string]*User
}

func (r *fakeRepo) Create(_ context.Context, u *User) error {
	if _, ok := r.users[u.Email]; ok {
		return ErrDuplicateEmail
	}
	r.users[u.Email] = u
	return nil
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, u *User) error {
	r.users[u.Email] = u
	return nil
}

func newTestService(t *testing.T) Service {
	t.Helper()
	repo := &fakeRepo{users: make(map[string]*User)}
	svc := NewService(repo, bcrypt.MinCost)

	hashed, err := svc.HashPassword("123456789")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), NewUser("u-1", "test@test.com", hashed, "Test User", RoleAdmin)))
	return svc
}

func TestService_Login(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("正确的账号密码", func(t *testing.T) {
		u, err := svc.Login(ctx, "test@test.com", "123456789")
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
		assert.True(t, u.IsAdmin())
	})

	t.Run("邮箱大小写不敏感", func(t *testing.T) {
		_, err := svc.Login(ctx, "  Test@Test.com ", "123456789")
		assert.NoError(t, err)
	})

	t.Run("未知邮箱与错误密码返回相同错误", func(t *testing.T) {
		_, errUnknown := svc.Login(ctx, "wrong@x.com", "bad")
		_, errWrong := svc.Login(ctx, "test@test.com", "bad")

		assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("空字段", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "")
		require.ErrorIs(t, err, ErrMissingCredentials)

		appErr := apperrors.GetAppError(err)
		assert.Equal(t, "Please fill in all fields", appErr.Message)
		assert.Contains(t, appErr.Fields, "email")
		assert.Contains(t, appErr.Fields, "password")
	})
}

func TestService_UpdateProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.UpdateProfile(ctx, "test@test.com", "", "555-0100")
	require.NoError(t, err)
	assert.Equal(t, "Test User", u.Name)
	assert.Equal(t, "555-0100", u.Phone)

	got, err := svc.Profile(ctx, "TEST@test.com")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.Phone)

	_, err = svc.UpdateProfile(ctx, "nobody@test.com", "x", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" Admin ")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, r)

	_, ok = ParseRole("root")
	assert.False(t, ok)
}
