package jwt

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

func testIdentity() Identity {
	return Identity{UserID: "u-1", Email: "test@test.com", Name: "Admin", Role: "admin"}
}

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken(testIdentity())
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}
	if pair.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn错误: %d", pair.ExpiresIn)
	}

	claims, err := m.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("解析Token失败: %v", err)
	}
	got := claims.Identity()
	if got.SessionID == "" {
		t.Error("Token应携带登录会话ID")
	}
	got.SessionID = ""
	if got != testIdentity() {
		t.Errorf("身份信息不一致: %+v", got)
	}

	refresh, err := m.ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("解析Refresh Token失败: %v", err)
	}
	if refresh.SessionID != claims.SessionID {
		t.Errorf("同一次登录的Token对应共用会话ID: %s != %s", refresh.SessionID, claims.SessionID)
	}
}

func TestParseToken_RejectsRefreshToken(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)
	pair, _ := m.GenerateToken(testIdentity())

	if _, err := m.ParseToken(pair.RefreshToken); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("Refresh Token不能用于鉴权, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)
	issued := time.Now().Add(-2 * time.Minute)
	m.now = func() time.Time { return issued }
	pair, _ := m.GenerateToken(testIdentity())

	m.now = time.Now
	if _, err := m.ParseToken(pair.AccessToken); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("期望过期错误, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	pair, _ := NewManager("a", time.Hour, time.Hour).GenerateToken(testIdentity())

	if _, err := NewManager("b", time.Hour, time.Hour).ParseToken(pair.AccessToken); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("签名不一致应返回无效Token, got %v", err)
	}
}

func TestRefreshAccessToken(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)
	pair, _ := m.GenerateToken(testIdentity())

	access, err := m.RefreshAccessToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("刷新失败: %v", err)
	}
	claims, err := m.ParseToken(access)
	if err != nil {
		t.Fatalf("新Token无效: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("角色丢失: %q", claims.Role)
	}
	refresh, _ := m.ParseRefreshToken(pair.RefreshToken)
	if claims.SessionID != refresh.SessionID {
		t.Errorf("刷新后的Token应沿用登录会话: %q", claims.SessionID)
	}

	if _, err := m.RefreshAccessToken(pair.AccessToken); err == nil {
		t.Error("Access Token不能用于刷新")
	}
}
