package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/storefront/internal/domain/user"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
	"github.com/xiebiao/storefront/pkg/jwt"
	"github.com/xiebiao/storefront/pkg/response"
)

const (
	identityKey = "identity"
	tokenKey    = "access_token"
)

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 从Header提取Bearer Token
// 2. 检查Token黑名单（登出后的Token立即失效）
// 3. 验证Token并将身份信息注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  user.TokenBlacklist
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist user.TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		blacklist:  blacklist,
	}
}

// RequireAuth 要求登录
// 使用方式：
//
//	account := v1.Group("/account")
//	account.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			abort(c, err)
			return
		}

		revoked, err := m.blacklist.Contains(c.Request.Context(), tokenString)
		if err != nil {
			abort(c, err)
			return
		}
		if revoked {
			abort(c, apperrors.ErrTokenRevoked)
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			abort(c, err) // ErrTokenExpired、ErrInvalidToken
			return
		}

		// 登出会吊销整个登录会话，包括登出前刷新出的Token
		revoked, err = m.blacklist.Contains(c.Request.Context(), jwt.SessionKey(claims.SessionID))
		if err != nil {
			abort(c, err)
			return
		}
		if revoked {
			abort(c, apperrors.ErrTokenRevoked)
			return
		}

		c.Set(identityKey, claims.Identity())
		c.Set(tokenKey, tokenString)
		c.Next()
	}
}

// RequireRole 要求指定角色，必须放在RequireAuth之后
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			abort(c, apperrors.ErrUnauthorized)
			return
		}
		if id.Role != string(role) {
			abort(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// OptionalAuth 可选登录
// 有合法Token时注入身份，否则作为匿名用户继续
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			c.Next()
			return
		}
		if revoked, err := m.blacklist.Contains(c.Request.Context(), tokenString); err != nil || revoked {
			c.Next()
			return
		}
		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			c.Next()
			return
		}
		if revoked, err := m.blacklist.Contains(c.Request.Context(), jwt.SessionKey(claims.SessionID)); err == nil && !revoked {
			c.Set(identityKey, claims.Identity())
			c.Set(tokenKey, tokenString)
		}
		c.Next()
	}
}

// bearerToken 解析 Authorization: Bearer <token>
func bearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", apperrors.ErrUnauthorized
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", apperrors.ErrInvalidToken
	}
	return strings.TrimSpace(parts[1]), nil
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// =========================================
// Context辅助函数（供Handler使用）
// =========================================

// GetIdentity 从Context获取当前登录用户
func GetIdentity(c *gin.Context) (jwt.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return jwt.Identity{}, false
	}
	id, ok := v.(jwt.Identity)
	return id, ok
}

// MustGetIdentity 从Context获取当前登录用户（不存在则panic）
// 说明：用于已经通过RequireAuth中间件的Handler
func MustGetIdentity(c *gin.Context) jwt.Identity {
	id, ok := GetIdentity(c)
	if !ok {
		panic("identity not found in context")
	}
	return id
}

// GetToken 当前请求的Access Token（登出时加入黑名单）
func GetToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
