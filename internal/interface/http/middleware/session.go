package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "session_id"

// SessionOptions 会话标识配置
type SessionOptions struct {
	CookieName string
	HeaderName string
	MaxAge     int // 秒
	Secure     bool
}

// Session 匿名会话中间件
// 购物车、收藏和结算流程都按会话ID隔离：
// 1. 优先读取Header（非浏览器客户端），其次读取Cookie
// 2. 都没有时生成新的UUID，通过Cookie和响应Header下发
func Session(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(opts.HeaderName)
		if sid == "" {
			sid, _ = c.Cookie(opts.CookieName)
		}
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.SetCookie(opts.CookieName, sid, opts.MaxAge, "/", "", opts.Secure, true)
		}

		c.Set(sessionKey, sid)
		c.Header(opts.HeaderName, sid)
		c.Next()
	}
}

// GetSessionID 当前请求的会话ID
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
