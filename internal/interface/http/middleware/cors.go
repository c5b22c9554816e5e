package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSOptions 跨域配置
type CORSOptions struct {
	AllowOrigins     []string
	AllowCredentials bool
	MaxAge           time.Duration
	SessionHeader    string // 会话ID头需要暴露给前端
}

// CORS 跨域中间件
// allow_credentials=true时不能使用"*"，需要配置具体域名
func CORS(opts CORSOptions) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     opts.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", opts.SessionHeader},
		ExposeHeaders:    []string{"X-Request-ID", opts.SessionHeader},
		AllowCredentials: opts.AllowCredentials,
		MaxAge:           opts.MaxAge,
	})
}
