package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/user"
	"github.com/xiebiao/storefront/internal/infrastructure/config"
	"github.com/xiebiao/storefront/internal/interface/http/handler"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/response"
)

// slowRequestThreshold 超过该耗时的请求记为警告
const slowRequestThreshold = 3 * time.Second

// Handlers 所有HTTP处理器（wire.Struct注入）
type Handlers struct {
	Book     *handler.BookHandler
	Cart     *handler.CartHandler
	User     *handler.UserHandler
	Account  *handler.AccountHandler
	Checkout *handler.CheckoutHandler
	Admin    *handler.AdminHandler
}

// New 创建Gin引擎并注册路由
// 中间件执行顺序：Recovery → Logger → Metrics → CORS → 路由匹配 → Session/Auth → Handler
func New(cfg *config.Config, logger *zap.Logger, auth *middleware.AuthMiddleware, h Handlers) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(logger),
		middleware.Logger(logger, slowRequestThreshold),
		middleware.Metrics(),
		middleware.CORS(middleware.CORSOptions{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
			SessionHeader:    cfg.Session.HeaderName,
		}),
	)

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	session := middleware.Session(middleware.SessionOptions{
		CookieName: cfg.Session.CookieName,
		HeaderName: cfg.Session.HeaderName,
		MaxAge:     cfg.Session.CookieMaxAge,
		Secure:     cfg.Session.SecureCookie,
	})

	v1 := r.Group("/api/v1")
	{
		// 图书模块（公开接口）
		books := v1.Group("/books")
		{
			books.GET("", h.Book.ListBooks)
			books.GET("/:id", h.Book.GetBook)
			books.GET("/:id/reviews", h.Book.ListReviews)
			books.POST("/:id/reviews", auth.RequireAuth(), h.Book.AddReview)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", h.Book.ListCategories)
			categories.GET("/:name/books", h.Book.CategoryBooks)
		}

		// 购物车与收藏（按会话）
		cart := v1.Group("/cart", session)
		{
			cart.GET("", h.Cart.GetCart)
			cart.DELETE("", h.Cart.ClearCart)
			cart.POST("/items", h.Cart.AddItem)
			cart.PUT("/items/:bookId", h.Cart.UpdateItem)
			cart.DELETE("/items/:bookId", h.Cart.RemoveItem)
		}

		wishlist := v1.Group("/wishlist", session)
		{
			wishlist.GET("", h.Cart.GetWishlist)
			wishlist.POST("/:bookId/toggle", h.Cart.ToggleWishlist)
			wishlist.DELETE("/:bookId", h.Cart.RemoveWishlist)
		}

		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/login", h.User.Login)
			users.POST("/refresh", h.User.Refresh)
			users.POST("/logout", auth.RequireAuth(), h.User.Logout)
		}

		// 账户（需要登录）
		account := v1.Group("/account", auth.RequireAuth())
		{
			account.GET("/profile", h.Account.GetProfile)
			account.PUT("/profile", h.Account.UpdateProfile)
			account.GET("/addresses", h.Account.ListAddresses)
			account.POST("/addresses", h.Account.AddAddress)
			account.PUT("/addresses/:id", h.Account.EditAddress)
			account.DELETE("/addresses/:id", h.Account.DeleteAddress)
			account.POST("/addresses/:id/default", h.Account.SetDefaultAddress)
		}

		// 结算（需要登录 + 会话）
		checkout := v1.Group("/checkout", auth.RequireAuth(), session)
		{
			checkout.GET("", h.Checkout.Get)
			checkout.POST("", h.Checkout.Enter)
			checkout.DELETE("", h.Checkout.Finish)
			checkout.POST("/address", h.Checkout.SubmitAddress)
			checkout.POST("/payment", h.Checkout.SubmitPayment)
			checkout.POST("/place-order", h.Checkout.PlaceOrder)
			checkout.POST("/back", h.Checkout.Back)
		}

		// 后台（需要admin角色）
		admin := v1.Group("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin))
		{
			admin.GET("/overview", h.Admin.Overview)
		}
	}

	return r
}
