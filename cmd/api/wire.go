//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"context"

	"github.com/google/wire"

	appaddress "github.com/xiebiao/storefront/internal/application/address"
	appadmin "github.com/xiebiao/storefront/internal/application/admin"
	appbook "github.com/xiebiao/storefront/internal/application/book"
	appcart "github.com/xiebiao/storefront/internal/application/cart"
	appcheckout "github.com/xiebiao/storefront/internal/application/checkout"
	appreview "github.com/xiebiao/storefront/internal/application/review"
	appuser "github.com/xiebiao/storefront/internal/application/user"
	appwishlist "github.com/xiebiao/storefront/internal/application/wishlist"
	"github.com/xiebiao/storefront/internal/domain/address"
	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/checkout"
	"github.com/xiebiao/storefront/internal/domain/review"
	"github.com/xiebiao/storefront/internal/domain/wishlist"
	"github.com/xiebiao/storefront/internal/infrastructure/config"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/storefront/internal/interface/http/handler"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/internal/interface/http/router"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 包含：日志、图书目录（fixtures或MySQL）、Token黑名单（memory或Redis）
var infrastructureSet = wire.NewSet(
	provideLogger,
	provideCatalog,
	provideTokenBlacklist,
	memory.NewUserRepository,
)

// domainSet 领域层依赖
// 购物车、收藏、评论、结算流程都是按会话/用户隔离的内存状态
var domainSet = wire.NewSet(
	cart.NewStore,
	wishlist.NewStore,
	review.NewStore,
	address.NewBook,
	checkout.NewStore,
	checkout.NewOrderNumberGenerator,
	providePricing,
	provideUserService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListCategoriesUseCase,
	appreview.NewReviewUseCase,
	appcart.NewGetCartUseCase,
	appcart.NewUpdateCartUseCase,
	appwishlist.NewWishlistUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewRefreshTokenUseCase,
	appuser.NewProfileUseCase,
	appaddress.NewAddressUseCase,
	providePlaceOrderUseCase,
	appcheckout.NewCheckoutUseCase,
	appadmin.NewOverviewUseCase,
	provideSessionSweeper,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewCartHandler,
	handler.NewUserHandler,
	handler.NewAccountHandler,
	handler.NewCheckoutHandler,
	handler.NewAdminHandler,
	wire.Struct(new(router.Handlers), "*"),
)

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
// 返回的cleanup按创建的逆序释放资源（会话清理协程、Redis连接池、日志缓冲）
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		router.New,
		newApp,
	)
	return nil, nil, nil
}
