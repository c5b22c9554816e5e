package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcheckout "github.com/xiebiao/storefront/internal/application/checkout"
	appsession "github.com/xiebiao/storefront/internal/application/session"
	appuser "github.com/xiebiao/storefront/internal/application/user"
	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/internal/domain/checkout"
	"github.com/xiebiao/storefront/internal/domain/user"
	"github.com/xiebiao/storefront/internal/domain/wishlist"
	"github.com/xiebiao/storefront/internal/infrastructure/config"
	"github.com/xiebiao/storefront/internal/infrastructure/fixtures"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/storefront/pkg/jwt"
	"github.com/xiebiao/storefront/pkg/logger"
)

// App 装配完成的应用
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Engine  *gin.Engine
	Sweeper *appsession.Sweeper
}

func newApp(cfg *config.Config, log *zap.Logger, engine *gin.Engine, sweeper *appsession.Sweeper) *App {
	return &App{Config: cfg, Logger: log, Engine: engine, Sweeper: sweeper}
}

// ========================================
// Custom Providers (自定义Provider)
// ========================================
// 有些依赖需要从Config中提取参数或按配置选择实现，Wire无法自动推断

// provideLogger 从配置创建zap Logger，cleanup时刷新缓冲
func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	log, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = log.Sync() }, nil
}

// provideCatalog 按catalog.source加载图书目录
// fixtures：内置数据；mysql：读取books表，表为空且catalog.seed=true时先写入内置数据
// 目录加载完成后不再访问数据库，cleanup立即关闭连接池
func provideCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (*book.Catalog, error) {
	if cfg.Catalog.Source != "mysql" {
		catalog, err := book.LoadCatalog(ctx, fixtures.Source())
		if err != nil {
			return nil, err
		}
		log.Info("catalog loaded", zap.String("source", "fixtures"), zap.Int("books", catalog.Len()))
		return catalog, nil
	}

	db, closeDB, err := mysql.NewDB(cfg, log)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	repo := mysql.NewBookRepository(db)
	if cfg.Catalog.Seed {
		n, err := repo.Seed(ctx, fixtures.Books())
		if err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		if n > 0 {
			log.Info("catalog seeded", zap.Int("books", n))
		}
	}

	catalog, err := book.LoadCatalog(ctx, repo)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded", zap.String("source", "mysql"), zap.Int("books", catalog.Len()))
	return catalog, nil
}

// providePricing 从配置创建运费与税率规则
func providePricing(cfg *config.Config) (checkout.Pricing, error) {
	return checkout.NewPricing(
		cfg.Checkout.FreeShippingThreshold,
		cfg.Checkout.ShippingFee,
		cfg.Checkout.TaxRate,
	)
}

// provideUserService 创建用户服务并写入预置账户
func provideUserService(ctx context.Context, cfg *config.Config, repo user.Repository) (user.Service, error) {
	svc := user.NewService(repo, cfg.Auth.BcryptCost)
	if err := appuser.SeedAccounts(ctx, repo, svc, cfg.Auth.Accounts); err != nil {
		return nil, err
	}
	return svc, nil
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideTokenBlacklist 按session.store选择黑名单实现
// memory：单进程；redis：多实例共享，cleanup关闭连接池
func provideTokenBlacklist(cfg *config.Config, log *zap.Logger) (user.TokenBlacklist, func(), error) {
	if cfg.Session.Store != "redis" {
		return memory.NewTokenBlacklist(), func() {}, nil
	}
	client, cleanup, err := redis.NewClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return redis.NewTokenBlacklist(client), cleanup, nil
}

// providePlaceOrderUseCase 下单用例（Saga超时来自配置）
func providePlaceOrderUseCase(
	cfg *config.Config,
	carts *cart.Store,
	flows *checkout.Store,
	pricing checkout.Pricing,
	orderNo *checkout.OrderNumberGenerator,
	log *zap.Logger,
) *appcheckout.PlaceOrderUseCase {
	return appcheckout.NewPlaceOrderUseCase(carts, flows, pricing, orderNo, cfg.Checkout.SagaTimeout, log)
}

// provideSessionSweeper 启动会话状态清理，cleanup时停止
// 闲置超过Cookie有效期的购物车、收藏夹、结算流程不会再被访问
func provideSessionSweeper(
	ctx context.Context,
	cfg *config.Config,
	carts *cart.Store,
	wishlists *wishlist.Store,
	flows *checkout.Store,
	log *zap.Logger,
) (*appsession.Sweeper, func()) {
	sweeper := appsession.NewSweeper(map[string]appsession.Evicter{
		"cart":     carts,
		"wishlist": wishlists,
		"checkout": flows,
	}, cfg.Session.IdleTimeout(), cfg.Session.SweepInterval, log)
	sweeper.Start(ctx)
	return sweeper, sweeper.Stop
}
