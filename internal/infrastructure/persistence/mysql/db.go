package mysql

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/storefront/internal/infrastructure/config"
)

// NewDB 创建数据库连接(仅catalog.source=mysql时使用)
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移books表
// 返回的cleanup关闭底层连接池
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: time.Now,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("db", cfg.Database.DBName),
	)

	// 注意：生产环境应使用版本化的迁移脚本
	if err := db.AutoMigrate(&BookModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位,促销价可为NULL
// 2. BookID是目录中的业务ID(字符串),自增ID只用于保持目录顺序
// 3. domain/book.Book不依赖GORM,由catalogSource负责转换
type BookModel struct {
	ID            uint           `gorm:"primaryKey"`
	BookID        string         `gorm:"uniqueIndex;size:64;not null;comment:图书业务ID"`
	ISBN          string         `gorm:"size:20;comment:ISBN号"`
	Title         string         `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author        string         `gorm:"index:idx_search;size:200;not null;comment:作者"`
	Description   string         `gorm:"type:text;comment:图书描述"`
	CoverImage    string         `gorm:"size:500;comment:封面图片URL"`
	Price         int64          `gorm:"not null;comment:价格(分)"`
	SalePrice     *int64         `gorm:"comment:促销价(分)"`
	Category      string         `gorm:"index;size:100;comment:分类"`
	InStock       bool           `gorm:"not null;default:true;comment:是否在售"`
	Rating        float64        `gorm:"not null;default:0;comment:评分(0-5)"`
	ReviewCount   int            `gorm:"not null;default:0;comment:评论数"`
	Stock         int            `gorm:"not null;default:0;comment:库存数量"`
	Format        string         `gorm:"size:16;not null;comment:装帧(Paperback/Hardcover/eBook)"`
	PublishedDate string         `gorm:"size:10;comment:出版日期"`
	CreatedAt     time.Time      `gorm:"comment:创建时间"`
	UpdatedAt     time.Time      `gorm:"comment:更新时间"`
	DeletedAt     gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
