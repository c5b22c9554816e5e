package admin

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/checkout"
)

// Overview 后台概览
type Overview struct {
	CatalogSize     int      `json:"catalog_size"`
	Categories      []string `json:"categories"`
	OutOfStockCount int      `json:"out_of_stock_count"`
	OrdersPlaced    int64    `json:"orders_placed"` // 本进程启动以来
}

// OverviewUseCase 后台概览用例(只读,需要admin角色)
type OverviewUseCase struct {
	catalog *book.Catalog
	flows   *checkout.Store
}

// NewOverviewUseCase 创建概览用例
func NewOverviewUseCase(catalog *book.Catalog, flows *checkout.Store) *OverviewUseCase {
	return &OverviewUseCase{catalog: catalog, flows: flows}
}

// Execute 汇总目录与下单统计
func (uc *OverviewUseCase) Execute(ctx context.Context) (*Overview, error) {
	return &Overview{
		CatalogSize:     uc.catalog.Len(),
		Categories:      uc.catalog.Categories(),
		OutOfStockCount: uc.catalog.OutOfStockCount(),
		OrdersPlaced:    uc.flows.OrdersPlaced(),
	}, nil
}
