package book

import (
	"context"
)

// Source 目录数据源接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(内置数据 / MySQL)
// 2. 只在启动时调用一次,结果装入不可变的Catalog
type Source interface {
	LoadAll(ctx context.Context) ([]Book, error)
}

// SourceFunc 函数适配器,便于测试
type SourceFunc func(ctx context.Context) ([]Book, error)

func (f SourceFunc) LoadAll(ctx context.Context) ([]Book, error) {
	return f(ctx)
}
