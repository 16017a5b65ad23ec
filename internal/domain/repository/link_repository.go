package repository

import (
	"context"

	"store-backoffice/internal/domain/entity"
)

// StoreCityRepository 店铺城市关联仓储接口
type StoreCityRepository interface {
	// Create 建立单条关联
	Create(ctx context.Context, link *entity.StoreCity) error
	// CreateBatch 批量建立关联
	CreateBatch(ctx context.Context, links []entity.StoreCity) error
	// DeleteByPair 按店铺与城市删除关联
	DeleteByPair(ctx context.Context, storeID, cityID string) error
}

// StoreCategoryRepository 店铺类目关联仓储接口
type StoreCategoryRepository interface {
	// Create 建立单条关联
	Create(ctx context.Context, link *entity.StoreCategory) error
	// CreateBatch 批量建立关联
	CreateBatch(ctx context.Context, links []entity.StoreCategory) error
	// DeleteByPair 按店铺与类目删除关联
	DeleteByPair(ctx context.Context, storeID, categoryID string) error
}
