package repository

import (
	"context"

	"store-backoffice/internal/domain/entity"
)

// CityRepository 城市仓储接口
type CityRepository interface {
	// GetByID 按 ID 获取城市，不存在时返回 ErrCityNotFound
	GetByID(ctx context.Context, cityID string) (*entity.City, error)
	// GetAll 返回全部城市，为空时返回 ErrCitiesNotFound
	GetAll(ctx context.Context) ([]entity.City, error)
	// GetStoreSelection 返回全部城市及其与指定店铺的关联标记
	GetStoreSelection(ctx context.Context, storeID string) ([]entity.CitySelection, error)
	// CreateBatch 批量插入城市
	CreateBatch(ctx context.Context, cities []entity.City) error
	// Delete 删除城市
	Delete(ctx context.Context, cityID string) error
}

// CategoryRepository 类目仓储接口
type CategoryRepository interface {
	// GetByID 按 ID 获取类目，不存在时返回 ErrCategoryNotFound
	GetByID(ctx context.Context, categoryID string) (*entity.Category, error)
	// GetAll 返回全部类目，为空时返回 ErrCategoriesNotFound
	GetAll(ctx context.Context) ([]entity.Category, error)
	// GetStoreSelection 返回全部类目及其与指定店铺的关联标记
	GetStoreSelection(ctx context.Context, storeID string) ([]entity.CategorySelection, error)
	// CreateBatch 批量插入类目
	CreateBatch(ctx context.Context, categories []entity.Category) error
	// Delete 删除类目
	Delete(ctx context.Context, categoryID string) error
}
