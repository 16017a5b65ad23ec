package repository

import (
	"context"

	"store-backoffice/internal/domain/entity"
)

// StoreFilter 店铺过滤条件
type StoreFilter struct {
	StoreTitle     string
	CityTitle      string
	CategoryTitles []string
}

// StoreRepository 店铺仓储接口
type StoreRepository interface {
	// GetByID 按 ID 获取店铺，不存在时返回 ErrStoreNotFound
	GetByID(ctx context.Context, storeID string) (*entity.Store, error)
	// GetDetails 获取店铺及其城市、类目、资源关联
	GetDetails(ctx context.Context, storeID string) (*entity.StoreDetails, error)
	// GetAll 按展示优先级降序返回全部店铺，为空时返回 ErrStoresNotFound
	GetAll(ctx context.Context) ([]entity.Store, error)
	// GetByFilter 按标题、城市、类目过滤，为空时返回 ErrStoresNotFoundByFilters
	GetByFilter(ctx context.Context, filter StoreFilter) ([]entity.Store, error)
	// Create 插入店铺行
	Create(ctx context.Context, store *entity.Store) error
	// Update 更新店铺全部字段
	Update(ctx context.Context, store *entity.Store) error
	// Delete 删除店铺行，关联由外键级联清理
	Delete(ctx context.Context, storeID string) error
}
