package repository

import (
	"context"

	"store-backoffice/internal/domain/entity"
)

// StoreResourceRepository 店铺资源仓储接口
type StoreResourceRepository interface {
	// GetByID 按 ID 获取资源，不存在时返回 ErrResourceNotFound
	GetByID(ctx context.Context, resourceID string) (*entity.StoreResource, error)
	// ListByStore 返回指定店铺的全部资源
	ListByStore(ctx context.Context, storeID string) ([]entity.StoreResource, error)
	// CreateBatch 批量插入资源
	CreateBatch(ctx context.Context, resources []entity.StoreResource) error
	// Delete 删除资源
	Delete(ctx context.Context, resourceID string) error
}
