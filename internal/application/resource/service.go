// Package resource 实现店铺附加链接用例
package resource

import (
	"context"

	"github.com/google/uuid"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
)

// Service 店铺附加链接用例服务
type Service struct {
	stores    repository.StoreRepository
	resources repository.StoreResourceRepository
}

// NewService 创建店铺附加链接用例服务
func NewService(stores repository.StoreRepository, resources repository.StoreResourceRepository) *Service {
	return &Service{stores: stores, resources: resources}
}

// List 返回店铺的附加链接
func (s *Service) List(ctx context.Context, storeID string) ([]entity.StoreResource, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	return s.resources.ListByStore(ctx, storeID)
}

// AddBatch 解析 "标题|链接" 批量文本并整批写入
func (s *Service) AddBatch(ctx context.Context, storeID, text string) ([]entity.StoreResource, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}

	parsed, err := entity.ParseResourceBatch(text)
	if err != nil {
		return nil, err
	}

	resources := make([]entity.StoreResource, 0, len(parsed))
	for _, res := range parsed {
		res.ID = uuid.New().String()
		res.StoreID = storeID
		resources = append(resources, res)
	}

	if err := s.resources.CreateBatch(ctx, resources); err != nil {
		return nil, err
	}
	return s.resources.ListByStore(ctx, storeID)
}

// Delete 删除单个附加链接并返回刷新后的列表
func (s *Service) Delete(ctx context.Context, storeID, resourceID string) ([]entity.StoreResource, error) {
	if _, err := s.resources.GetByID(ctx, resourceID); err != nil {
		return nil, err
	}
	if err := s.resources.Delete(ctx, resourceID); err != nil {
		return nil, err
	}
	return s.resources.ListByStore(ctx, storeID)
}
