// Package storelink 实现店铺与城市/类目关联的用例
package storelink

import (
	"context"

	"github.com/google/uuid"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
)

// Service 店铺关联用例服务
type Service struct {
	stores        repository.StoreRepository
	cities        repository.CityRepository
	categories    repository.CategoryRepository
	cityLinks     repository.StoreCityRepository
	categoryLinks repository.StoreCategoryRepository
}

// NewService 创建店铺关联用例服务
func NewService(
	stores repository.StoreRepository,
	cities repository.CityRepository,
	categories repository.CategoryRepository,
	cityLinks repository.StoreCityRepository,
	categoryLinks repository.StoreCategoryRepository,
) *Service {
	return &Service{
		stores:        stores,
		cities:        cities,
		categories:    categories,
		cityLinks:     cityLinks,
		categoryLinks: categoryLinks,
	}
}

// CitySelection 返回带关联标记的城市列表
func (s *Service) CitySelection(ctx context.Context, storeID string) ([]entity.CitySelection, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	return s.cities.GetStoreSelection(ctx, storeID)
}

// CategorySelection 返回带关联标记的类目列表
func (s *Service) CategorySelection(ctx context.Context, storeID string) ([]entity.CategorySelection, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	return s.categories.GetStoreSelection(ctx, storeID)
}

// LinkCity 建立店铺与城市的关联并返回刷新后的列表
func (s *Service) LinkCity(ctx context.Context, storeID, cityID string) ([]entity.CitySelection, error) {
	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		return nil, err
	}
	link := &entity.StoreCity{
		ID:      uuid.New().String(),
		StoreID: storeID,
		CityID:  cityID,
	}
	if err := s.cityLinks.Create(ctx, link); err != nil {
		return nil, err
	}
	return s.cities.GetStoreSelection(ctx, storeID)
}

// UnlinkCity 摘除店铺与城市的关联并返回刷新后的列表
func (s *Service) UnlinkCity(ctx context.Context, storeID, cityID string) ([]entity.CitySelection, error) {
	if err := s.cityLinks.DeleteByPair(ctx, storeID, cityID); err != nil {
		return nil, err
	}
	return s.cities.GetStoreSelection(ctx, storeID)
}

// LinkCategory 建立店铺与类目的关联并返回刷新后的列表
func (s *Service) LinkCategory(ctx context.Context, storeID, categoryID string) ([]entity.CategorySelection, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	link := &entity.StoreCategory{
		ID:         uuid.New().String(),
		StoreID:    storeID,
		CategoryID: categoryID,
	}
	if err := s.categoryLinks.Create(ctx, link); err != nil {
		return nil, err
	}
	return s.categories.GetStoreSelection(ctx, storeID)
}

// UnlinkCategory 摘除店铺与类目的关联并返回刷新后的列表
func (s *Service) UnlinkCategory(ctx context.Context, storeID, categoryID string) ([]entity.CategorySelection, error) {
	if err := s.categoryLinks.DeleteByPair(ctx, storeID, categoryID); err != nil {
		return nil, err
	}
	return s.categories.GetStoreSelection(ctx, storeID)
}
