// Package store 实现店铺用例
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"store-backoffice/internal/application/pagination"
	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
	"store-backoffice/pkg/logger"
	"store-backoffice/pkg/metrics"
)

// Service 店铺用例服务
type Service struct {
	stores        repository.StoreRepository
	cities        repository.CityRepository
	categories    repository.CategoryRepository
	cityLinks     repository.StoreCityRepository
	categoryLinks repository.StoreCategoryRepository
	resources     repository.StoreResourceRepository
	blobs         repository.BlobStore
	tx            repository.Transactor
}

// NewService 创建店铺用例服务
func NewService(
	stores repository.StoreRepository,
	cities repository.CityRepository,
	categories repository.CategoryRepository,
	cityLinks repository.StoreCityRepository,
	categoryLinks repository.StoreCategoryRepository,
	resources repository.StoreResourceRepository,
	blobs repository.BlobStore,
	tx repository.Transactor,
) *Service {
	return &Service{
		stores:        stores,
		cities:        cities,
		categories:    categories,
		cityLinks:     cityLinks,
		categoryLinks: categoryLinks,
		resources:     resources,
		blobs:         blobs,
		tx:            tx,
	}
}

// Get 按 ID 获取店铺
func (s *Service) Get(ctx context.Context, storeID string) (*entity.Store, error) {
	return s.stores.GetByID(ctx, storeID)
}

// Details 获取店铺及其关联数据
func (s *Service) Details(ctx context.Context, storeID string) (*entity.StoreDetails, error) {
	return s.stores.GetDetails(ctx, storeID)
}

// All 返回按优先级排序的店铺分页
func (s *Service) All(ctx context.Context, page, pageSize int) (pagination.Page[entity.Store], error) {
	stores, err := s.stores.GetAll(ctx)
	if err != nil {
		return pagination.Page[entity.Store]{}, err
	}
	return pagination.New(stores, page, pageSize), nil
}

// ByFilter 按过滤条件返回店铺分页
func (s *Service) ByFilter(ctx context.Context, filter repository.StoreFilter, page, pageSize int) (pagination.Page[entity.Store], error) {
	stores, err := s.stores.GetByFilter(ctx, filter)
	if err != nil {
		return pagination.Page[entity.Store]{}, err
	}
	return pagination.New(stores, page, pageSize), nil
}

// CanAdd 检查创建店铺的前置条件：至少存在一个城市和一个类目
func (s *Service) CanAdd(ctx context.Context) error {
	if _, err := s.cities.GetAll(ctx); err != nil {
		return err
	}
	if _, err := s.categories.GetAll(ctx); err != nil {
		return err
	}
	return nil
}

// SaveInput 店铺提交数据，由向导的确认步骤组装
type SaveInput struct {
	Title         string
	Description   string
	CityIDs       []string
	CategoryIDs   []string
	MainPageURL   string
	Resources     []entity.StoreResource
	PreviewPC     entity.Media
	PreviewMobile entity.Media
	MainPC        entity.Media
	MainMobile    entity.Media
	Priority      int
}

// Save 提交店铺：先在单个事务内写入店铺行与全部关联，
// 事务提交后并发上传四个媒体槽位。媒体上传失败不回滚关系数据，
// 只上报错误，调用方可在修改菜单中重新上传。
func (s *Service) Save(ctx context.Context, input SaveInput) (string, error) {
	start := time.Now()

	storeID := uuid.New().String()
	store := &entity.Store{
		ID:               storeID,
		Title:            input.Title,
		Description:      input.Description,
		PreviewMediaType: input.PreviewPC.Type,
		MainMediaType:    input.MainPC.Type,
		MainPageURL:      input.MainPageURL,
		DisplayPriority:  input.Priority,
	}

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.stores.Create(txCtx, store); err != nil {
			return err
		}

		cityLinks := make([]entity.StoreCity, 0, len(input.CityIDs))
		for _, cityID := range input.CityIDs {
			cityLinks = append(cityLinks, entity.StoreCity{
				ID:      uuid.New().String(),
				StoreID: storeID,
				CityID:  cityID,
			})
		}

		categoryLinks := make([]entity.StoreCategory, 0, len(input.CategoryIDs))
		for _, categoryID := range input.CategoryIDs {
			categoryLinks = append(categoryLinks, entity.StoreCategory{
				ID:         uuid.New().String(),
				StoreID:    storeID,
				CategoryID: categoryID,
			})
		}

		storeResources := make([]entity.StoreResource, 0, len(input.Resources))
		for _, res := range input.Resources {
			res.ID = uuid.New().String()
			res.StoreID = storeID
			storeResources = append(storeResources, res)
		}

		g, gCtx := errgroup.WithContext(txCtx)
		g.Go(func() error { return s.cityLinks.CreateBatch(gCtx, cityLinks) })
		g.Go(func() error { return s.categoryLinks.CreateBatch(gCtx, categoryLinks) })
		if len(storeResources) > 0 {
			g.Go(func() error { return s.resources.CreateBatch(gCtx, storeResources) })
		}
		return g.Wait()
	})
	if err != nil {
		metrics.CommitTotal.WithLabelValues("store", "error").Inc()
		return "", err
	}

	if err := s.uploadStoreMedia(ctx, storeID, input); err != nil {
		// 关系数据已提交，媒体可在修改菜单中补传
		logger.Error(ctx, "store media upload failed after commit", err, "store_id", storeID)
		metrics.CommitTotal.WithLabelValues("store", "media_error").Inc()
		return storeID, err
	}

	metrics.CommitTotal.WithLabelValues("store", "ok").Inc()
	metrics.CommitDuration.WithLabelValues("store").Observe(time.Since(start).Seconds())
	return storeID, nil
}

// uploadStoreMedia 并发上传四个媒体槽位
func (s *Service) uploadStoreMedia(ctx context.Context, storeID string, input SaveInput) error {
	uploads := []struct {
		slot  entity.StoreMediaSlot
		media entity.Media
	}{
		{entity.SlotPCPreview, input.PreviewPC},
		{entity.SlotMobilePreview, input.PreviewMobile},
		{entity.SlotPCMain, input.MainPC},
		{entity.SlotMobileMain, input.MainMobile},
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, upload := range uploads {
		name := entity.StoreMediaObjectName(storeID, upload.slot, upload.media.Type)
		data := upload.media.Data
		contentType := upload.media.ContentType()
		g.Go(func() error {
			return s.blobs.Put(gCtx, name, data, contentType)
		})
	}
	return g.Wait()
}

// mediaLinkTTL 媒体临时链接有效期
const mediaLinkTTL = 15 * time.Minute

// MediaURL 为指定槽位生成临时访问链接
func (s *Service) MediaURL(ctx context.Context, storeID string, slot entity.StoreMediaSlot) (string, error) {
	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return "", err
	}

	mediaType := store.MainMediaType
	if slot == entity.SlotPCPreview || slot == entity.SlotMobilePreview {
		mediaType = store.PreviewMediaType
	}

	objectName := entity.StoreMediaObjectName(storeID, slot, mediaType)
	return s.blobs.PresignedURL(ctx, objectName, mediaLinkTTL)
}

// UpdateTitle 更新店铺标题并返回最新详情
func (s *Service) UpdateTitle(ctx context.Context, storeID, title string) (*entity.StoreDetails, error) {
	return s.updateField(ctx, storeID, func(store *entity.Store) {
		store.Title = title
	})
}

// UpdateDescription 更新店铺描述并返回最新详情
func (s *Service) UpdateDescription(ctx context.Context, storeID, description string) (*entity.StoreDetails, error) {
	return s.updateField(ctx, storeID, func(store *entity.Store) {
		store.Description = description
	})
}

// UpdateMainPageURL 更新店铺主链接并返回最新详情
func (s *Service) UpdateMainPageURL(ctx context.Context, storeID, mainPageURL string) (*entity.StoreDetails, error) {
	return s.updateField(ctx, storeID, func(store *entity.Store) {
		store.MainPageURL = mainPageURL
	})
}

// UpdatePriority 更新店铺展示优先级并返回最新详情
func (s *Service) UpdatePriority(ctx context.Context, storeID string, priority int) (*entity.StoreDetails, error) {
	return s.updateField(ctx, storeID, func(store *entity.Store) {
		store.DisplayPriority = priority
	})
}

func (s *Service) updateField(ctx context.Context, storeID string, mutate func(*entity.Store)) (*entity.StoreDetails, error) {
	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	mutate(store)

	if err := s.stores.Update(ctx, store); err != nil {
		return nil, err
	}
	return s.stores.GetDetails(ctx, storeID)
}

// UpdateMedia 更新单个媒体槽位：改写对应的类型列并上传新对象
func (s *Service) UpdateMedia(ctx context.Context, storeID string, slot entity.StoreMediaSlot, media entity.Media) (*entity.StoreDetails, error) {
	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	switch slot {
	case entity.SlotPCPreview, entity.SlotMobilePreview:
		store.PreviewMediaType = media.Type
	case entity.SlotPCMain, entity.SlotMobileMain:
		store.MainMediaType = media.Type
	}

	if err := s.stores.Update(ctx, store); err != nil {
		return nil, err
	}

	name := entity.StoreMediaObjectName(storeID, slot, media.Type)
	if err := s.blobs.Put(ctx, name, media.Data, media.ContentType()); err != nil {
		return nil, err
	}

	return s.stores.GetDetails(ctx, storeID)
}

// Delete 删除店铺并返回删除后的浏览分页
func (s *Service) Delete(ctx context.Context, storeID string, page, pageSize int) (pagination.Page[entity.Store], error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return pagination.Page[entity.Store]{}, err
	}
	if err := s.stores.Delete(ctx, storeID); err != nil {
		return pagination.Page[entity.Store]{}, err
	}
	return s.All(ctx, page, pageSize)
}
