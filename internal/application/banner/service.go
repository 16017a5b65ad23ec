// Package banner 实现首页横幅用例
package banner

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
	"store-backoffice/pkg/logger"
	"store-backoffice/pkg/metrics"
)

// Service 横幅用例服务
type Service struct {
	banners repository.BannerRepository
	blobs   repository.BlobStore
}

// NewService 创建横幅用例服务
func NewService(banners repository.BannerRepository, blobs repository.BlobStore) *Service {
	return &Service{banners: banners, blobs: blobs}
}

// Get 按 ID 获取横幅
func (s *Service) Get(ctx context.Context, bannerID string) (*entity.Banner, error) {
	return s.banners.GetByID(ctx, bannerID)
}

// All 返回按优先级降序排列的全部横幅
func (s *Service) All(ctx context.Context) ([]entity.Banner, error) {
	banners, err := s.banners.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(banners, func(i, j int) bool {
		return banners[i].DisplayPriority > banners[j].DisplayPriority
	})
	return banners, nil
}

// SaveInput 横幅提交数据，由向导的确认步骤组装
type SaveInput struct {
	TargetURL string
	PC        entity.Media
	Mobile    entity.Media
	Priority  int
}

// Save 提交横幅：先写入缓存记录，再并发上传两个媒体槽位。
// 媒体上传失败不回滚记录，只上报错误。
func (s *Service) Save(ctx context.Context, input SaveInput) (string, error) {
	start := time.Now()

	bannerID := uuid.New().String()
	banner := &entity.Banner{
		ID:              bannerID,
		MediaType:       input.PC.Type,
		TargetURL:       input.TargetURL,
		DisplayPriority: input.Priority,
	}

	if err := s.banners.Save(ctx, banner); err != nil {
		metrics.CommitTotal.WithLabelValues("banner", "error").Inc()
		return "", err
	}

	if err := s.uploadBannerMedia(ctx, bannerID, input.PC, input.Mobile); err != nil {
		logger.Error(ctx, "banner media upload failed after commit", err, "banner_id", bannerID)
		metrics.CommitTotal.WithLabelValues("banner", "media_error").Inc()
		return bannerID, err
	}

	metrics.CommitTotal.WithLabelValues("banner", "ok").Inc()
	metrics.CommitDuration.WithLabelValues("banner").Observe(time.Since(start).Seconds())
	return bannerID, nil
}

func (s *Service) uploadBannerMedia(ctx context.Context, bannerID string, pc, mobile entity.Media) error {
	uploads := []struct {
		slot  entity.BannerMediaSlot
		media entity.Media
	}{
		{entity.SlotPCBanner, pc},
		{entity.SlotMobileBanner, mobile},
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, upload := range uploads {
		name := entity.BannerMediaObjectName(bannerID, upload.slot, upload.media.Type)
		data := upload.media.Data
		contentType := upload.media.ContentType()
		g.Go(func() error {
			return s.blobs.Put(gCtx, name, data, contentType)
		})
	}
	return g.Wait()
}

// UpdateTargetURL 更新横幅跳转链接
func (s *Service) UpdateTargetURL(ctx context.Context, bannerID, targetURL string) (*entity.Banner, error) {
	return s.updateField(ctx, bannerID, func(banner *entity.Banner) {
		banner.TargetURL = targetURL
	})
}

// UpdatePriority 更新横幅展示优先级
func (s *Service) UpdatePriority(ctx context.Context, bannerID string, priority int) (*entity.Banner, error) {
	return s.updateField(ctx, bannerID, func(banner *entity.Banner) {
		banner.DisplayPriority = priority
	})
}

func (s *Service) updateField(ctx context.Context, bannerID string, mutate func(*entity.Banner)) (*entity.Banner, error) {
	banner, err := s.banners.GetByID(ctx, bannerID)
	if err != nil {
		return nil, err
	}

	mutate(banner)

	if err := s.banners.Save(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// UpdateMedia 更新单个横幅媒体槽位并改写媒体类型
func (s *Service) UpdateMedia(ctx context.Context, bannerID string, slot entity.BannerMediaSlot, media entity.Media) (*entity.Banner, error) {
	banner, err := s.banners.GetByID(ctx, bannerID)
	if err != nil {
		return nil, err
	}

	banner.MediaType = media.Type
	if err := s.banners.Save(ctx, banner); err != nil {
		return nil, err
	}

	name := entity.BannerMediaObjectName(bannerID, slot, media.Type)
	if err := s.blobs.Put(ctx, name, media.Data, media.ContentType()); err != nil {
		return nil, err
	}
	return banner, nil
}

// Delete 删除横幅记录，媒体对象随之移除
func (s *Service) Delete(ctx context.Context, bannerID string) error {
	banner, err := s.banners.GetByID(ctx, bannerID)
	if err != nil {
		return err
	}

	if err := s.banners.Delete(ctx, bannerID); err != nil {
		return err
	}

	for _, slot := range []entity.BannerMediaSlot{entity.SlotPCBanner, entity.SlotMobileBanner} {
		name := entity.BannerMediaObjectName(bannerID, slot, banner.MediaType)
		if err := s.blobs.Remove(ctx, name); err != nil {
			logger.Warn(ctx, "banner media remove failed", "object", name, "error", err)
		}
	}
	return nil
}
