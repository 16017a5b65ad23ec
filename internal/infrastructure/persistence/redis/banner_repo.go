package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"store-backoffice/internal/domain/entity"
	apperrors "store-backoffice/pkg/errors"
)

const (
	bannerKeyPrefix = "banner:"
	bannerIDsKey    = "banner:ids"
)

// BannerRepository 横幅仓储实现，记录整体存放在 Redis：
// banner:{id} 保存 JSON 序列化的横幅，banner:ids 集合维护全部 ID。
type BannerRepository struct {
	client *Client
}

// NewBannerRepository 创建横幅仓储
func NewBannerRepository(client *Client) *BannerRepository {
	return &BannerRepository{client: client}
}

// GetByID 根据 ID 获取横幅
func (r *BannerRepository) GetByID(ctx context.Context, bannerID string) (*entity.Banner, error) {
	ctx, span := tracer.Start(ctx, "redis.BannerRepository.GetByID",
		trace.WithAttributes(attribute.String("banner.id", bannerID)))
	defer span.End()

	data, err := r.client.Get(ctx, bannerKeyPrefix+bannerID)
	if err != nil {
		if IsNil(err) {
			return nil, apperrors.ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to get banner: %w", err)
	}

	var banner entity.Banner
	if err := json.Unmarshal([]byte(data), &banner); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to unmarshal banner: %w", err)
	}
	return &banner, nil
}

// GetAll 获取全部横幅
func (r *BannerRepository) GetAll(ctx context.Context) ([]entity.Banner, error) {
	ctx, span := tracer.Start(ctx, "redis.BannerRepository.GetAll")
	defer span.End()

	ids, err := r.client.SMembers(ctx, bannerIDsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get banner ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, apperrors.ErrBannersNotFound
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, bannerKeyPrefix+id)
	}

	values, err := r.client.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to get banners: %w", err)
	}

	banners := make([]entity.Banner, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// ID 集合中的陈旧条目，顺手清理
			if err := r.client.SRem(ctx, bannerIDsKey, ids[i]); err != nil {
				span.RecordError(err)
			}
			continue
		}

		var banner entity.Banner
		if err := json.Unmarshal([]byte(raw), &banner); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to unmarshal banner: %w", err)
		}
		banners = append(banners, banner)
	}

	if len(banners) == 0 {
		return nil, apperrors.ErrBannersNotFound
	}
	return banners, nil
}

// Save 写入横幅记录并登记 ID
func (r *BannerRepository) Save(ctx context.Context, banner *entity.Banner) error {
	ctx, span := tracer.Start(ctx, "redis.BannerRepository.Save",
		trace.WithAttributes(attribute.String("banner.id", banner.ID)))
	defer span.End()

	data, err := json.Marshal(banner)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to marshal banner: %w", err)
	}

	if err := r.client.SetAndRegister(ctx, bannerKeyPrefix+banner.ID, data, bannerIDsKey, banner.ID); err != nil {
		return fmt.Errorf("failed to save banner: %w", err)
	}
	return nil
}

// Delete 删除横幅记录并注销 ID
func (r *BannerRepository) Delete(ctx context.Context, bannerID string) error {
	ctx, span := tracer.Start(ctx, "redis.BannerRepository.Delete",
		trace.WithAttributes(attribute.String("banner.id", bannerID)))
	defer span.End()

	removed, err := r.client.Del(ctx, bannerKeyPrefix+bannerID)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if removed == 0 {
		return apperrors.ErrBannerNotFound
	}

	if err := r.client.SRem(ctx, bannerIDsKey, bannerID); err != nil {
		return fmt.Errorf("failed to unregister banner id: %w", err)
	}
	return nil
}
