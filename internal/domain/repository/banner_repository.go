package repository

import (
	"context"

	"store-backoffice/internal/domain/entity"
)

// BannerRepository 横幅仓储接口
type BannerRepository interface {
	// GetByID 按 ID 获取横幅，不存在时返回 ErrBannerNotFound
	GetByID(ctx context.Context, bannerID string) (*entity.Banner, error)
	// GetAll 返回全部横幅，为空时返回 ErrBannersNotFound
	GetAll(ctx context.Context) ([]entity.Banner, error)
	// Save 写入横幅（创建或覆盖）
	Save(ctx context.Context, banner *entity.Banner) error
	// Delete 删除横幅
	Delete(ctx context.Context, bannerID string) error
}
