package banner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-backoffice/internal/domain/entity"
	apperrors "store-backoffice/pkg/errors"
)

type fakeBannerRepo struct {
	banners map[string]*entity.Banner
}

func newFakeBannerRepo() *fakeBannerRepo {
	return &fakeBannerRepo{banners: make(map[string]*entity.Banner)}
}

func (r *fakeBannerRepo) GetByID(_ context.Context, bannerID string) (*entity.Banner, error) {
	banner, ok := r.banners[bannerID]
	if !ok {
		return nil, apperrors.ErrBannerNotFound
	}
	clone := *banner
	return &clone, nil
}

func (r *fakeBannerRepo) GetAll(_ context.Context) ([]entity.Banner, error) {
	if len(r.banners) == 0 {
		return nil, apperrors.ErrBannersNotFound
	}
	banners := make([]entity.Banner, 0, len(r.banners))
	for _, banner := range r.banners {
		banners = append(banners, *banner)
	}
	return banners, nil
}

func (r *fakeBannerRepo) Save(_ context.Context, banner *entity.Banner) error {
	clone := *banner
	r.banners[banner.ID] = &clone
	return nil
}

func (r *fakeBannerRepo) Delete(_ context.Context, bannerID string) error {
	if _, ok := r.banners[bannerID]; !ok {
		return apperrors.ErrBannerNotFound
	}
	delete(r.banners, bannerID)
	return nil
}

type fakeBlobStore struct {
	objects map[string]string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string]string)}
}

func (b *fakeBlobStore) Put(_ context.Context, objectName string, _ []byte, contentType string) error {
	b.objects[objectName] = contentType
	return nil
}

func (b *fakeBlobStore) Remove(_ context.Context, objectName string) error {
	delete(b.objects, objectName)
	return nil
}

func (b *fakeBlobStore) PresignedURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://blobs.local/" + objectName, nil
}

func TestServiceSave(t *testing.T) {
	repo := newFakeBannerRepo()
	blobs := newFakeBlobStore()
	service := NewService(repo, blobs)
	ctx := context.Background()

	bannerID, err := service.Save(ctx, SaveInput{
		TargetURL: "https://promo.example.com",
		PC:        entity.Media{Data: []byte{0x01}, Type: entity.MediaPNG},
		Mobile:    entity.Media{Data: []byte{0x02}, Type: entity.MediaPNG},
		Priority:  3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, bannerID)

	saved, err := service.Get(ctx, bannerID)
	require.NoError(t, err)
	assert.Equal(t, "https://promo.example.com", saved.TargetURL)
	assert.Equal(t, entity.MediaPNG, saved.MediaType)

	assert.Equal(t, "image/png", blobs.objects[bannerID+"-pc-banner.png"])
	assert.Equal(t, "image/png", blobs.objects[bannerID+"-mobile-banner.png"])
}

func TestServiceAllSortedByPriority(t *testing.T) {
	repo := newFakeBannerRepo()
	service := NewService(repo, newFakeBlobStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Banner{ID: "b1", DisplayPriority: 1}))
	require.NoError(t, repo.Save(ctx, &entity.Banner{ID: "b2", DisplayPriority: 7}))
	require.NoError(t, repo.Save(ctx, &entity.Banner{ID: "b3", DisplayPriority: 4}))

	banners, err := service.All(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 3)
	assert.Equal(t, "b2", banners[0].ID)
	assert.Equal(t, "b1", banners[2].ID)
}

func TestServiceUpdateAndDelete(t *testing.T) {
	repo := newFakeBannerRepo()
	blobs := newFakeBlobStore()
	service := NewService(repo, blobs)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Banner{
		ID: "b1", MediaType: entity.MediaPNG, TargetURL: "https://old.example.com",
	}))
	blobs.objects["b1-pc-banner.png"] = "image/png"
	blobs.objects["b1-mobile-banner.png"] = "image/png"

	banner, err := service.UpdateTargetURL(ctx, "b1", "https://new.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", banner.TargetURL)

	banner, err = service.UpdateMedia(ctx, "b1", entity.SlotPCBanner, entity.Media{
		Data: []byte{0x00}, Type: entity.MediaGIF,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MediaGIF, banner.MediaType)
	assert.Equal(t, "video/mp4", blobs.objects["b1-pc-banner.mp4"])

	require.NoError(t, service.Delete(ctx, "b1"))
	_, err = service.Get(ctx, "b1")
	assert.ErrorIs(t, err, apperrors.ErrBannerNotFound)

	err = service.Delete(ctx, "b1")
	assert.ErrorIs(t, err, apperrors.ErrBannerNotFound)
}

func TestServiceAllEmpty(t *testing.T) {
	service := NewService(newFakeBannerRepo(), newFakeBlobStore())

	_, err := service.All(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrBannersNotFound)
}
