package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
	apperrors "store-backoffice/pkg/errors"
)

type fakeStoreRepo struct {
	ids map[string]bool
}

func (r *fakeStoreRepo) GetByID(_ context.Context, storeID string) (*entity.Store, error) {
	if !r.ids[storeID] {
		return nil, apperrors.ErrStoreNotFound
	}
	return &entity.Store{ID: storeID}, nil
}

func (r *fakeStoreRepo) GetDetails(_ context.Context, _ string) (*entity.StoreDetails, error) {
	return nil, nil
}

func (r *fakeStoreRepo) GetAll(_ context.Context) ([]entity.Store, error) { return nil, nil }

func (r *fakeStoreRepo) GetByFilter(_ context.Context, _ repository.StoreFilter) ([]entity.Store, error) {
	return nil, nil
}

func (r *fakeStoreRepo) Create(_ context.Context, _ *entity.Store) error { return nil }
func (r *fakeStoreRepo) Update(_ context.Context, _ *entity.Store) error { return nil }
func (r *fakeStoreRepo) Delete(_ context.Context, _ string) error        { return nil }

type fakeResourceRepo struct {
	resources []entity.StoreResource
}

func (r *fakeResourceRepo) GetByID(_ context.Context, resourceID string) (*entity.StoreResource, error) {
	for _, res := range r.resources {
		if res.ID == resourceID {
			return &res, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (r *fakeResourceRepo) ListByStore(_ context.Context, storeID string) ([]entity.StoreResource, error) {
	var matched []entity.StoreResource
	for _, res := range r.resources {
		if res.StoreID == storeID {
			matched = append(matched, res)
		}
	}
	return matched, nil
}

func (r *fakeResourceRepo) CreateBatch(_ context.Context, resources []entity.StoreResource) error {
	r.resources = append(r.resources, resources...)
	return nil
}

func (r *fakeResourceRepo) Delete(_ context.Context, resourceID string) error {
	for i, res := range r.resources {
		if res.ID == resourceID {
			r.resources = append(r.resources[:i], r.resources[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func newFixture() (*Service, *fakeResourceRepo) {
	repo := &fakeResourceRepo{}
	service := NewService(&fakeStoreRepo{ids: map[string]bool{"s1": true}}, repo)
	return service, repo
}

func TestServiceAddBatch(t *testing.T) {
	service, repo := newFixture()
	ctx := context.Background()

	resources, err := service.AddBatch(ctx, "s1", "https://a.example.com | Menu\nhttps://b.example.com | Booking")
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "Menu", resources[0].Title)
	assert.Equal(t, "s1", resources[0].StoreID)
	assert.NotEmpty(t, resources[0].ID)
	assert.Len(t, repo.resources, 2)
}

func TestServiceAddBatchInvalidLine(t *testing.T) {
	service, repo := newFixture()
	ctx := context.Background()

	_, err := service.AddBatch(ctx, "s1", "https://a.example.com | Menu\nbroken line")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repo.resources)

	_, err = service.AddBatch(ctx, "missing", "https://a.example.com | Menu")
	assert.ErrorIs(t, err, apperrors.ErrStoreNotFound)
}

func TestServiceDelete(t *testing.T) {
	service, repo := newFixture()
	ctx := context.Background()

	repo.resources = []entity.StoreResource{
		{ID: "r1", Title: "Menu", TargetURL: "https://a.example.com", StoreID: "s1"},
		{ID: "r2", Title: "Booking", TargetURL: "https://b.example.com", StoreID: "s1"},
	}

	remaining, err := service.Delete(ctx, "s1", "r1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "r2", remaining[0].ID)

	_, err = service.Delete(ctx, "s1", "r1")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
