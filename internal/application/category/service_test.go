package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-backoffice/internal/domain/entity"
	apperrors "store-backoffice/pkg/errors"
)

type fakeCategoryRepo struct {
	categories []entity.Category
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, categoryID string) (*entity.Category, error) {
	for _, category := range r.categories {
		if category.ID == categoryID {
			return &category, nil
		}
	}
	return nil, apperrors.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) GetAll(_ context.Context) ([]entity.Category, error) {
	if len(r.categories) == 0 {
		return nil, apperrors.ErrCategoriesNotFound
	}
	return r.categories, nil
}

func (r *fakeCategoryRepo) GetStoreSelection(_ context.Context, _ string) ([]entity.CategorySelection, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) CreateBatch(_ context.Context, categories []entity.Category) error {
	r.categories = append(r.categories, categories...)
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, categoryID string) error {
	for i, category := range r.categories {
		if category.ID == categoryID {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCategoryNotFound
}

func TestServiceAddBatch(t *testing.T) {
	repo := &fakeCategoryRepo{}
	service := NewService(repo)
	ctx := context.Background()

	categories, err := service.AddBatch(ctx, "Food\nElectronics")
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[1].Title)

	_, err = service.AddBatch(ctx, "Food\n ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Len(t, repo.categories, 2)
}

func TestServiceListEmpty(t *testing.T) {
	service := NewService(&fakeCategoryRepo{})

	_, err := service.List(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrCategoriesNotFound)
}
