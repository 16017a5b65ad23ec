package storelink

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
	stores map[string]*entity.Store
}

func (r *fakeStoreRepo) GetByID(_ context.Context, storeID string) (*entity.Store, error) {
	store, ok := r.stores[storeID]
	if !ok {
		return nil, apperrors.ErrStoreNotFound
	}
	return store, nil
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

type fakeCityRepo struct {
	cities []entity.City
	links  *fakeCityLinkRepo
}

func (r *fakeCityRepo) GetByID(_ context.Context, cityID string) (*entity.City, error) {
	for _, city := range r.cities {
		if city.ID == cityID {
			return &city, nil
		}
	}
	return nil, apperrors.ErrCityNotFound
}

func (r *fakeCityRepo) GetAll(_ context.Context) ([]entity.City, error) { return r.cities, nil }

func (r *fakeCityRepo) GetStoreSelection(_ context.Context, storeID string) ([]entity.CitySelection, error) {
	selection := make([]entity.CitySelection, 0, len(r.cities))
	for _, city := range r.cities {
		linked := false
		for _, link := range r.links.links {
			if link.StoreID == storeID && link.CityID == city.ID {
				linked = true
				break
			}
		}
		selection = append(selection, entity.CitySelection{
			ID: city.ID, Title: city.Title, IsLinked: linked,
		})
	}
	return selection, nil
}

func (r *fakeCityRepo) CreateBatch(_ context.Context, cities []entity.City) error {
	r.cities = append(r.cities, cities...)
	return nil
}

func (r *fakeCityRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeCityLinkRepo struct {
	links []entity.StoreCity
}

func (r *fakeCityLinkRepo) Create(_ context.Context, link *entity.StoreCity) error {
	r.links = append(r.links, *link)
	return nil
}

func (r *fakeCityLinkRepo) CreateBatch(_ context.Context, links []entity.StoreCity) error {
	r.links = append(r.links, links...)
	return nil
}

func (r *fakeCityLinkRepo) DeleteByPair(_ context.Context, storeID, cityID string) error {
	for i, link := range r.links {
		if link.StoreID == storeID && link.CityID == cityID {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []entity.Category
	links      *fakeCategoryLinkRepo
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
	return r.categories, nil
}

func (r *fakeCategoryRepo) GetStoreSelection(_ context.Context, storeID string) ([]entity.CategorySelection, error) {
	selection := make([]entity.CategorySelection, 0, len(r.categories))
	for _, category := range r.categories {
		linked := false
		for _, link := range r.links.links {
			if link.StoreID == storeID && link.CategoryID == category.ID {
				linked = true
				break
			}
		}
		selection = append(selection, entity.CategorySelection{
			ID: category.ID, Title: category.Title, IsLinked: linked,
		})
	}
	return selection, nil
}

func (r *fakeCategoryRepo) CreateBatch(_ context.Context, categories []entity.Category) error {
	r.categories = append(r.categories, categories...)
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeCategoryLinkRepo struct {
	links []entity.StoreCategory
}

func (r *fakeCategoryLinkRepo) Create(_ context.Context, link *entity.StoreCategory) error {
	r.links = append(r.links, *link)
	return nil
}

func (r *fakeCategoryLinkRepo) CreateBatch(_ context.Context, links []entity.StoreCategory) error {
	r.links = append(r.links, links...)
	return nil
}

func (r *fakeCategoryLinkRepo) DeleteByPair(_ context.Context, storeID, categoryID string) error {
	for i, link := range r.links {
		if link.StoreID == storeID && link.CategoryID == categoryID {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return nil
}

func newFixture() (*Service, *fakeCityLinkRepo, *fakeCategoryLinkRepo) {
	cityLinks := &fakeCityLinkRepo{}
	categoryLinks := &fakeCategoryLinkRepo{}
	stores := &fakeStoreRepo{stores: map[string]*entity.Store{
		"s1": {ID: "s1", Title: "Shop"},
	}}
	cities := &fakeCityRepo{
		cities: []entity.City{{ID: "c1", Title: "Riga"}, {ID: "c2", Title: "Tallinn"}},
		links:  cityLinks,
	}
	categories := &fakeCategoryRepo{
		categories: []entity.Category{{ID: "g1", Title: "Food"}},
		links:      categoryLinks,
	}
	return NewService(stores, cities, categories, cityLinks, categoryLinks), cityLinks, categoryLinks
}

func TestServiceLinkUnlinkCity(t *testing.T) {
	service, cityLinks, _ := newFixture()
	ctx := context.Background()

	selection, err := service.LinkCity(ctx, "s1", "c1")
	require.NoError(t, err)
	require.Len(t, cityLinks.links, 1)
	assert.NotEmpty(t, cityLinks.links[0].ID)
	assert.True(t, selection[0].IsLinked)
	assert.False(t, selection[1].IsLinked)

	selection, err = service.UnlinkCity(ctx, "s1", "c1")
	require.NoError(t, err)
	assert.Empty(t, cityLinks.links)
	assert.False(t, selection[0].IsLinked)
}

func TestServiceLinkCityUnknown(t *testing.T) {
	service, cityLinks, _ := newFixture()

	_, err := service.LinkCity(context.Background(), "s1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrCityNotFound)
	assert.Empty(t, cityLinks.links)
}

func TestServiceLinkCategory(t *testing.T) {
	service, _, categoryLinks := newFixture()
	ctx := context.Background()

	selection, err := service.LinkCategory(ctx, "s1", "g1")
	require.NoError(t, err)
	require.Len(t, categoryLinks.links, 1)
	assert.True(t, selection[0].IsLinked)
}

func TestServiceSelectionUnknownStore(t *testing.T) {
	service, _, _ := newFixture()

	_, err := service.CitySelection(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrStoreNotFound)
}
