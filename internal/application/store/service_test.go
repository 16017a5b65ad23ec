package store

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
	apperrors "store-backoffice/pkg/errors"
)

type fakeStoreRepo struct {
	stores  map[string]*entity.Store
	details map[string]*entity.StoreDetails
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{
		stores:  make(map[string]*entity.Store),
		details: make(map[string]*entity.StoreDetails),
	}
}

func (r *fakeStoreRepo) GetByID(_ context.Context, storeID string) (*entity.Store, error) {
	store, ok := r.stores[storeID]
	if !ok {
		return nil, apperrors.ErrStoreNotFound
	}
	clone := *store
	return &clone, nil
}

func (r *fakeStoreRepo) GetDetails(_ context.Context, storeID string) (*entity.StoreDetails, error) {
	store, ok := r.stores[storeID]
	if !ok {
		return nil, apperrors.ErrStoreNotFound
	}
	details := r.details[storeID]
	if details == nil {
		details = &entity.StoreDetails{}
	}
	details.Store = *store
	return details, nil
}

func (r *fakeStoreRepo) GetAll(_ context.Context) ([]entity.Store, error) {
	if len(r.stores) == 0 {
		return nil, apperrors.ErrStoresNotFound
	}
	stores := make([]entity.Store, 0, len(r.stores))
	for _, store := range r.stores {
		stores = append(stores, *store)
	}
	sort.Slice(stores, func(i, j int) bool {
		return stores[i].DisplayPriority > stores[j].DisplayPriority
	})
	return stores, nil
}

func (r *fakeStoreRepo) GetByFilter(_ context.Context, filter repository.StoreFilter) ([]entity.Store, error) {
	var matched []entity.Store
	for _, store := range r.stores {
		if filter.StoreTitle != "" && store.Title != filter.StoreTitle {
			continue
		}
		matched = append(matched, *store)
	}
	if len(matched) == 0 {
		return nil, apperrors.ErrStoresNotFoundByFilters
	}
	return matched, nil
}

func (r *fakeStoreRepo) Create(_ context.Context, store *entity.Store) error {
	clone := *store
	r.stores[store.ID] = &clone
	return nil
}

func (r *fakeStoreRepo) Update(_ context.Context, store *entity.Store) error {
	if _, ok := r.stores[store.ID]; !ok {
		return apperrors.ErrStoreNotFound
	}
	clone := *store
	r.stores[store.ID] = &clone
	return nil
}

func (r *fakeStoreRepo) Delete(_ context.Context, storeID string) error {
	if _, ok := r.stores[storeID]; !ok {
		return apperrors.ErrStoreNotFound
	}
	delete(r.stores, storeID)
	return nil
}

type fakeCityRepo struct {
	cities []entity.City
}

func (r *fakeCityRepo) GetByID(_ context.Context, cityID string) (*entity.City, error) {
	for _, city := range r.cities {
		if city.ID == cityID {
			return &city, nil
		}
	}
	return nil, apperrors.ErrCityNotFound
}

func (r *fakeCityRepo) GetAll(_ context.Context) ([]entity.City, error) {
	if len(r.cities) == 0 {
		return nil, apperrors.ErrCitiesNotFound
	}
	return r.cities, nil
}

func (r *fakeCityRepo) GetStoreSelection(_ context.Context, _ string) ([]entity.CitySelection, error) {
	return nil, nil
}

func (r *fakeCityRepo) CreateBatch(_ context.Context, cities []entity.City) error {
	r.cities = append(r.cities, cities...)
	return nil
}

func (r *fakeCityRepo) Delete(_ context.Context, _ string) error { return nil }

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

func (r *fakeCategoryRepo) Delete(_ context.Context, _ string) error { return nil }

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

type fakeTransactor struct{}

func (fakeTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type storeFixture struct {
	service       *Service
	stores        *fakeStoreRepo
	cities        *fakeCityRepo
	categories    *fakeCategoryRepo
	cityLinks     *fakeCityLinkRepo
	categoryLinks *fakeCategoryLinkRepo
	resources     *fakeResourceRepo
	blobs         *fakeBlobStore
}

func newStoreFixture() *storeFixture {
	f := &storeFixture{
		stores:        newFakeStoreRepo(),
		cities:        &fakeCityRepo{},
		categories:    &fakeCategoryRepo{},
		cityLinks:     &fakeCityLinkRepo{},
		categoryLinks: &fakeCategoryLinkRepo{},
		resources:     &fakeResourceRepo{},
		blobs:         newFakeBlobStore(),
	}
	f.service = NewService(
		f.stores, f.cities, f.categories,
		f.cityLinks, f.categoryLinks, f.resources,
		f.blobs, fakeTransactor{},
	)
	return f
}

func pngMedia() entity.Media {
	return entity.Media{Data: []byte{0x89, 0x50, 0x4e, 0x47}, Type: entity.MediaPNG}
}

func TestServiceSave(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()

	storeID, err := f.service.Save(ctx, SaveInput{
		Title:       "Coffee Point",
		Description: "Specialty coffee",
		CityIDs:     []string{"city-1", "city-2"},
		CategoryIDs: []string{"cat-1"},
		MainPageURL: "https://coffee.example.com",
		Resources: []entity.StoreResource{
			{Title: "Menu", TargetURL: "https://coffee.example.com/menu"},
		},
		PreviewPC:     pngMedia(),
		PreviewMobile: pngMedia(),
		MainPC:        entity.Media{Data: []byte{0x00}, Type: entity.MediaGIF},
		MainMobile:    entity.Media{Data: []byte{0x00}, Type: entity.MediaGIF},
		Priority:      5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, storeID)

	saved, err := f.service.Get(ctx, storeID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Point", saved.Title)
	assert.Equal(t, entity.MediaPNG, saved.PreviewMediaType)
	assert.Equal(t, entity.MediaGIF, saved.MainMediaType)
	assert.Equal(t, 5, saved.DisplayPriority)

	assert.Len(t, f.cityLinks.links, 2)
	assert.Len(t, f.categoryLinks.links, 1)

	require.Len(t, f.resources.resources, 1)
	assert.Equal(t, storeID, f.resources.resources[0].StoreID)
	assert.NotEmpty(t, f.resources.resources[0].ID)

	assert.Equal(t, "image/png", f.blobs.objects[storeID+"-pc-preview.png"])
	assert.Equal(t, "image/png", f.blobs.objects[storeID+"-mobile-preview.png"])
	assert.Equal(t, "video/mp4", f.blobs.objects[storeID+"-pc-main.mp4"])
	assert.Equal(t, "video/mp4", f.blobs.objects[storeID+"-mobile-main.mp4"])
}

func TestServiceCanAdd(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()

	err := f.service.CanAdd(ctx)
	assert.ErrorIs(t, err, apperrors.ErrCitiesNotFound)

	f.cities.cities = []entity.City{{ID: "city-1", Title: "Riga"}}
	err = f.service.CanAdd(ctx)
	assert.ErrorIs(t, err, apperrors.ErrCategoriesNotFound)

	f.categories.categories = []entity.Category{{ID: "cat-1", Title: "Food"}}
	assert.NoError(t, f.service.CanAdd(ctx))
}

func TestServiceAllPagination(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()

	for i, title := range []string{"A", "B", "C"} {
		require.NoError(t, f.stores.Create(ctx, &entity.Store{
			ID: title, Title: title, DisplayPriority: i,
		}))
	}

	page, err := f.service.All(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "C", page.Items[0].Title)

	_, err = f.service.All(ctx, 1, 2)
	require.NoError(t, err)

	f.stores.stores = map[string]*entity.Store{}
	_, err = f.service.All(ctx, 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrStoresNotFound)
}

func TestServiceByFilterNoMatch(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()

	require.NoError(t, f.stores.Create(ctx, &entity.Store{ID: "s1", Title: "Coffee Point"}))

	_, err := f.service.ByFilter(ctx, repository.StoreFilter{StoreTitle: "Tea House"}, 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrStoresNotFoundByFilters)
}

func TestServiceUpdateFields(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()

	require.NoError(t, f.stores.Create(ctx, &entity.Store{ID: "s1", Title: "Old"}))

	details, err := f.service.UpdateTitle(ctx, "s1", "New")
	require.NoError(t, err)
	assert.Equal(t, "New", details.Store.Title)

	details, err = f.service.UpdatePriority(ctx, "s1", 9)
	require.NoError(t, err)
	assert.Equal(t, 9, details.Store.DisplayPriority)

	_, err = f.service.UpdateTitle(ctx, "missing", "X")
	assert.ErrorIs(t, err, apperrors.ErrStoreNotFound)
}

func TestServiceUpdateMedia(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()

	require.NoError(t, f.stores.Create(ctx, &entity.Store{
		ID: "s1", Title: "Shop",
		PreviewMediaType: entity.MediaPNG,
		MainMediaType:    entity.MediaPNG,
	}))

	details, err := f.service.UpdateMedia(ctx, "s1", entity.SlotPCMain, entity.Media{
		Data: []byte{0x00}, Type: entity.MediaGIF,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MediaGIF, details.Store.MainMediaType)
	assert.Equal(t, entity.MediaPNG, details.Store.PreviewMediaType)
	assert.Equal(t, "video/mp4", f.blobs.objects["s1-pc-main.mp4"])
}

func TestServiceDelete(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, f.stores.Create(ctx, &entity.Store{ID: id, Title: id}))
	}

	page, err := f.service.Delete(ctx, "s1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	_, err = f.service.Delete(ctx, "s1", 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrStoreNotFound)
}

func TestServiceMediaURL(t *testing.T) {
	f := newStoreFixture()
	ctx := context.Background()

	require.NoError(t, f.stores.Create(ctx, &entity.Store{
		ID:               "s1",
		Title:            "Coffee Point",
		PreviewMediaType: entity.MediaPNG,
		MainMediaType:    entity.MediaGIF,
	}))

	url, err := f.service.MediaURL(ctx, "s1", entity.SlotPCPreview)
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.local/s1-pc-preview.png", url)

	url, err = f.service.MediaURL(ctx, "s1", entity.SlotMobileMain)
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.local/s1-mobile-main.mp4", url)

	_, err = f.service.MediaURL(ctx, "missing", entity.SlotPCMain)
	assert.ErrorIs(t, err, apperrors.ErrStoreNotFound)
}
