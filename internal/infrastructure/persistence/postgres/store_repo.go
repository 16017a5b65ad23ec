// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
	apperrors "store-backoffice/pkg/errors"
)

// StoreRepository 店铺仓储实现
type StoreRepository struct {
	client *Client
}

// NewStoreRepository 创建店铺仓储
func NewStoreRepository(client *Client) *StoreRepository {
	return &StoreRepository{client: client}
}

const storeColumns = `id, title, description, preview_media_type, main_media_type, main_page_url, display_priority`

// GetByID 根据 ID 获取店铺
func (r *StoreRepository) GetByID(ctx context.Context, storeID string) (*entity.Store, error) {
	ctx, span := tracer.Start(ctx, "postgres.StoreRepository.GetByID")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := fmt.Sprintf(`SELECT %s FROM stores WHERE id = $1`, storeColumns)

	store, err := r.scanStore(q.QueryRowContext(ctx, query, storeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStoreNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return store, nil
}

// GetDetails 获取店铺详情（含城市、类目与附加链接）
func (r *StoreRepository) GetDetails(ctx context.Context, storeID string) (*entity.StoreDetails, error) {
	ctx, span := tracer.Start(ctx, "postgres.StoreRepository.GetDetails")
	defer span.End()

	store, err := r.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	q := getQuerier(ctx, r.client.db)
	details := &entity.StoreDetails{Store: *store}

	cityQuery := `
		SELECT c.title
		FROM cities c
		JOIN stores_cities sc ON sc.city_id = c.id
		WHERE sc.store_id = $1
		ORDER BY c.title ASC
	`
	if err := r.queryTitles(ctx, q, cityQuery, storeID, &details.Cities); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get store cities: %w", err)
	}

	categoryQuery := `
		SELECT g.title
		FROM categories g
		JOIN stores_categories sg ON sg.category_id = g.id
		WHERE sg.store_id = $1
		ORDER BY g.title ASC
	`
	if err := r.queryTitles(ctx, q, categoryQuery, storeID, &details.Categories); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get store categories: %w", err)
	}

	resourceQuery := `
		SELECT id, title, target_url, store_id
		FROM store_resources
		WHERE store_id = $1
		ORDER BY title ASC
	`
	rows, err := q.QueryContext(ctx, resourceQuery, storeID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get store resources: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var res entity.StoreResource
		if err := rows.Scan(&res.ID, &res.Title, &res.TargetURL, &res.StoreID); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan store resource: %w", err)
		}
		details.Resources = append(details.Resources, res)
	}

	return details, nil
}

// GetAll 获取全部店铺，按展示优先级降序
func (r *StoreRepository) GetAll(ctx context.Context) ([]entity.Store, error) {
	ctx, span := tracer.Start(ctx, "postgres.StoreRepository.GetAll")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM stores
		ORDER BY display_priority DESC
	`, storeColumns)

	stores, err := r.queryStores(ctx, q, query)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(stores) == 0 {
		return nil, apperrors.ErrStoresNotFound
	}
	return stores, nil
}

// GetByFilter 按标题、城市、类目过滤店铺
func (r *StoreRepository) GetByFilter(ctx context.Context, filter repository.StoreFilter) ([]entity.Store, error) {
	ctx, span := tracer.Start(ctx, "postgres.StoreRepository.GetByFilter")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		SELECT DISTINCT s.id, s.title, s.description, s.preview_media_type,
			s.main_media_type, s.main_page_url, s.display_priority
		FROM stores s
		LEFT JOIN stores_cities sc ON sc.store_id = s.id
		LEFT JOIN cities c ON c.id = sc.city_id
		LEFT JOIN stores_categories sg ON sg.store_id = s.id
		LEFT JOIN categories g ON g.id = sg.category_id
		WHERE ($1 = '' OR s.title ILIKE '%' || $1 || '%')
			AND ($2 = '' OR c.title ILIKE '%' || $2 || '%')
			AND (cardinality($3::text[]) = 0 OR g.title = ANY($3))
		ORDER BY s.display_priority DESC
	`

	categoryTitles := filter.CategoryTitles
	if categoryTitles == nil {
		categoryTitles = []string{}
	}

	stores, err := r.queryStores(ctx, q, query, filter.StoreTitle, filter.CityTitle, pq.Array(categoryTitles))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(stores) == 0 {
		return nil, apperrors.ErrStoresNotFoundByFilters
	}
	return stores, nil
}

// Create 创建店铺
func (r *StoreRepository) Create(ctx context.Context, store *entity.Store) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreRepository.Create")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := fmt.Sprintf(`
		INSERT INTO stores (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, storeColumns)

	_, err := q.ExecContext(ctx, query,
		store.ID, store.Title, store.Description,
		string(store.PreviewMediaType), string(store.MainMediaType),
		store.MainPageURL, store.DisplayPriority,
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// Update 更新店铺
func (r *StoreRepository) Update(ctx context.Context, store *entity.Store) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreRepository.Update")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		UPDATE stores
		SET title = $1, description = $2, preview_media_type = $3,
			main_media_type = $4, main_page_url = $5, display_priority = $6
		WHERE id = $7
	`

	result, err := q.ExecContext(ctx, query,
		store.Title, store.Description,
		string(store.PreviewMediaType), string(store.MainMediaType),
		store.MainPageURL, store.DisplayPriority, store.ID,
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update store: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return apperrors.ErrStoreNotFound
	}
	return nil
}

// Delete 删除店铺，关联与附加链接级联删除
func (r *StoreRepository) Delete(ctx context.Context, storeID string) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreRepository.Delete")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	result, err := q.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, storeID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete store: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return apperrors.ErrStoreNotFound
	}
	return nil
}

// queryStores 通用查询店铺
func (r *StoreRepository) queryStores(ctx context.Context, q Querier, query string, args ...interface{}) ([]entity.Store, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	var stores []entity.Store
	for rows.Next() {
		store, err := r.scanStoreFromRows(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, *store)
	}
	return stores, rows.Err()
}

// queryTitles 查询单列标题
func (r *StoreRepository) queryTitles(ctx context.Context, q Querier, query, storeID string, dst *[]string) error {
	rows, err := q.QueryContext(ctx, query, storeID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return err
		}
		*dst = append(*dst, title)
	}
	return rows.Err()
}

// scanStore 扫描单行店铺数据
func (r *StoreRepository) scanStore(row *sql.Row) (*entity.Store, error) {
	var store entity.Store
	var previewType, mainType string

	err := row.Scan(
		&store.ID, &store.Title, &store.Description,
		&previewType, &mainType, &store.MainPageURL, &store.DisplayPriority,
	)
	if err != nil {
		return nil, err
	}

	store.PreviewMediaType = entity.MediaType(previewType)
	store.MainMediaType = entity.MediaType(mainType)
	return &store, nil
}

// scanStoreFromRows 从多行结果扫描
func (r *StoreRepository) scanStoreFromRows(rows *sql.Rows) (*entity.Store, error) {
	var store entity.Store
	var previewType, mainType string

	err := rows.Scan(
		&store.ID, &store.Title, &store.Description,
		&previewType, &mainType, &store.MainPageURL, &store.DisplayPriority,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan store row: %w", err)
	}

	store.PreviewMediaType = entity.MediaType(previewType)
	store.MainMediaType = entity.MediaType(mainType)
	return &store, nil
}
