package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"store-backoffice/internal/domain/entity"
	apperrors "store-backoffice/pkg/errors"
)

// CityRepository 城市仓储实现
type CityRepository struct {
	client *Client
}

// NewCityRepository 创建城市仓储
func NewCityRepository(client *Client) *CityRepository {
	return &CityRepository{client: client}
}

// GetByID 根据 ID 获取城市
func (r *CityRepository) GetByID(ctx context.Context, cityID string) (*entity.City, error) {
	ctx, span := tracer.Start(ctx, "postgres.CityRepository.GetByID")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	var city entity.City
	err := q.QueryRowContext(ctx, `SELECT id, title FROM cities WHERE id = $1`, cityID).
		Scan(&city.ID, &city.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrCityNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	return &city, nil
}

// GetAll 获取全部城市，按标题排序
func (r *CityRepository) GetAll(ctx context.Context) ([]entity.City, error) {
	ctx, span := tracer.Start(ctx, "postgres.CityRepository.GetAll")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	rows, err := q.QueryContext(ctx, `SELECT id, title FROM cities ORDER BY title ASC`)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []entity.City
	for rows.Next() {
		var city entity.City
		if err := rows.Scan(&city.ID, &city.Title); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to iterate cities: %w", err)
	}
	if len(cities) == 0 {
		return nil, apperrors.ErrCitiesNotFound
	}
	return cities, nil
}

// GetStoreSelection 获取带关联标记的城市列表
func (r *CityRepository) GetStoreSelection(ctx context.Context, storeID string) ([]entity.CitySelection, error) {
	ctx, span := tracer.Start(ctx, "postgres.CityRepository.GetStoreSelection")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		SELECT c.id, c.title, sc.id IS NOT NULL AS is_linked
		FROM cities c
		LEFT JOIN stores_cities sc ON sc.city_id = c.id AND sc.store_id = $1
		ORDER BY c.title ASC
	`

	rows, err := q.QueryContext(ctx, query, storeID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query city selection: %w", err)
	}
	defer rows.Close()

	var selection []entity.CitySelection
	for rows.Next() {
		var item entity.CitySelection
		if err := rows.Scan(&item.ID, &item.Title, &item.IsLinked); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan city selection row: %w", err)
		}
		selection = append(selection, item)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to iterate city selection: %w", err)
	}
	if len(selection) == 0 {
		return nil, apperrors.ErrCitiesNotFound
	}
	return selection, nil
}

// CreateBatch 批量创建城市
func (r *CityRepository) CreateBatch(ctx context.Context, cities []entity.City) error {
	ctx, span := tracer.Start(ctx, "postgres.CityRepository.CreateBatch")
	defer span.End()

	if len(cities) == 0 {
		return nil
	}

	q := getQuerier(ctx, r.client.db)

	query := `INSERT INTO cities (id, title) VALUES ($1, $2)`
	for _, city := range cities {
		if _, err := q.ExecContext(ctx, query, city.ID, city.Title); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to create city: %w", err)
		}
	}
	return nil
}

// Delete 删除城市，店铺关联级联删除
func (r *CityRepository) Delete(ctx context.Context, cityID string) error {
	ctx, span := tracer.Start(ctx, "postgres.CityRepository.Delete")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	result, err := q.ExecContext(ctx, `DELETE FROM cities WHERE id = $1`, cityID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete city: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return apperrors.ErrCityNotFound
	}
	return nil
}
