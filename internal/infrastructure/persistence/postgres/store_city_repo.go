package postgres

import (
	"context"
	"fmt"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
)

var _ repository.StoreCityRepository = (*StoreCityRepository)(nil)

// StoreCityRepository 店铺城市关联仓储实现
type StoreCityRepository struct {
	client *Client
}

// NewStoreCityRepository 创建店铺城市关联仓储
func NewStoreCityRepository(client *Client) *StoreCityRepository {
	return &StoreCityRepository{client: client}
}

// Create 创建单条关联
func (r *StoreCityRepository) Create(ctx context.Context, link *entity.StoreCity) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreCityRepository.Create")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		INSERT INTO stores_cities (id, store_id, city_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_id, city_id) DO NOTHING
	`
	if _, err := q.ExecContext(ctx, query, link.ID, link.StoreID, link.CityID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create store city link: %w", err)
	}
	return nil
}

// CreateBatch 批量创建关联
func (r *StoreCityRepository) CreateBatch(ctx context.Context, links []entity.StoreCity) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreCityRepository.CreateBatch")
	defer span.End()

	for i := range links {
		if err := r.Create(ctx, &links[i]); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

// DeleteByPair 按店铺与城市删除关联
func (r *StoreCityRepository) DeleteByPair(ctx context.Context, storeID, cityID string) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreCityRepository.DeleteByPair")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `DELETE FROM stores_cities WHERE store_id = $1 AND city_id = $2`
	if _, err := q.ExecContext(ctx, query, storeID, cityID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete store city link: %w", err)
	}
	return nil
}
