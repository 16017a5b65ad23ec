package postgres

import (
	"context"
	"fmt"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
)

var _ repository.StoreCategoryRepository = (*StoreCategoryRepository)(nil)

// StoreCategoryRepository 店铺类目关联仓储实现
type StoreCategoryRepository struct {
	client *Client
}

// NewStoreCategoryRepository 创建店铺类目关联仓储
func NewStoreCategoryRepository(client *Client) *StoreCategoryRepository {
	return &StoreCategoryRepository{client: client}
}

// Create 创建单条关联
func (r *StoreCategoryRepository) Create(ctx context.Context, link *entity.StoreCategory) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreCategoryRepository.Create")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		INSERT INTO stores_categories (id, store_id, category_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_id, category_id) DO NOTHING
	`
	if _, err := q.ExecContext(ctx, query, link.ID, link.StoreID, link.CategoryID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create store category link: %w", err)
	}
	return nil
}

// CreateBatch 批量创建关联
func (r *StoreCategoryRepository) CreateBatch(ctx context.Context, links []entity.StoreCategory) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreCategoryRepository.CreateBatch")
	defer span.End()

	for i := range links {
		if err := r.Create(ctx, &links[i]); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

// DeleteByPair 按店铺与类目删除关联
func (r *StoreCategoryRepository) DeleteByPair(ctx context.Context, storeID, categoryID string) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreCategoryRepository.DeleteByPair")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `DELETE FROM stores_categories WHERE store_id = $1 AND category_id = $2`
	if _, err := q.ExecContext(ctx, query, storeID, categoryID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete store category link: %w", err)
	}
	return nil
}
