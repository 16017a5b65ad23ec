package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"store-backoffice/internal/domain/entity"
	apperrors "store-backoffice/pkg/errors"
)

// StoreResourceRepository 店铺附加链接仓储实现
type StoreResourceRepository struct {
	client *Client
}

// NewStoreResourceRepository 创建店铺附加链接仓储
func NewStoreResourceRepository(client *Client) *StoreResourceRepository {
	return &StoreResourceRepository{client: client}
}

// GetByID 根据 ID 获取附加链接
func (r *StoreResourceRepository) GetByID(ctx context.Context, resourceID string) (*entity.StoreResource, error) {
	ctx, span := tracer.Start(ctx, "postgres.StoreResourceRepository.GetByID")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	var res entity.StoreResource
	err := q.QueryRowContext(ctx,
		`SELECT id, title, target_url, store_id FROM store_resources WHERE id = $1`, resourceID).
		Scan(&res.ID, &res.Title, &res.TargetURL, &res.StoreID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get store resource: %w", err)
	}
	return &res, nil
}

// ListByStore 获取店铺的全部附加链接
func (r *StoreResourceRepository) ListByStore(ctx context.Context, storeID string) ([]entity.StoreResource, error) {
	ctx, span := tracer.Start(ctx, "postgres.StoreResourceRepository.ListByStore")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		SELECT id, title, target_url, store_id
		FROM store_resources
		WHERE store_id = $1
		ORDER BY title ASC
	`

	rows, err := q.QueryContext(ctx, query, storeID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query store resources: %w", err)
	}
	defer rows.Close()

	var resources []entity.StoreResource
	for rows.Next() {
		var res entity.StoreResource
		if err := rows.Scan(&res.ID, &res.Title, &res.TargetURL, &res.StoreID); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan store resource row: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

// CreateBatch 批量创建附加链接
func (r *StoreResourceRepository) CreateBatch(ctx context.Context, resources []entity.StoreResource) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreResourceRepository.CreateBatch")
	defer span.End()

	if len(resources) == 0 {
		return nil
	}

	q := getQuerier(ctx, r.client.db)

	query := `INSERT INTO store_resources (id, title, target_url, store_id) VALUES ($1, $2, $3, $4)`
	for _, res := range resources {
		if _, err := q.ExecContext(ctx, query, res.ID, res.Title, res.TargetURL, res.StoreID); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to create store resource: %w", err)
		}
	}
	return nil
}

// Delete 删除附加链接
func (r *StoreResourceRepository) Delete(ctx context.Context, resourceID string) error {
	ctx, span := tracer.Start(ctx, "postgres.StoreResourceRepository.Delete")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	result, err := q.ExecContext(ctx, `DELETE FROM store_resources WHERE id = $1`, resourceID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete store resource: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
