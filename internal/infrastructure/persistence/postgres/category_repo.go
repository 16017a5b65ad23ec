package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"store-backoffice/internal/domain/entity"
	apperrors "store-backoffice/pkg/errors"
)

// CategoryRepository 类目仓储实现
type CategoryRepository struct {
	client *Client
}

// NewCategoryRepository 创建类目仓储
func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

// GetByID 根据 ID 获取类目
func (r *CategoryRepository) GetByID(ctx context.Context, categoryID string) (*entity.Category, error) {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.GetByID")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	var category entity.Category
	err := q.QueryRowContext(ctx, `SELECT id, title FROM categories WHERE id = $1`, categoryID).
		Scan(&category.ID, &category.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetAll 获取全部类目，按标题排序
func (r *CategoryRepository) GetAll(ctx context.Context) ([]entity.Category, error) {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.GetAll")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	rows, err := q.QueryContext(ctx, `SELECT id, title FROM categories ORDER BY title ASC`)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Title); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrCategoriesNotFound
	}
	return categories, nil
}

// GetStoreSelection 获取带关联标记的类目列表
func (r *CategoryRepository) GetStoreSelection(ctx context.Context, storeID string) ([]entity.CategorySelection, error) {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.GetStoreSelection")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		SELECT g.id, g.title, sg.id IS NOT NULL AS is_linked
		FROM categories g
		LEFT JOIN stores_categories sg ON sg.category_id = g.id AND sg.store_id = $1
		ORDER BY g.title ASC
	`

	rows, err := q.QueryContext(ctx, query, storeID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query category selection: %w", err)
	}
	defer rows.Close()

	var selection []entity.CategorySelection
	for rows.Next() {
		var item entity.CategorySelection
		if err := rows.Scan(&item.ID, &item.Title, &item.IsLinked); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan category selection row: %w", err)
		}
		selection = append(selection, item)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to iterate category selection: %w", err)
	}
	if len(selection) == 0 {
		return nil, apperrors.ErrCategoriesNotFound
	}
	return selection, nil
}

// CreateBatch 批量创建类目
func (r *CategoryRepository) CreateBatch(ctx context.Context, categories []entity.Category) error {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.CreateBatch")
	defer span.End()

	if len(categories) == 0 {
		return nil
	}

	q := getQuerier(ctx, r.client.db)

	query := `INSERT INTO categories (id, title) VALUES ($1, $2)`
	for _, category := range categories {
		if _, err := q.ExecContext(ctx, query, category.ID, category.Title); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to create category: %w", err)
		}
	}
	return nil
}

// Delete 删除类目，店铺关联级联删除
func (r *CategoryRepository) Delete(ctx context.Context, categoryID string) error {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.Delete")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	result, err := q.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
