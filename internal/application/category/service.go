// Package category 实现类目字典用例
package category

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
	apperrors "store-backoffice/pkg/errors"
)

const maxTitleLength = 64

// Service 类目字典用例服务
type Service struct {
	categories repository.CategoryRepository
}

// NewService 创建类目字典用例服务
func NewService(categories repository.CategoryRepository) *Service {
	return &Service{categories: categories}
}

// Get 按 ID 获取类目
func (s *Service) Get(ctx context.Context, categoryID string) (*entity.Category, error) {
	return s.categories.GetByID(ctx, categoryID)
}

// List 返回全部类目
func (s *Service) List(ctx context.Context) ([]entity.Category, error) {
	return s.categories.GetAll(ctx)
}

// AddBatch 按行解析类目名并批量创建，任一行非法则整批拒绝
func (s *Service) AddBatch(ctx context.Context, text string) ([]entity.Category, error) {
	var categories []entity.Category
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		title := strings.TrimSpace(line)
		if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
			return nil, apperrors.ErrValidationFailed.WithDetail("invalid title line: " + line)
		}
		categories = append(categories, entity.Category{
			ID:    uuid.New().String(),
			Title: title,
		})
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrValidationFailed.WithDetail("empty title batch")
	}

	if err := s.categories.CreateBatch(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete 删除类目，级联摘除店铺关联
func (s *Service) Delete(ctx context.Context, categoryID string) error {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return err
	}
	return s.categories.Delete(ctx, categoryID)
}
