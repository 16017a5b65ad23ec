// Package city 实现城市字典用例
package city

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

// Service 城市字典用例服务
type Service struct {
	cities repository.CityRepository
}

// NewService 创建城市字典用例服务
func NewService(cities repository.CityRepository) *Service {
	return &Service{cities: cities}
}

// Get 按 ID 获取城市
func (s *Service) Get(ctx context.Context, cityID string) (*entity.City, error) {
	return s.cities.GetByID(ctx, cityID)
}

// List 返回全部城市
func (s *Service) List(ctx context.Context) ([]entity.City, error) {
	return s.cities.GetAll(ctx)
}

// AddBatch 按行解析城市名并批量创建，任一行非法则整批拒绝
func (s *Service) AddBatch(ctx context.Context, text string) ([]entity.City, error) {
	titles, err := parseTitles(text)
	if err != nil {
		return nil, err
	}

	cities := make([]entity.City, 0, len(titles))
	for _, title := range titles {
		cities = append(cities, entity.City{
			ID:    uuid.New().String(),
			Title: title,
		})
	}

	if err := s.cities.CreateBatch(ctx, cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// Delete 删除城市，级联摘除店铺关联
func (s *Service) Delete(ctx context.Context, cityID string) error {
	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		return err
	}
	return s.cities.Delete(ctx, cityID)
}

// parseTitles 把按行分隔的输入解析成合法标题列表
func parseTitles(text string) ([]string, error) {
	var titles []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		title := strings.TrimSpace(line)
		if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
			return nil, apperrors.ErrValidationFailed.WithDetail("invalid title line: " + line)
		}
		titles = append(titles, title)
	}
	if len(titles) == 0 {
		return nil, apperrors.ErrValidationFailed.WithDetail("empty title batch")
	}
	return titles, nil
}
