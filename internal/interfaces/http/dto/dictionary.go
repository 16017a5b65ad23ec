package dto

import (
	"store-backoffice/internal/domain/entity"
)

// CityItem 城市列表条目
type CityItem struct {
	City entity.City `json:"city"`
}

// CityListResponse 城市列表响应
type CityListResponse struct {
	Cities []CityItem `json:"cities"`
}

// NewCityListResponse 从城市列表构造响应
func NewCityListResponse(cities []entity.City) CityListResponse {
	items := make([]CityItem, 0, len(cities))
	for _, city := range cities {
		items = append(items, CityItem{City: city})
	}
	return CityListResponse{Cities: items}
}

// CategoryItem 类目列表条目
type CategoryItem struct {
	Category entity.Category `json:"category"`
}

// CategoryListResponse 类目列表响应
type CategoryListResponse struct {
	Categories []CategoryItem `json:"categories"`
}

// NewCategoryListResponse 从类目列表构造响应
func NewCategoryListResponse(categories []entity.Category) CategoryListResponse {
	items := make([]CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, CategoryItem{Category: category})
	}
	return CategoryListResponse{Categories: items}
}

// BannerListResponse 横幅列表响应
type BannerListResponse struct {
	Banners []entity.Banner `json:"banners"`
}

// NewBannerListResponse 从横幅列表构造响应
func NewBannerListResponse(banners []entity.Banner) BannerListResponse {
	if banners == nil {
		banners = []entity.Banner{}
	}
	return BannerListResponse{Banners: banners}
}
