package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-backoffice/internal/application/banner"
	"store-backoffice/internal/application/category"
	"store-backoffice/internal/application/city"
	"store-backoffice/internal/interfaces/http/dto"
)

// CityHandler 城市查询处理器
type CityHandler struct {
	cities *city.Service
}

// NewCityHandler 创建城市查询处理器
func NewCityHandler(cities *city.Service) *CityHandler {
	return &CityHandler{cities: cities}
}

// All 全部城市
// @Summary 全部城市
// @Tags City
// @Produce json
// @Success 200 {object} dto.CityListResponse
// @Router /city/all [get]
func (h *CityHandler) All(c *gin.Context) {
	cities, err := h.cities.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCityListResponse(cities))
}

// CategoryHandler 类目查询处理器
type CategoryHandler struct {
	categories *category.Service
}

// NewCategoryHandler 创建类目查询处理器
func NewCategoryHandler(categories *category.Service) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// All 全部类目
// @Summary 全部类目
// @Tags Category
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Router /category/all [get]
func (h *CategoryHandler) All(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// BannerHandler 横幅查询处理器
type BannerHandler struct {
	banners *banner.Service
}

// NewBannerHandler 创建横幅查询处理器
func NewBannerHandler(banners *banner.Service) *BannerHandler {
	return &BannerHandler{banners: banners}
}

// All 全部横幅
// @Summary 全部横幅
// @Tags Banner
// @Produce json
// @Success 200 {object} dto.BannerListResponse
// @Router /banner/all [get]
func (h *BannerHandler) All(c *gin.Context) {
	banners, err := h.banners.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBannerListResponse(banners))
}
