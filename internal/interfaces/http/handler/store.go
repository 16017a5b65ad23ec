package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"store-backoffice/internal/application/store"
	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/domain/repository"
	"store-backoffice/internal/interfaces/http/dto"
)

// StoreHandler 店铺查询处理器
type StoreHandler struct {
	stores *store.Service
}

// NewStoreHandler 创建店铺查询处理器
func NewStoreHandler(stores *store.Service) *StoreHandler {
	return &StoreHandler{stores: stores}
}

// All 店铺分页列表
// @Summary 店铺分页列表
// @Tags Store
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.StoreListResponse
// @Router /store/all [get]
func (h *StoreHandler) All(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.stores.All(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreListResponse(result))
}

// ByID 店铺详情
// @Summary 店铺详情
// @Tags Store
// @Produce json
// @Param store_id query string true "店铺 ID"
// @Success 200 {object} dto.StoreDetailsResponse
// @Router /store/by-id [get]
func (h *StoreHandler) ByID(c *gin.Context) {
	storeID := c.Query("store_id")
	if storeID == "" {
		dto.Detail(c, http.StatusBadRequest, "store_id is required")
		return
	}

	details, err := h.stores.Details(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreDetailsResponse(details))
}

// MediaLink 店铺媒体临时链接
// @Summary 店铺媒体临时链接
// @Tags Store
// @Produce json
// @Param store_id query string true "店铺 ID"
// @Param slot query string true "媒体槽位：pc-preview、mobile-preview、pc-main、mobile-main"
// @Success 200 {object} dto.MediaLinkResponse
// @Router /store/media [get]
func (h *StoreHandler) MediaLink(c *gin.Context) {
	storeID := c.Query("store_id")
	if storeID == "" {
		dto.Detail(c, http.StatusBadRequest, "store_id is required")
		return
	}

	slot, ok := entity.ParseStoreMediaSlot(c.Query("slot"))
	if !ok {
		dto.Detail(c, http.StatusBadRequest, "invalid slot parameter")
		return
	}

	url, err := h.stores.MediaURL(c.Request.Context(), storeID, slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MediaLinkResponse{URL: url})
}

// ByFilters 按条件过滤店铺
// @Summary 按条件过滤店铺
// @Tags Store
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param store_title query string false "店铺标题，模糊匹配"
// @Param city_title query string false "城市标题，模糊匹配"
// @Param categories_title query string false "类目标题，逗号分隔"
// @Success 200 {object} dto.StoreListResponse
// @Router /store/by-filters [get]
func (h *StoreHandler) ByFilters(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	filter := repository.StoreFilter{
		StoreTitle: c.Query("store_title"),
		CityTitle:  c.Query("city_title"),
	}
	if raw := c.Query("categories_title"); raw != "" {
		for _, title := range strings.Split(raw, ",") {
			if title = strings.TrimSpace(title); title != "" {
				filter.CategoryTitles = append(filter.CategoryTitles, title)
			}
		}
	}

	result, err := h.stores.ByFilter(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreListResponse(result))
}
