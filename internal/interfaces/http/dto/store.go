package dto

import (
	"store-backoffice/internal/application/pagination"
	"store-backoffice/internal/domain/entity"
)

// StoreListResponse 店铺分页响应
type StoreListResponse struct {
	Total  int            `json:"total"`
	Size   int            `json:"size"`
	Stores []entity.Store `json:"stores"`
}

// NewStoreListResponse 从分页结果构造响应
func NewStoreListResponse(page pagination.Page[entity.Store]) StoreListResponse {
	stores := page.Items
	if stores == nil {
		stores = []entity.Store{}
	}
	return StoreListResponse{
		Total:  page.Total,
		Size:   len(stores),
		Stores: stores,
	}
}

// MediaLinkResponse 媒体临时链接响应
type MediaLinkResponse struct {
	URL string `json:"url"`
}

// StoreResourceItem 店铺附加链接条目
type StoreResourceItem struct {
	Title     string `json:"title"`
	TargetURL string `json:"target_url"`
}

// StoreDetailsResponse 店铺详情响应
type StoreDetailsResponse struct {
	Store      entity.Store        `json:"store"`
	Cities     []string            `json:"cities"`
	Categories []string            `json:"categories"`
	Resources  []StoreResourceItem `json:"resources"`
}

// NewStoreDetailsResponse 从详情实体构造响应
func NewStoreDetailsResponse(details *entity.StoreDetails) StoreDetailsResponse {
	resp := StoreDetailsResponse{
		Store:      details.Store,
		Cities:     details.Cities,
		Categories: details.Categories,
		Resources:  make([]StoreResourceItem, 0, len(details.Resources)),
	}
	if resp.Cities == nil {
		resp.Cities = []string{}
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	for _, res := range details.Resources {
		resp.Resources = append(resp.Resources, StoreResourceItem{
			Title:     res.Title,
			TargetURL: res.TargetURL,
		})
	}
	return resp
}
