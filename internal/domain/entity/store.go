package entity

// Store 店铺
type Store struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	PreviewMediaType MediaType `json:"preview_media_type"`
	MainMediaType    MediaType `json:"main_media_type"`
	MainPageURL      string    `json:"main_page_url"`
	DisplayPriority  int       `json:"display_priority"`
}

// StoreDetails 店铺及其全部关联数据，城市与类目仅保留标题
type StoreDetails struct {
	Store      Store
	Cities     []string
	Categories []string
	Resources  []StoreResource
}
