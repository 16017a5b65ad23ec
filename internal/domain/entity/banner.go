package entity

// Banner 首页横幅
type Banner struct {
	ID              string    `json:"id"`
	MediaType       MediaType `json:"media_type"`
	TargetURL       string    `json:"target_url"`
	DisplayPriority int       `json:"display_priority"`
}
