// Package entity 定义领域实体
package entity

// MediaType 媒体文件扩展名
type MediaType string

const (
	MediaPNG MediaType = "png"
	MediaGIF MediaType = "mp4"
)

// StoreMediaSlot 店铺媒体槽位，决定对象存储中的文件名后缀
type StoreMediaSlot string

const (
	SlotPCPreview     StoreMediaSlot = "pc-preview"
	SlotMobilePreview StoreMediaSlot = "mobile-preview"
	SlotPCMain        StoreMediaSlot = "pc-main"
	SlotMobileMain    StoreMediaSlot = "mobile-main"
)

// ParseStoreMediaSlot 解析槽位名称
func ParseStoreMediaSlot(raw string) (StoreMediaSlot, bool) {
	switch slot := StoreMediaSlot(raw); slot {
	case SlotPCPreview, SlotMobilePreview, SlotPCMain, SlotMobileMain:
		return slot, true
	default:
		return "", false
	}
}

// BannerMediaSlot 横幅媒体槽位
type BannerMediaSlot string

const (
	SlotPCBanner     BannerMediaSlot = "pc-banner"
	SlotMobileBanner BannerMediaSlot = "mobile-banner"
)

// Media 待上传的媒体内容
type Media struct {
	Data []byte
	Type MediaType
}

// ContentType 返回媒体的 MIME 类型
func (m Media) ContentType() string {
	switch m.Type {
	case MediaPNG:
		return "image/png"
	case MediaGIF:
		return "video/mp4"
	default:
		return "application/octet-stream"
	}
}

// StoreMediaObjectName 拼接店铺媒体在对象存储中的文件名
func StoreMediaObjectName(storeID string, slot StoreMediaSlot, mediaType MediaType) string {
	return storeID + "-" + string(slot) + "." + string(mediaType)
}

// BannerMediaObjectName 拼接横幅媒体在对象存储中的文件名
func BannerMediaObjectName(bannerID string, slot BannerMediaSlot, mediaType MediaType) string {
	return bannerID + "-" + string(slot) + "." + string(mediaType)
}
