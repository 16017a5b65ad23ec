// Package keyboard 构建 Telegram 内联键盘。
// 全部为无状态纯函数，每次调用按当前数据重建布局。
package keyboard

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"store-backoffice/internal/domain/entity"
)

// 回调动作常量，回调数据格式为 "action" 或 "action:id"
const (
	ActionMainMenu = "main_menu"

	ActionAddStore    = "add_store"
	ActionEditStore   = "edit_store"
	ActionAddBanner   = "add_banner"
	ActionEditBanner  = "edit_banner"
	ActionAddCity     = "add_city"
	ActionDelCity     = "del_city"
	ActionAddCategory = "add_category"
	ActionDelCategory = "del_category"

	ActionToggleCity     = "toggle_city"
	ActionToggleCategory = "toggle_category"
	ActionCitiesDone     = "cities_done"
	ActionCategoriesDone = "categories_done"
	ActionSkipResources  = "skip_resources"
	ActionSaveStore      = "save_store"
	ActionSaveBanner     = "save_banner"

	ActionStore      = "store"
	ActionPrevStores = "prev_stores"
	ActionNextStores = "next_stores"
	ActionDelStore   = "del_store"

	ActionEditStoreTitle         = "edit_store_title"
	ActionEditStoreDescription   = "edit_store_description"
	ActionEditStorePriority      = "edit_store_priority"
	ActionEditStoreURL           = "edit_store_url"
	ActionEditStoreResources     = "edit_store_resources"
	ActionEditStorePreviewPC     = "edit_store_preview_pc"
	ActionEditStorePreviewMobile = "edit_store_preview_mobile"
	ActionEditStoreMainPC        = "edit_store_main_pc"
	ActionEditStoreMainMobile    = "edit_store_main_mobile"
	ActionStoreCities            = "store_cities"
	ActionStoreCategories        = "store_categories"
	ActionStoreResources         = "store_resources"
	ActionDelResource            = "del_resource"

	ActionLinkCity       = "link_city"
	ActionUnlinkCity     = "unlink_city"
	ActionLinkCategory   = "link_category"
	ActionUnlinkCategory = "unlink_category"

	ActionBanner             = "banner"
	ActionDelBanner          = "del_banner"
	ActionEditBannerURL      = "edit_banner_url"
	ActionEditBannerPC       = "edit_banner_pc"
	ActionEditBannerMobile   = "edit_banner_mobile"
	ActionEditBannerPriority = "edit_banner_priority"

	ActionRmCity     = "rm_city"
	ActionRmCategory = "rm_category"
)

// Callback 拼接 "action:id" 回调数据
func Callback(action, id string) string {
	return action + ":" + id
}

func button(label, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(label, data)
}

func backRow(data string) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(button("⬅️ Back", data))
}

// MainMenu 主菜单
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button("➕ Add store", ActionAddStore),
			button("✏️ Edit store", ActionEditStore),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("➕ Add banner", ActionAddBanner),
			button("✏️ Edit banner", ActionEditBanner),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("➕ Add cities", ActionAddCity),
			button("🗑 Delete city", ActionDelCity),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("➕ Add categories", ActionAddCategory),
			button("🗑 Delete category", ActionDelCategory),
		),
	)
}

// Cancel 只有返回主菜单的键盘，用于向导输入步骤
func Cancel() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(backRow(ActionMainMenu))
}

// SkipResources 资源步骤的跳过/返回键盘
func SkipResources() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button("⏭ Skip", ActionSkipResources)),
		backRow(ActionMainMenu),
	)
}

// Choice 多选候选项
type Choice struct {
	ID     string
	Title  string
	Chosen bool
}

// MultiSelect 向导内多选键盘，带完成按钮
func MultiSelect(choices []Choice, toggleAction, doneAction string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(choices)+2)
	for _, choice := range choices {
		label := "❌ " + choice.Title
		if choice.Chosen {
			label = "✅ " + choice.Title
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(label, Callback(toggleAction, choice.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("✔️ Done", doneAction)))
	rows = append(rows, backRow(ActionMainMenu))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Confirm 确认步骤键盘
func Confirm(saveAction string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button("✅ Save", saveAction),
			button("❌ Cancel", ActionMainMenu),
		),
	)
}

// StoreChoice 店铺浏览分页键盘
func StoreChoice(stores []entity.Store, page, totalPages int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(stores)+2)
	for _, store := range stores {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(store.Title, Callback(ActionStore, store.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		button("⬅️", ActionPrevStores),
		button(fmt.Sprintf("[%d/%d]", page, totalPages), ActionEditStore),
		button("➡️", ActionNextStores),
	))
	rows = append(rows, backRow(ActionMainMenu))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// StoreEdit 店铺编辑菜单
func StoreEdit(storeID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button("✏️ Title", Callback(ActionEditStoreTitle, storeID)),
			button("✏️ Description", Callback(ActionEditStoreDescription, storeID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("✏️ Priority", Callback(ActionEditStorePriority, storeID)),
			button("✏️ Main URL", Callback(ActionEditStoreURL, storeID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🏙 Cities", Callback(ActionStoreCities, storeID)),
			button("🗂 Categories", Callback(ActionStoreCategories, storeID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🔗 Resources", Callback(ActionStoreResources, storeID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🖼 Preview PC", Callback(ActionEditStorePreviewPC, storeID)),
			button("🖼 Preview mobile", Callback(ActionEditStorePreviewMobile, storeID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🖼 Main PC", Callback(ActionEditStoreMainPC, storeID)),
			button("🖼 Main mobile", Callback(ActionEditStoreMainMobile, storeID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🗑 Delete store", Callback(ActionDelStore, storeID)),
		),
		backRow(ActionEditStore),
	)
}

// CitySelection 已有店铺的城市关联键盘，每次点击立即提交。
// 回调数据携带 "storeID:cityID"。
func CitySelection(storeID string, selection []entity.CitySelection) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(selection)+1)
	for _, item := range selection {
		label := "❌ " + item.Title
		action := ActionLinkCity
		if item.IsLinked {
			label = "✅ " + item.Title
			action = ActionUnlinkCity
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(label, Callback(action, storeID+":"+item.ID)),
		))
	}
	rows = append(rows, backRow(Callback(ActionStore, storeID)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// CategorySelection 已有店铺的类目关联键盘
func CategorySelection(storeID string, selection []entity.CategorySelection) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(selection)+1)
	for _, item := range selection {
		label := "❌ " + item.Title
		action := ActionLinkCategory
		if item.IsLinked {
			label = "✅ " + item.Title
			action = ActionUnlinkCategory
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(label, Callback(action, storeID+":"+item.ID)),
		))
	}
	rows = append(rows, backRow(Callback(ActionStore, storeID)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// ResourceList 店铺附加链接键盘，点击删除对应链接
func ResourceList(storeID string, resources []entity.StoreResource) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(resources)+2)
	for _, res := range resources {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button("🗑 "+res.Title, Callback(ActionDelResource, storeID+":"+res.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		button("➕ Add resources", Callback(ActionEditStoreResources, storeID)),
	))
	rows = append(rows, backRow(Callback(ActionStore, storeID)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// BannerChoice 横幅选择键盘
func BannerChoice(banners []entity.Banner) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(banners)+1)
	for _, banner := range banners {
		label := fmt.Sprintf("[%d] %s", banner.DisplayPriority, banner.TargetURL)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(label, Callback(ActionBanner, banner.ID)),
		))
	}
	rows = append(rows, backRow(ActionMainMenu))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// BannerEdit 横幅编辑菜单
func BannerEdit(bannerID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button("✏️ Target URL", Callback(ActionEditBannerURL, bannerID)),
			button("✏️ Priority", Callback(ActionEditBannerPriority, bannerID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🖼 PC media", Callback(ActionEditBannerPC, bannerID)),
			button("🖼 Mobile media", Callback(ActionEditBannerMobile, bannerID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🗑 Delete banner", Callback(ActionDelBanner, bannerID)),
		),
		backRow(ActionEditBanner),
	)
}

// CityList 城市删除键盘
func CityList(cities []entity.City) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(cities)+1)
	for _, city := range cities {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button("🗑 "+city.Title, Callback(ActionRmCity, city.ID)),
		))
	}
	rows = append(rows, backRow(ActionMainMenu))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// CategoryList 类目删除键盘
func CategoryList(categories []entity.Category) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories)+1)
	for _, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button("🗑 "+category.Title, Callback(ActionRmCategory, category.ID)),
		))
	}
	rows = append(rows, backRow(ActionMainMenu))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
