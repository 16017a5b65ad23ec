package bot

import (
	"fmt"
	"strings"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/wizard"
)

// 菜单与向导的界面文案
const (
	textMainMenu = "Store back office.\nChoose an action:"

	textStoreTitle         = "Enter the store title:"
	textStoreDescription   = "Enter the store description:"
	textStoreCities        = "Select the store cities:"
	textStoreCategories    = "Select the store categories:"
	textStoreMainURL       = "Enter the store main page URL:"
	textStoreResources     = "Send extra links, one per line:\n<url> | <title>"
	textStorePreviewPC     = "Send the PC preview media (photo or GIF):"
	textStorePreviewMobile = "Send the mobile preview media (photo or GIF):"
	textStoreMainPC        = "Send the PC main media (photo or GIF):"
	textStoreMainMobile    = "Send the mobile main media (photo or GIF):"
	textStorePriority      = "Enter the display priority (number):"

	textBannerURL      = "Enter the banner target URL:"
	textBannerPC       = "Send the PC banner media (photo or GIF):"
	textBannerMobile   = "Send the mobile banner media (photo or GIF):"
	textBannerPriority = "Enter the display priority (number):"

	textCityTitles     = "Enter city titles, one per line:"
	textCategoryTitles = "Enter category titles, one per line:"

	textChooseStore    = "Choose a store:"
	textStoreLinks     = "Store links. Tap a link to delete it:"
	textChooseBanner   = "Choose a banner:"
	textChooseCity     = "Choose a city to delete:"
	textChooseCategory = "Choose a category to delete:"

	textEditTitle       = "Enter the new title:"
	textEditDescription = "Enter the new description:"
	textEditPriority    = "Enter the new display priority (number):"
	textEditURL         = "Enter the new URL:"
	textEditMedia       = "Send the new media (photo or GIF):"

	alertNoDictionaries  = "Add at least one city and one category first"
	alertEmptySelection  = "Select at least one item"
	alertNoBrowseCursor  = "Open the store list first"
	alertStoreSaved      = "Store saved"
	alertStoreMediaError = "Store saved, but media upload failed"
	alertBannerSaved     = "Banner saved"
	alertDeleted         = "Deleted"
)

// flowPrompt 返回带进度前缀的步骤提示，单步流程不加前缀
func flowPrompt(flow wizard.Flow, step wizard.Step) string {
	prompt := stepPrompt(step)
	if total := wizard.StepCount(flow); total > 1 {
		if idx := wizard.StepIndex(flow, step); idx > 0 {
			return fmt.Sprintf("[%d/%d] %s", idx, total, prompt)
		}
	}
	return prompt
}

// stepPrompt 返回向导步骤对应的提示文案
func stepPrompt(step wizard.Step) string {
	switch step {
	case wizard.StepStoreTitle:
		return textStoreTitle
	case wizard.StepStoreDescription:
		return textStoreDescription
	case wizard.StepStoreCities:
		return textStoreCities
	case wizard.StepStoreCategories:
		return textStoreCategories
	case wizard.StepStoreMainURL:
		return textStoreMainURL
	case wizard.StepStoreResources:
		return textStoreResources
	case wizard.StepStorePreviewPC:
		return textStorePreviewPC
	case wizard.StepStorePreviewMobile:
		return textStorePreviewMobile
	case wizard.StepStoreMainPC:
		return textStoreMainPC
	case wizard.StepStoreMainMobile:
		return textStoreMainMobile
	case wizard.StepStorePriority:
		return textStorePriority
	case wizard.StepBannerURL:
		return textBannerURL
	case wizard.StepBannerPC:
		return textBannerPC
	case wizard.StepBannerMobile:
		return textBannerMobile
	case wizard.StepBannerPriority:
		return textBannerPriority
	case wizard.StepCityTitles:
		return textCityTitles
	case wizard.StepCategoryTitles:
		return textCategoryTitles
	default:
		return textMainMenu
	}
}

// editPrompt 返回单字段编辑对应的提示文案
func editPrompt(field wizard.EditField) string {
	switch field {
	case wizard.EditStoreTitle:
		return textEditTitle
	case wizard.EditStoreDescription:
		return textEditDescription
	case wizard.EditStorePriority, wizard.EditBannerPriority:
		return textEditPriority
	case wizard.EditStoreMainPageURL, wizard.EditBannerTargetURL:
		return textEditURL
	case wizard.EditStoreResources:
		return textStoreResources
	default:
		return textEditMedia
	}
}

// storeDraftSummary 渲染店铺创建确认文案
func storeDraftSummary(draft *wizard.StoreDraft) string {
	var b strings.Builder
	b.WriteString("Save this store?\n\n")
	fmt.Fprintf(&b, "Title: %s\n", draft.Title)
	fmt.Fprintf(&b, "Description: %s\n", draft.Description)
	fmt.Fprintf(&b, "Cities: %d\n", len(draft.CityIDs))
	fmt.Fprintf(&b, "Categories: %d\n", len(draft.CategoryIDs))
	fmt.Fprintf(&b, "Main page: %s\n", draft.MainPageURL)
	fmt.Fprintf(&b, "Resources: %d\n", len(draft.Resources))
	fmt.Fprintf(&b, "Priority: %d", draft.Priority)
	return b.String()
}

// bannerDraftSummary 渲染横幅创建确认文案
func bannerDraftSummary(draft *wizard.BannerDraft) string {
	var b strings.Builder
	b.WriteString("Save this banner?\n\n")
	fmt.Fprintf(&b, "Target URL: %s\n", draft.TargetURL)
	fmt.Fprintf(&b, "Priority: %d", draft.Priority)
	return b.String()
}

// storeDetailsCaption 渲染店铺编辑菜单的标题
func storeDetailsCaption(details *entity.StoreDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", details.Store.Title)
	fmt.Fprintf(&b, "%s\n\n", details.Store.Description)
	fmt.Fprintf(&b, "Cities: %s\n", strings.Join(details.Cities, ", "))
	fmt.Fprintf(&b, "Categories: %s\n", strings.Join(details.Categories, ", "))
	fmt.Fprintf(&b, "Main page: %s\n", details.Store.MainPageURL)
	fmt.Fprintf(&b, "Resources: %d\n", len(details.Resources))
	fmt.Fprintf(&b, "Priority: %d", details.Store.DisplayPriority)
	return b.String()
}

// bannerCaption 渲染横幅编辑菜单的标题
func bannerCaption(banner *entity.Banner) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Banner\n\n")
	fmt.Fprintf(&b, "Target URL: %s\n", banner.TargetURL)
	fmt.Fprintf(&b, "Media type: %s\n", banner.MediaType)
	fmt.Fprintf(&b, "Priority: %d", banner.DisplayPriority)
	return b.String()
}
