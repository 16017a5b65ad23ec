package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"store-backoffice/internal/application/pagination"
	"store-backoffice/internal/interfaces/bot/keyboard"
	"store-backoffice/internal/wizard"
	apperrors "store-backoffice/pkg/errors"
	"store-backoffice/pkg/logger"
)

// splitCallback 拆分 "action:payload" 回调数据
func splitCallback(data string) (action, payload string) {
	parts := strings.SplitN(data, ":", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

// splitPair 拆分 "storeID:itemID" 载荷
func splitPair(payload string) (first, second string) {
	parts := strings.SplitN(payload, ":", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

// HandleCallback 处理内联键盘回调。
// 每个回调最终恰好被应答一次：要么弹窗提示，要么静默确认。
func (h *Handler) HandleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	action, payload := splitCallback(cb.Data)
	alert, err := h.dispatchCallback(ctx, cb.Message.Chat.ID, action, payload)
	if err != nil {
		logger.Warn(ctx, "callback failed", "action", action, "error", err.Error())
		alert = alertFromError(err)
	}

	if alert != "" {
		if err := h.messenger.Alert(cb.ID, alert); err != nil {
			logger.Debug(ctx, "failed to send alert", "error", err.Error())
		}
		return
	}
	if err := h.messenger.AckCallback(cb.ID); err != nil {
		logger.Debug(ctx, "failed to ack callback", "error", err.Error())
	}
}

// dispatchCallback 执行回调动作，返回要弹窗的提示文案（为空则静默应答）
func (h *Handler) dispatchCallback(ctx context.Context, chatID int64, action, payload string) (string, error) {
	s := h.sessions.GetOrCreate(chatID)

	switch action {
	case keyboard.ActionMainMenu:
		h.sessions.ResetFlow(chatID)
		return "", h.renderMainMenu(s)

	// 创建流程入口
	case keyboard.ActionAddStore:
		if err := h.stores.CanAdd(ctx); err != nil {
			return alertNoDictionaries, nil
		}
		s = h.sessions.StartFlow(chatID, wizard.FlowAddStore)
		return "", h.renderStep(ctx, s)

	case keyboard.ActionAddBanner:
		s = h.sessions.StartFlow(chatID, wizard.FlowAddBanner)
		return "", h.renderStep(ctx, s)

	case keyboard.ActionAddCity:
		s = h.sessions.StartFlow(chatID, wizard.FlowAddCity)
		return "", h.renderStep(ctx, s)

	case keyboard.ActionAddCategory:
		s = h.sessions.StartFlow(chatID, wizard.FlowAddCategory)
		return "", h.renderStep(ctx, s)

	// 店铺创建流程内的多选与确认
	case keyboard.ActionToggleCity:
		if s.Store == nil || s.Store.Cities == nil {
			return "", nil
		}
		if err := s.Store.Cities.Toggle(payload); err != nil {
			return "", err
		}
		return "", h.renderCityMultiSelect(ctx, s)

	case keyboard.ActionCitiesDone:
		if s.Store == nil || s.Store.Cities == nil {
			return "", nil
		}
		chosen, err := s.Store.Cities.Done()
		if err != nil {
			return "", err
		}
		s.Store.CityIDs = chosen
		s.Advance()
		return "", h.renderStep(ctx, s)

	case keyboard.ActionToggleCategory:
		if s.Store == nil || s.Store.Categories == nil {
			return "", nil
		}
		if err := s.Store.Categories.Toggle(payload); err != nil {
			return "", err
		}
		return "", h.renderCategoryMultiSelect(ctx, s)

	case keyboard.ActionCategoriesDone:
		if s.Store == nil || s.Store.Categories == nil {
			return "", nil
		}
		chosen, err := s.Store.Categories.Done()
		if err != nil {
			return "", err
		}
		s.Store.CategoryIDs = chosen
		s.Advance()
		return "", h.renderStep(ctx, s)

	case keyboard.ActionSkipResources:
		if s.Store == nil || s.Step != wizard.StepStoreResources {
			return "", nil
		}
		s.Store.Resources = nil
		s.Store.ResourcesText = ""
		s.Advance()
		return "", h.renderStep(ctx, s)

	case keyboard.ActionSaveStore:
		if s.Store == nil || s.Step != wizard.StepStoreConfirm {
			return "", nil
		}
		return h.saveStore(ctx, s)

	case keyboard.ActionSaveBanner:
		if s.Banner == nil || s.Step != wizard.StepBannerConfirm {
			return "", nil
		}
		return h.saveBanner(ctx, s)

	// 店铺浏览与编辑
	case keyboard.ActionEditStore:
		h.sessions.ResetFlow(chatID)
		return "", h.renderStoreBrowse(ctx, s, 1)

	case keyboard.ActionPrevStores:
		if s.Browse == nil {
			return "", apperrors.ErrNoBrowseCursor
		}
		return "", h.renderStoreBrowse(ctx, s, pagination.Prev(s.Browse.Page, s.Browse.TotalPages))

	case keyboard.ActionNextStores:
		if s.Browse == nil {
			return "", apperrors.ErrNoBrowseCursor
		}
		return "", h.renderStoreBrowse(ctx, s, pagination.Next(s.Browse.Page, s.Browse.TotalPages))

	case keyboard.ActionStore:
		h.sessions.ResetFlow(chatID)
		return "", h.renderStoreMenu(ctx, s, payload)

	case keyboard.ActionDelStore:
		return h.deleteStore(ctx, s, payload)

	case keyboard.ActionEditStoreTitle:
		return "", h.startEdit(ctx, s, wizard.FlowEditStore, payload, wizard.EditStoreTitle)
	case keyboard.ActionEditStoreDescription:
		return "", h.startEdit(ctx, s, wizard.FlowEditStore, payload, wizard.EditStoreDescription)
	case keyboard.ActionEditStorePriority:
		return "", h.startEdit(ctx, s, wizard.FlowEditStore, payload, wizard.EditStorePriority)
	case keyboard.ActionEditStoreURL:
		return "", h.startEdit(ctx, s, wizard.FlowEditStore, payload, wizard.EditStoreMainPageURL)
	case keyboard.ActionEditStoreResources:
		return "", h.startEdit(ctx, s, wizard.FlowEditStore, payload, wizard.EditStoreResources)
	case keyboard.ActionEditStorePreviewPC:
		return "", h.startEdit(ctx, s, wizard.FlowEditStore, payload, wizard.EditStorePreviewPC)
	case keyboard.ActionEditStorePreviewMobile:
		return "", h.startEdit(ctx, s, wizard.FlowEditStore, payload, wizard.EditStorePreviewMobile)
	case keyboard.ActionEditStoreMainPC:
		return "", h.startEdit(ctx, s, wizard.FlowEditStore, payload, wizard.EditStoreMainPC)
	case keyboard.ActionEditStoreMainMobile:
		return "", h.startEdit(ctx, s, wizard.FlowEditStore, payload, wizard.EditStoreMainMobile)

	// 已有店铺的关联管理
	case keyboard.ActionStoreCities:
		selection, err := h.links.CitySelection(ctx, payload)
		if err != nil {
			return "", err
		}
		return "", h.edit(s, textStoreCities, keyboard.CitySelection(payload, selection))

	case keyboard.ActionStoreCategories:
		selection, err := h.links.CategorySelection(ctx, payload)
		if err != nil {
			return "", err
		}
		return "", h.edit(s, textStoreCategories, keyboard.CategorySelection(payload, selection))

	case keyboard.ActionLinkCity:
		storeID, cityID := splitPair(payload)
		selection, err := h.links.LinkCity(ctx, storeID, cityID)
		if err != nil {
			return "", err
		}
		return "", h.edit(s, textStoreCities, keyboard.CitySelection(storeID, selection))

	case keyboard.ActionUnlinkCity:
		storeID, cityID := splitPair(payload)
		selection, err := h.links.UnlinkCity(ctx, storeID, cityID)
		if err != nil {
			return "", err
		}
		return "", h.edit(s, textStoreCities, keyboard.CitySelection(storeID, selection))

	case keyboard.ActionLinkCategory:
		storeID, categoryID := splitPair(payload)
		selection, err := h.links.LinkCategory(ctx, storeID, categoryID)
		if err != nil {
			return "", err
		}
		return "", h.edit(s, textStoreCategories, keyboard.CategorySelection(storeID, selection))

	case keyboard.ActionUnlinkCategory:
		storeID, categoryID := splitPair(payload)
		selection, err := h.links.UnlinkCategory(ctx, storeID, categoryID)
		if err != nil {
			return "", err
		}
		return "", h.edit(s, textStoreCategories, keyboard.CategorySelection(storeID, selection))

	case keyboard.ActionStoreResources:
		return "", h.renderResourceList(ctx, s, payload)

	case keyboard.ActionDelResource:
		storeID, resourceID := splitPair(payload)
		resources, err := h.resources.Delete(ctx, storeID, resourceID)
		if err != nil {
			return "", err
		}
		if err := h.edit(s, textStoreLinks, keyboard.ResourceList(storeID, resources)); err != nil {
			return "", err
		}
		return alertDeleted, nil

	// 横幅管理
	case keyboard.ActionEditBanner:
		h.sessions.ResetFlow(chatID)
		return "", h.renderBannerList(ctx, s)

	case keyboard.ActionBanner:
		h.sessions.ResetFlow(chatID)
		return "", h.renderBannerMenu(ctx, s, payload)

	case keyboard.ActionEditBannerURL:
		return "", h.startEdit(ctx, s, wizard.FlowEditBanner, payload, wizard.EditBannerTargetURL)
	case keyboard.ActionEditBannerPriority:
		return "", h.startEdit(ctx, s, wizard.FlowEditBanner, payload, wizard.EditBannerPriority)
	case keyboard.ActionEditBannerPC:
		return "", h.startEdit(ctx, s, wizard.FlowEditBanner, payload, wizard.EditBannerPC)
	case keyboard.ActionEditBannerMobile:
		return "", h.startEdit(ctx, s, wizard.FlowEditBanner, payload, wizard.EditBannerMobile)

	case keyboard.ActionDelBanner:
		if err := h.banners.Delete(ctx, payload); err != nil {
			return "", err
		}
		if err := h.renderBannerListOrMenu(ctx, s); err != nil {
			return "", err
		}
		return alertDeleted, nil

	// 字典管理
	case keyboard.ActionDelCity:
		cities, err := h.cities.List(ctx)
		if err != nil {
			return "", err
		}
		return "", h.edit(s, textChooseCity, keyboard.CityList(cities))

	case keyboard.ActionRmCity:
		if err := h.cities.Delete(ctx, payload); err != nil {
			return "", err
		}
		if err := h.renderCityListOrMenu(ctx, s); err != nil {
			return "", err
		}
		return alertDeleted, nil

	case keyboard.ActionDelCategory:
		categories, err := h.categories.List(ctx)
		if err != nil {
			return "", err
		}
		return "", h.edit(s, textChooseCategory, keyboard.CategoryList(categories))

	case keyboard.ActionRmCategory:
		if err := h.categories.Delete(ctx, payload); err != nil {
			return "", err
		}
		if err := h.renderCategoryListOrMenu(ctx, s); err != nil {
			return "", err
		}
		return alertDeleted, nil

	default:
		logger.Debug(ctx, "unknown callback action", "action", action)
		return "", nil
	}
}

// startEdit 启动单字段编辑流程并渲染输入提示
func (h *Handler) startEdit(ctx context.Context, s *wizard.Session, flow wizard.Flow, targetID string, field wizard.EditField) error {
	s = h.sessions.StartFlow(s.ChatID, flow)
	s.Edit.TargetID = targetID
	s.Edit.Field = field
	return h.renderStep(ctx, s)
}

// deleteStore 删除店铺并回到浏览列表所在页，列表清空时回主菜单
func (h *Handler) deleteStore(ctx context.Context, s *wizard.Session, storeID string) (string, error) {
	page := 1
	if s.Browse != nil {
		page = s.Browse.Page
	}

	result, err := h.stores.Delete(ctx, storeID, page, browsePageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoresNotFound) {
			s.Browse = nil
			if renderErr := h.renderMainMenu(s); renderErr != nil {
				return "", renderErr
			}
			return alertDeleted, nil
		}
		return "", err
	}

	s.Browse = &wizard.BrowseCursor{
		Page:       result.Page,
		PageSize:   browsePageSize,
		TotalPages: result.TotalPages,
	}
	if err := h.edit(s, textChooseStore, keyboard.StoreChoice(result.Items, result.Page, result.TotalPages)); err != nil {
		return "", err
	}
	return alertDeleted, nil
}

// renderBannerListOrMenu 渲染横幅列表，列表为空时回主菜单
func (h *Handler) renderBannerListOrMenu(ctx context.Context, s *wizard.Session) error {
	err := h.renderBannerList(ctx, s)
	if errors.Is(err, apperrors.ErrBannersNotFound) {
		return h.renderMainMenu(s)
	}
	return err
}

// renderCityListOrMenu 渲染城市删除列表，列表为空时回主菜单
func (h *Handler) renderCityListOrMenu(ctx context.Context, s *wizard.Session) error {
	cities, err := h.cities.List(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrCitiesNotFound) {
			return h.renderMainMenu(s)
		}
		return err
	}
	return h.edit(s, textChooseCity, keyboard.CityList(cities))
}

// renderCategoryListOrMenu 渲染类目删除列表，列表为空时回主菜单
func (h *Handler) renderCategoryListOrMenu(ctx context.Context, s *wizard.Session) error {
	categories, err := h.categories.List(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoriesNotFound) {
			return h.renderMainMenu(s)
		}
		return err
	}
	return h.edit(s, textChooseCategory, keyboard.CategoryList(categories))
}
