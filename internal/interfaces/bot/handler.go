package bot

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"store-backoffice/internal/application/banner"
	"store-backoffice/internal/application/category"
	"store-backoffice/internal/application/city"
	"store-backoffice/internal/application/resource"
	"store-backoffice/internal/application/store"
	"store-backoffice/internal/application/storelink"
	"store-backoffice/internal/interfaces/bot/keyboard"
	"store-backoffice/internal/wizard"
	apperrors "store-backoffice/pkg/errors"
	"store-backoffice/pkg/logger"
)

// browsePageSize 店铺浏览列表每页条数
const browsePageSize = 2

// Handler 处理机器人消息与回调，所有渲染均编辑 chat 内的锚点消息
type Handler struct {
	messenger  Messenger
	sessions   *wizard.Manager
	stores     *store.Service
	banners    *banner.Service
	cities     *city.Service
	categories *category.Service
	links      *storelink.Service
	resources  *resource.Service

	anchorImagePath string
}

// NewHandler 创建 Handler
func NewHandler(
	messenger Messenger,
	sessions *wizard.Manager,
	stores *store.Service,
	banners *banner.Service,
	cities *city.Service,
	categories *category.Service,
	links *storelink.Service,
	resources *resource.Service,
	anchorImagePath string,
) *Handler {
	return &Handler{
		messenger:       messenger,
		sessions:        sessions,
		stores:          stores,
		banners:         banners,
		cities:          cities,
		categories:      categories,
		links:           links,
		resources:       resources,
		anchorImagePath: anchorImagePath,
	}
}

// edit 用新标题与键盘重绘 chat 的锚点消息
func (h *Handler) edit(s *wizard.Session, caption string, markup tgbotapi.InlineKeyboardMarkup) error {
	if s.AnchorMessageID == 0 {
		return apperrors.ErrTelegramError.WithDetail("anchor message missing")
	}
	return h.messenger.EditCaption(s.ChatID, s.AnchorMessageID, caption, &markup)
}

// renderMainMenu 重绘主菜单
func (h *Handler) renderMainMenu(s *wizard.Session) error {
	return h.edit(s, textMainMenu, keyboard.MainMenu())
}

// renderStep 按会话当前步骤重绘锚点消息
func (h *Handler) renderStep(ctx context.Context, s *wizard.Session) error {
	switch s.Step {
	case wizard.StepStoreCities:
		return h.renderCityMultiSelect(ctx, s)
	case wizard.StepStoreCategories:
		return h.renderCategoryMultiSelect(ctx, s)
	case wizard.StepStoreResources:
		return h.edit(s, flowPrompt(s.Flow, s.Step), keyboard.SkipResources())
	case wizard.StepStoreConfirm:
		return h.edit(s, storeDraftSummary(s.Store), keyboard.Confirm(keyboard.ActionSaveStore))
	case wizard.StepBannerConfirm:
		return h.edit(s, bannerDraftSummary(s.Banner), keyboard.Confirm(keyboard.ActionSaveBanner))
	case wizard.StepEditValue:
		return h.edit(s, editPrompt(s.Edit.Field), keyboard.Cancel())
	case wizard.StepNone:
		return h.renderMainMenu(s)
	default:
		return h.edit(s, flowPrompt(s.Flow, s.Step), keyboard.Cancel())
	}
}

// renderCityMultiSelect 渲染店铺创建流程的城市多选，首次进入时固定候选集
func (h *Handler) renderCityMultiSelect(ctx context.Context, s *wizard.Session) error {
	cities, err := h.cities.List(ctx)
	if err != nil {
		return err
	}

	if s.Store.Cities == nil {
		ids := make([]string, 0, len(cities))
		for _, c := range cities {
			ids = append(ids, c.ID)
		}
		s.Store.Cities = wizard.NewMultiSelect(ids)
	}

	choices := make([]keyboard.Choice, 0, len(cities))
	for _, c := range cities {
		choices = append(choices, keyboard.Choice{
			ID:     c.ID,
			Title:  c.Title,
			Chosen: s.Store.Cities.IsChosen(c.ID),
		})
	}
	markup := keyboard.MultiSelect(choices, keyboard.ActionToggleCity, keyboard.ActionCitiesDone)
	return h.edit(s, flowPrompt(s.Flow, s.Step), markup)
}

// renderCategoryMultiSelect 渲染店铺创建流程的类目多选
func (h *Handler) renderCategoryMultiSelect(ctx context.Context, s *wizard.Session) error {
	categories, err := h.categories.List(ctx)
	if err != nil {
		return err
	}

	if s.Store.Categories == nil {
		ids := make([]string, 0, len(categories))
		for _, c := range categories {
			ids = append(ids, c.ID)
		}
		s.Store.Categories = wizard.NewMultiSelect(ids)
	}

	choices := make([]keyboard.Choice, 0, len(categories))
	for _, c := range categories {
		choices = append(choices, keyboard.Choice{
			ID:     c.ID,
			Title:  c.Title,
			Chosen: s.Store.Categories.IsChosen(c.ID),
		})
	}
	markup := keyboard.MultiSelect(choices, keyboard.ActionToggleCategory, keyboard.ActionCategoriesDone)
	return h.edit(s, flowPrompt(s.Flow, s.Step), markup)
}

// renderStoreBrowse 渲染指定页的店铺浏览列表并更新游标
func (h *Handler) renderStoreBrowse(ctx context.Context, s *wizard.Session, page int) error {
	result, err := h.stores.All(ctx, page, browsePageSize)
	if err != nil {
		return err
	}

	s.Browse = &wizard.BrowseCursor{
		Page:       result.Page,
		PageSize:   browsePageSize,
		TotalPages: result.TotalPages,
	}
	return h.edit(s, textChooseStore, keyboard.StoreChoice(result.Items, result.Page, result.TotalPages))
}

// renderStoreMenu 渲染店铺编辑菜单
func (h *Handler) renderStoreMenu(ctx context.Context, s *wizard.Session, storeID string) error {
	details, err := h.stores.Details(ctx, storeID)
	if err != nil {
		return err
	}
	return h.edit(s, storeDetailsCaption(details), keyboard.StoreEdit(details.Store.ID))
}

// renderBannerList 渲染横幅选择列表
func (h *Handler) renderBannerList(ctx context.Context, s *wizard.Session) error {
	banners, err := h.banners.All(ctx)
	if err != nil {
		return err
	}
	return h.edit(s, textChooseBanner, keyboard.BannerChoice(banners))
}

// renderBannerMenu 渲染横幅编辑菜单
func (h *Handler) renderBannerMenu(ctx context.Context, s *wizard.Session, bannerID string) error {
	b, err := h.banners.Get(ctx, bannerID)
	if err != nil {
		return err
	}
	return h.edit(s, bannerCaption(b), keyboard.BannerEdit(b.ID))
}

// renderResourceList 渲染店铺附加链接列表
func (h *Handler) renderResourceList(ctx context.Context, s *wizard.Session, storeID string) error {
	resources, err := h.resources.List(ctx, storeID)
	if err != nil {
		return err
	}
	return h.edit(s, textStoreLinks, keyboard.ResourceList(storeID, resources))
}

// saveStore 提交店铺创建流程
func (h *Handler) saveStore(ctx context.Context, s *wizard.Session) (string, error) {
	draft := s.Store
	if draft == nil || draft.PreviewPC == nil || draft.PreviewMobile == nil ||
		draft.MainPC == nil || draft.MainMobile == nil {
		return "", apperrors.ErrValidationFailed.WithDetail("store draft incomplete")
	}

	input := store.SaveInput{
		Title:         draft.Title,
		Description:   draft.Description,
		CityIDs:       draft.CityIDs,
		CategoryIDs:   draft.CategoryIDs,
		MainPageURL:   draft.MainPageURL,
		Resources:     draft.Resources,
		PreviewPC:     *draft.PreviewPC,
		PreviewMobile: *draft.PreviewMobile,
		MainPC:        *draft.MainPC,
		MainMobile:    *draft.MainMobile,
		Priority:      draft.Priority,
	}

	storeID, err := h.stores.Save(ctx, input)
	h.sessions.ResetFlow(s.ChatID)

	if err != nil {
		if storeID != "" {
			// 元数据已提交，仅媒体上传失败
			logger.Warn(ctx, "store saved with media errors", "store_id", storeID, "error", err.Error())
			if renderErr := h.renderMainMenu(s); renderErr != nil {
				return "", renderErr
			}
			return alertStoreMediaError, nil
		}
		return "", err
	}

	if err := h.renderMainMenu(s); err != nil {
		return "", err
	}
	return alertStoreSaved, nil
}

// saveBanner 提交横幅创建流程
func (h *Handler) saveBanner(ctx context.Context, s *wizard.Session) (string, error) {
	draft := s.Banner
	if draft == nil || draft.PC == nil || draft.Mobile == nil {
		return "", apperrors.ErrValidationFailed.WithDetail("banner draft incomplete")
	}

	input := banner.SaveInput{
		TargetURL: draft.TargetURL,
		PC:        *draft.PC,
		Mobile:    *draft.Mobile,
		Priority:  draft.Priority,
	}

	bannerID, err := h.banners.Save(ctx, input)
	h.sessions.ResetFlow(s.ChatID)

	if err != nil {
		if bannerID != "" {
			logger.Warn(ctx, "banner saved with media errors", "banner_id", bannerID, "error", err.Error())
			if renderErr := h.renderMainMenu(s); renderErr != nil {
				return "", renderErr
			}
			return alertStoreMediaError, nil
		}
		return "", err
	}

	if err := h.renderMainMenu(s); err != nil {
		return "", err
	}
	return alertBannerSaved, nil
}

// alertFromError 将业务错误转换为弹窗文案
func alertFromError(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrEmptySelection):
		return alertEmptySelection
	case errors.Is(err, apperrors.ErrNoBrowseCursor):
		return alertNoBrowseCursor
	}

	return apperrors.AsAppError(err).Message
}
