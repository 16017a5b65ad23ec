package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/interfaces/bot/keyboard"
	"store-backoffice/internal/wizard"
	"store-backoffice/pkg/logger"
)

var (
	errInvalidText = errors.New("invalid text input")
	errNotANumber  = errors.New("priority must be a number")
)

// HandleMessage 处理入站消息。
// 入站消息总是被删除，界面只通过锚点消息呈现；不在流程中的消息直接丢弃。
func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	defer func() {
		if err := h.messenger.DeleteMessage(msg.Chat.ID, msg.MessageID); err != nil {
			logger.Debug(ctx, "failed to delete inbound message", "error", err.Error())
		}
	}()

	if msg.IsCommand() && msg.Command() == "start" {
		h.handleStart(ctx, msg.Chat.ID)
		return
	}

	s := h.sessions.Get(msg.Chat.ID)
	if s == nil || s.Flow == wizard.FlowNone {
		return
	}

	if err := h.handleStepInput(ctx, s, msg); err != nil {
		// 非法输入不推进步骤，消息已删除即视为拒绝
		logger.Debug(ctx, "step input rejected",
			"flow", string(s.Flow), "step", string(s.Step), "error", err.Error())
	}
}

// handleStart 重建 chat 的锚点消息并回到主菜单
func (h *Handler) handleStart(ctx context.Context, chatID int64) {
	s := h.sessions.GetOrCreate(chatID)

	if s.AnchorMessageID != 0 {
		if err := h.messenger.DeleteMessage(chatID, s.AnchorMessageID); err != nil {
			logger.Debug(ctx, "failed to delete previous anchor", "error", err.Error())
		}
		s.AnchorMessageID = 0
	}

	markup := keyboard.MainMenu()
	messageID, err := h.messenger.SendPhoto(chatID, h.anchorImagePath, textMainMenu, &markup)
	if err != nil {
		logger.Error(ctx, "failed to send anchor message", err, "chat_id", chatID)
		return
	}

	s.AnchorMessageID = messageID
	h.sessions.ResetFlow(chatID)
}

// handleStepInput 将消息内容写入当前步骤对应的草稿字段
func (h *Handler) handleStepInput(ctx context.Context, s *wizard.Session, msg *tgbotapi.Message) error {
	switch s.Step {
	case wizard.StepStoreTitle:
		return h.textStep(ctx, s, msg, wizard.ValidTitle, func(text string) { s.Store.Title = text })
	case wizard.StepStoreDescription:
		return h.textStep(ctx, s, msg, wizard.ValidDescription, func(text string) { s.Store.Description = text })
	case wizard.StepStoreMainURL:
		return h.textStep(ctx, s, msg, wizard.ValidURL, func(text string) { s.Store.MainPageURL = text })

	case wizard.StepStoreResources:
		resources, err := entity.ParseResourceBatch(msg.Text)
		if err != nil {
			return err
		}
		s.Store.ResourcesText = msg.Text
		s.Store.Resources = resources
		s.Advance()
		return h.renderStep(ctx, s)

	case wizard.StepStorePreviewPC:
		return h.mediaStep(ctx, s, msg, func(m *entity.Media) { s.Store.PreviewPC = m })
	case wizard.StepStorePreviewMobile:
		return h.mediaStep(ctx, s, msg, func(m *entity.Media) { s.Store.PreviewMobile = m })
	case wizard.StepStoreMainPC:
		return h.mediaStep(ctx, s, msg, func(m *entity.Media) { s.Store.MainPC = m })
	case wizard.StepStoreMainMobile:
		return h.mediaStep(ctx, s, msg, func(m *entity.Media) { s.Store.MainMobile = m })

	case wizard.StepStorePriority:
		return h.priorityStep(ctx, s, msg, func(priority int) { s.Store.Priority = priority })

	case wizard.StepBannerURL:
		return h.textStep(ctx, s, msg, wizard.ValidURL, func(text string) { s.Banner.TargetURL = text })
	case wizard.StepBannerPC:
		return h.mediaStep(ctx, s, msg, func(m *entity.Media) { s.Banner.PC = m })
	case wizard.StepBannerMobile:
		return h.mediaStep(ctx, s, msg, func(m *entity.Media) { s.Banner.Mobile = m })
	case wizard.StepBannerPriority:
		return h.priorityStep(ctx, s, msg, func(priority int) { s.Banner.Priority = priority })

	case wizard.StepCityTitles:
		if _, err := h.cities.AddBatch(ctx, msg.Text); err != nil {
			return err
		}
		h.sessions.ResetFlow(s.ChatID)
		return h.renderMainMenu(s)

	case wizard.StepCategoryTitles:
		if _, err := h.categories.AddBatch(ctx, msg.Text); err != nil {
			return err
		}
		h.sessions.ResetFlow(s.ChatID)
		return h.renderMainMenu(s)

	case wizard.StepEditValue:
		return h.handleEditValue(ctx, s, msg)

	default:
		return nil
	}
}

// textStep 校验文本输入，写入草稿并推进
func (h *Handler) textStep(ctx context.Context, s *wizard.Session, msg *tgbotapi.Message, valid func(string) bool, assign func(string)) error {
	text := strings.TrimSpace(msg.Text)
	if !valid(text) {
		return errInvalidText
	}
	assign(text)
	s.Advance()
	return h.renderStep(ctx, s)
}

// mediaStep 接收媒体，写入草稿并推进
func (h *Handler) mediaStep(ctx context.Context, s *wizard.Session, msg *tgbotapi.Message, assign func(*entity.Media)) error {
	media, err := extractMedia(ctx, h.messenger, msg)
	if err != nil {
		return err
	}
	assign(media)
	s.Advance()
	return h.renderStep(ctx, s)
}

// priorityStep 接收纯数字优先级，写入草稿并推进
func (h *Handler) priorityStep(ctx context.Context, s *wizard.Session, msg *tgbotapi.Message, assign func(int)) error {
	priority, ok := wizard.ParsePriority(strings.TrimSpace(msg.Text))
	if !ok {
		return errNotANumber
	}
	assign(priority)
	s.Advance()
	return h.renderStep(ctx, s)
}

// handleEditValue 应用单字段编辑并渲染目标对象的编辑菜单
func (h *Handler) handleEditValue(ctx context.Context, s *wizard.Session, msg *tgbotapi.Message) error {
	edit := s.Edit
	text := strings.TrimSpace(msg.Text)

	switch edit.Field {
	case wizard.EditStoreTitle:
		return h.applyStoreEdit(ctx, s, func() error {
			if !wizard.ValidTitle(text) {
				return errInvalidText
			}
			_, err := h.stores.UpdateTitle(ctx, edit.TargetID, text)
			return err
		})
	case wizard.EditStoreDescription:
		return h.applyStoreEdit(ctx, s, func() error {
			if !wizard.ValidDescription(text) {
				return errInvalidText
			}
			_, err := h.stores.UpdateDescription(ctx, edit.TargetID, text)
			return err
		})
	case wizard.EditStoreMainPageURL:
		return h.applyStoreEdit(ctx, s, func() error {
			if !wizard.ValidURL(text) {
				return errInvalidText
			}
			_, err := h.stores.UpdateMainPageURL(ctx, edit.TargetID, text)
			return err
		})
	case wizard.EditStorePriority:
		return h.applyStoreEdit(ctx, s, func() error {
			priority, ok := wizard.ParsePriority(text)
			if !ok {
				return errNotANumber
			}
			_, err := h.stores.UpdatePriority(ctx, edit.TargetID, priority)
			return err
		})

	case wizard.EditStoreResources:
		if _, err := h.resources.AddBatch(ctx, edit.TargetID, msg.Text); err != nil {
			return err
		}
		h.sessions.ResetFlow(s.ChatID)
		return h.renderResourceList(ctx, s, edit.TargetID)

	case wizard.EditStorePreviewPC:
		return h.applyStoreMediaEdit(ctx, s, msg, entity.SlotPCPreview)
	case wizard.EditStorePreviewMobile:
		return h.applyStoreMediaEdit(ctx, s, msg, entity.SlotMobilePreview)
	case wizard.EditStoreMainPC:
		return h.applyStoreMediaEdit(ctx, s, msg, entity.SlotPCMain)
	case wizard.EditStoreMainMobile:
		return h.applyStoreMediaEdit(ctx, s, msg, entity.SlotMobileMain)

	case wizard.EditBannerTargetURL:
		return h.applyBannerEdit(ctx, s, func() error {
			if !wizard.ValidURL(text) {
				return errInvalidText
			}
			_, err := h.banners.UpdateTargetURL(ctx, edit.TargetID, text)
			return err
		})
	case wizard.EditBannerPriority:
		return h.applyBannerEdit(ctx, s, func() error {
			priority, ok := wizard.ParsePriority(text)
			if !ok {
				return errNotANumber
			}
			_, err := h.banners.UpdatePriority(ctx, edit.TargetID, priority)
			return err
		})
	case wizard.EditBannerPC:
		return h.applyBannerMediaEdit(ctx, s, msg, entity.SlotPCBanner)
	case wizard.EditBannerMobile:
		return h.applyBannerMediaEdit(ctx, s, msg, entity.SlotMobileBanner)

	default:
		return nil
	}
}

func (h *Handler) applyStoreEdit(ctx context.Context, s *wizard.Session, apply func() error) error {
	targetID := s.Edit.TargetID
	if err := apply(); err != nil {
		return err
	}
	h.sessions.ResetFlow(s.ChatID)
	return h.renderStoreMenu(ctx, s, targetID)
}

func (h *Handler) applyStoreMediaEdit(ctx context.Context, s *wizard.Session, msg *tgbotapi.Message, slot entity.StoreMediaSlot) error {
	media, err := extractMedia(ctx, h.messenger, msg)
	if err != nil {
		return err
	}
	return h.applyStoreEdit(ctx, s, func() error {
		_, err := h.stores.UpdateMedia(ctx, s.Edit.TargetID, slot, *media)
		return err
	})
}

func (h *Handler) applyBannerEdit(ctx context.Context, s *wizard.Session, apply func() error) error {
	targetID := s.Edit.TargetID
	if err := apply(); err != nil {
		return err
	}
	h.sessions.ResetFlow(s.ChatID)
	return h.renderBannerMenu(ctx, s, targetID)
}

func (h *Handler) applyBannerMediaEdit(ctx context.Context, s *wizard.Session, msg *tgbotapi.Message, slot entity.BannerMediaSlot) error {
	media, err := extractMedia(ctx, h.messenger, msg)
	if err != nil {
		return err
	}
	return h.applyBannerEdit(ctx, s, func() error {
		_, err := h.banners.UpdateMedia(ctx, s.Edit.TargetID, slot, *media)
		return err
	})
}
