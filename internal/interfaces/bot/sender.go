// Package bot 实现 Telegram 管理机器人：长轮询、会话向导与菜单渲染。
package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "store-backoffice/pkg/errors"
)

var tracer = otel.Tracer("bot")

// Messenger 是机器人对 Telegram API 的最小依赖面，便于测试替换
type Messenger interface {
	// SendPhoto 发送图片消息，返回消息 ID
	SendPhoto(chatID int64, photoPath, caption string, markup *tgbotapi.InlineKeyboardMarkup) (int, error)
	// EditCaption 编辑已有消息的标题与内联键盘
	EditCaption(chatID int64, messageID int, caption string, markup *tgbotapi.InlineKeyboardMarkup) error
	// DeleteMessage 删除消息
	DeleteMessage(chatID int64, messageID int) error
	// AckCallback 应答回调查询，清除客户端的加载状态
	AckCallback(callbackID string) error
	// Alert 以弹窗形式应答回调查询
	Alert(callbackID, text string) error
	// DownloadFile 按文件 ID 下载文件内容
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

// Sender 基于 tgbotapi 实现 Messenger
type Sender struct {
	api *tgbotapi.BotAPI
}

// NewSender 创建 Sender
func NewSender(api *tgbotapi.BotAPI) *Sender {
	return &Sender{api: api}
}

// SendPhoto 发送图片消息，返回消息 ID
func (s *Sender) SendPhoto(chatID int64, photoPath, caption string, markup *tgbotapi.InlineKeyboardMarkup) (int, error) {
	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(photoPath))
	msg.Caption = caption
	if markup != nil {
		msg.ReplyMarkup = *markup
	}

	sent, err := s.api.Send(msg)
	if err != nil {
		return 0, apperrors.ErrTelegramError.WithError(fmt.Errorf("failed to send photo: %w", err))
	}
	return sent.MessageID, nil
}

// EditCaption 编辑已有消息的标题与内联键盘
func (s *Sender) EditCaption(chatID int64, messageID int, caption string, markup *tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageCaption(chatID, messageID, caption)
	edit.ReplyMarkup = markup

	if _, err := s.api.Request(edit); err != nil {
		return apperrors.ErrTelegramError.WithError(fmt.Errorf("failed to edit caption: %w", err))
	}
	return nil
}

// DeleteMessage 删除消息
func (s *Sender) DeleteMessage(chatID int64, messageID int) error {
	if _, err := s.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return apperrors.ErrTelegramError.WithError(fmt.Errorf("failed to delete message: %w", err))
	}
	return nil
}

// AckCallback 应答回调查询
func (s *Sender) AckCallback(callbackID string) error {
	if _, err := s.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return apperrors.ErrTelegramError.WithError(fmt.Errorf("failed to ack callback: %w", err))
	}
	return nil
}

// Alert 以弹窗形式应答回调查询
func (s *Sender) Alert(callbackID, text string) error {
	if _, err := s.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		return apperrors.ErrTelegramError.WithError(fmt.Errorf("failed to send alert: %w", err))
	}
	return nil
}

// DownloadFile 按文件 ID 下载文件内容
func (s *Sender) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "sender.DownloadFile", trace.WithAttributes(
		attribute.String("file.id", fileID),
	))
	defer span.End()

	file, err := s.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.ErrTelegramError.WithError(fmt.Errorf("failed to get file: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(s.api.Token), nil)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.ErrTelegramError.WithError(fmt.Errorf("failed to build file request: %w", err))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.ErrTelegramError.WithError(fmt.Errorf("failed to download file: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected file download status: %d", resp.StatusCode)
		span.RecordError(err)
		return nil, apperrors.ErrTelegramError.WithError(err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.ErrTelegramError.WithError(fmt.Errorf("failed to read file body: %w", err))
	}
	return data, nil
}
