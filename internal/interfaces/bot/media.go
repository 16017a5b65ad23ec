package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"store-backoffice/internal/domain/entity"
	apperrors "store-backoffice/pkg/errors"
)

// extractMedia 从入站消息提取媒体内容。
// 图片按最大尺寸取用并存为 png，动图取其 mp4 封装，其余类型拒绝。
func extractMedia(ctx context.Context, messenger Messenger, msg *tgbotapi.Message) (*entity.Media, error) {
	switch {
	case len(msg.Photo) > 0:
		largest := msg.Photo[len(msg.Photo)-1]
		data, err := messenger.DownloadFile(ctx, largest.FileID)
		if err != nil {
			return nil, err
		}
		return &entity.Media{Data: data, Type: entity.MediaPNG}, nil

	case msg.Animation != nil:
		data, err := messenger.DownloadFile(ctx, msg.Animation.FileID)
		if err != nil {
			return nil, err
		}
		return &entity.Media{Data: data, Type: entity.MediaGIF}, nil

	default:
		return nil, apperrors.ErrInvalidMedia
	}
}
