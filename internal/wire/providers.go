// Package wire 提供依赖注入配置
package wire

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"store-backoffice/internal/config"
	"store-backoffice/internal/infrastructure/persistence/postgres"
	"store-backoffice/internal/infrastructure/persistence/redis"
	"store-backoffice/internal/infrastructure/storage/minio"
	"store-backoffice/internal/interfaces/bot"
	"store-backoffice/internal/interfaces/http/router"
)

// App 聚合两个对外表面：HTTP 只读 API 与 Telegram 机器人
type App struct {
	Router *router.Router
	Bot    *bot.Bot
}

// ProvidePostgresClient 提供 PostgreSQL 客户端
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, func(), error) {
	client, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideMinioClient 提供 MinIO 客户端
func ProvideMinioClient(cfg *config.Config) (*minio.Client, error) {
	return minio.NewClient(&cfg.Storage.Minio)
}

// ProvideBotAPI 提供 Telegram API 客户端
func ProvideBotAPI(cfg *config.Config) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Telegram.Debug
	return api, nil
}

// ProvideTelegramConfig 提供 Telegram 配置
func ProvideTelegramConfig(cfg *config.Config) config.TelegramConfig {
	return cfg.Telegram
}

// ProvideAnchorImagePath 提供锚点图片路径
func ProvideAnchorImagePath(cfg *config.Config) string {
	return cfg.Telegram.AnchorImagePath
}
