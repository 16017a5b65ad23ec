//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"store-backoffice/internal/application/banner"
	"store-backoffice/internal/application/category"
	"store-backoffice/internal/application/city"
	"store-backoffice/internal/application/resource"
	"store-backoffice/internal/application/store"
	"store-backoffice/internal/application/storelink"
	"store-backoffice/internal/config"
	"store-backoffice/internal/domain/repository"
	"store-backoffice/internal/infrastructure/persistence/postgres"
	"store-backoffice/internal/infrastructure/persistence/redis"
	"store-backoffice/internal/infrastructure/storage/minio"
	"store-backoffice/internal/interfaces/bot"
	"store-backoffice/internal/interfaces/http/handler"
	"store-backoffice/internal/interfaces/http/router"
	"store-backoffice/internal/wizard"
)

// InitializeApp 初始化整个应用
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(
		RepoSet,
		RedisSet,
		StorageSet,
		ServiceSet,
		BotSet,
		RouterSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}

// PostgresSet PostgreSQL 提供者集合
var PostgresSet = wire.NewSet(
	ProvidePostgresClient,
	postgres.NewTxManager,
	postgres.NewStoreRepository,
	postgres.NewCityRepository,
	postgres.NewCategoryRepository,
	postgres.NewStoreCityRepository,
	postgres.NewStoreCategoryRepository,
	postgres.NewStoreResourceRepository,
)

// RepoSet 整合了具体实现与接口绑定的集合
var RepoSet = wire.NewSet(
	PostgresSet,
	wire.Bind(new(repository.Transactor), new(*postgres.TxManager)),
	wire.Bind(new(repository.StoreRepository), new(*postgres.StoreRepository)),
	wire.Bind(new(repository.CityRepository), new(*postgres.CityRepository)),
	wire.Bind(new(repository.CategoryRepository), new(*postgres.CategoryRepository)),
	wire.Bind(new(repository.StoreCityRepository), new(*postgres.StoreCityRepository)),
	wire.Bind(new(repository.StoreCategoryRepository), new(*postgres.StoreCategoryRepository)),
	wire.Bind(new(repository.StoreResourceRepository), new(*postgres.StoreResourceRepository)),
)

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	redis.NewBannerRepository,
	wire.Bind(new(repository.BannerRepository), new(*redis.BannerRepository)),
)

// StorageSet 对象存储提供者集合
var StorageSet = wire.NewSet(
	ProvideMinioClient,
	wire.Bind(new(repository.BlobStore), new(*minio.Client)),
)

// ServiceSet 应用服务提供者集合
var ServiceSet = wire.NewSet(
	store.NewService,
	city.NewService,
	category.NewService,
	banner.NewService,
	storelink.NewService,
	resource.NewService,
)

// BotSet Telegram 机器人提供者集合
var BotSet = wire.NewSet(
	ProvideBotAPI,
	ProvideTelegramConfig,
	ProvideAnchorImagePath,
	wizard.NewManager,
	bot.NewSender,
	wire.Bind(new(bot.Messenger), new(*bot.Sender)),
	bot.NewHandler,
	bot.New,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewHealthHandler,
	handler.NewStoreHandler,
	handler.NewCityHandler,
	handler.NewCategoryHandler,
	handler.NewBannerHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)
