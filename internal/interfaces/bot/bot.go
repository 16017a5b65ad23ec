package bot

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"store-backoffice/internal/config"
	"store-backoffice/pkg/logger"
	"store-backoffice/pkg/metrics"
)

// chatQueueSize 单个 chat 待处理更新的缓冲长度
const chatQueueSize = 16

// Bot 负责长轮询拉取更新并按 chat 串行分发给 Handler。
// 同一 chat 的更新顺序处理，不同 chat 并发处理。
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	cfg     config.TelegramConfig

	admins map[int64]struct{}

	mu     sync.Mutex
	queues map[int64]chan tgbotapi.Update
	wg     sync.WaitGroup
}

// New 创建 Bot
func New(cfg config.TelegramConfig, api *tgbotapi.BotAPI, handler *Handler) *Bot {
	admins := make(map[int64]struct{}, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = struct{}{}
	}

	return &Bot{
		api:     api,
		handler: handler,
		cfg:     cfg,
		admins:  admins,
		queues:  make(map[int64]chan tgbotapi.Update),
	}
}

// API 返回底层 tgbotapi 客户端
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

// Run 启动长轮询循环，阻塞直到 ctx 取消
func (b *Bot) Run(ctx context.Context) error {
	logger.Info(ctx, "bot started", "username", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.cfg.UpdateTimeout

	updates := b.api.GetUpdatesChan(updateConfig)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.drain()
			logger.Info(ctx, "bot stopped")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				b.drain()
				return nil
			}
			b.dispatch(ctx, update)
		}
	}
}

// dispatch 校验更新来源并投递到对应 chat 的队列
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	chatID, userID, ok := updateOrigin(update)
	if !ok {
		return
	}

	if _, allowed := b.admins[userID]; !allowed {
		metrics.BotUpdatesTotal.WithLabelValues(updateKind(update), "forbidden").Inc()
		logger.Warn(ctx, "update from non-admin user dropped", "user_id", userID)
		return
	}

	// 队列满说明该 chat 的消费协程被长操作占住，
	// 丢弃更新以保证其它 chat 的分发不被拖住
	select {
	case b.queue(ctx, chatID) <- update:
	default:
		metrics.BotUpdatesTotal.WithLabelValues(updateKind(update), "dropped").Inc()
		logger.Warn(ctx, "chat queue full, update dropped", "chat_id", chatID)
	}
}

// queue 返回 chat 的更新队列，不存在时创建并启动消费协程
func (b *Bot) queue(ctx context.Context, chatID int64) chan tgbotapi.Update {
	b.mu.Lock()
	defer b.mu.Unlock()

	if q, ok := b.queues[chatID]; ok {
		return q
	}

	q := make(chan tgbotapi.Update, chatQueueSize)
	b.queues[chatID] = q

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for update := range q {
			b.handle(ctx, chatID, update)
		}
	}()

	return q
}

// handle 处理单条更新并记录指标
func (b *Bot) handle(ctx context.Context, chatID int64, update tgbotapi.Update) {
	kind := updateKind(update)
	start := time.Now()

	ctx = logger.WithContext(ctx, logger.ChatIDKey, chatID)

	switch {
	case update.Message != nil:
		b.handler.HandleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handler.HandleCallback(ctx, update.CallbackQuery)
	}

	metrics.BotUpdatesTotal.WithLabelValues(kind, "ok").Inc()
	metrics.BotUpdateDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// drain 关闭全部队列并等待消费协程退出
func (b *Bot) drain() {
	b.mu.Lock()
	for chatID, q := range b.queues {
		close(q)
		delete(b.queues, chatID)
	}
	b.mu.Unlock()

	b.wg.Wait()
}

// updateOrigin 提取更新的 chat 与用户标识
func updateOrigin(update tgbotapi.Update) (chatID, userID int64, ok bool) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.Chat.ID, update.Message.From.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID, update.CallbackQuery.From.ID, true
	default:
		return 0, 0, false
	}
}

// updateKind 返回更新类型标签
func updateKind(update tgbotapi.Update) string {
	if update.CallbackQuery != nil {
		return "callback"
	}
	return "message"
}
