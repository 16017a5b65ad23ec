// Package redis 提供基于 Redis 的横幅存储实现
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"store-backoffice/internal/config"
)

var tracer = otel.Tracer("redis")

// Client Redis 客户端
type Client struct {
	rdb    *redis.Client
	config *config.RedisConfig
}

// NewClient 创建 Redis 客户端
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// 验证连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Client{
		rdb:    rdb,
		config: cfg,
	}, nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}

// HealthCheck 健康检查
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "redis.HealthCheck")
	defer span.End()

	result, err := c.rdb.Ping(ctx).Result()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("health check failed: %w", err)
	}
	if result != "PONG" {
		return fmt.Errorf("unexpected ping response: %s", result)
	}
	return nil
}

// Get 获取值（带追踪）
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	ctx, span := tracer.Start(ctx, "redis.Get",
		trace.WithAttributes(attribute.String("redis.key", key)))
	defer span.End()

	result, err := c.rdb.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		span.RecordError(err)
	}
	return result, err
}

// MGet 批量获取值（带追踪）
func (c *Client) MGet(ctx context.Context, keys ...string) ([]interface{}, error) {
	ctx, span := tracer.Start(ctx, "redis.MGet",
		trace.WithAttributes(attribute.Int("redis.key_count", len(keys))))
	defer span.End()

	result, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

// SetAndRegister 写入键值并在事务管道中登记到集合
func (c *Client) SetAndRegister(ctx context.Context, key string, value interface{}, setKey, member string) error {
	ctx, span := tracer.Start(ctx, "redis.SetAndRegister",
		trace.WithAttributes(
			attribute.String("redis.key", key),
			attribute.String("redis.set_key", setKey),
		))
	defer span.End()

	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, key, value, 0)
	pipe.SAdd(ctx, setKey, member)

	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Del 删除键并返回删除数量（带追踪）
func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	ctx, span := tracer.Start(ctx, "redis.Del",
		trace.WithAttributes(attribute.Int("redis.key_count", len(keys))))
	defer span.End()

	removed, err := c.rdb.Del(ctx, keys...).Result()
	if err != nil {
		span.RecordError(err)
	}
	return removed, err
}

// SMembers 返回集合全部成员
func (c *Client) SMembers(ctx context.Context, key string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "redis.SMembers",
		trace.WithAttributes(attribute.String("redis.key", key)))
	defer span.End()

	result, err := c.rdb.SMembers(ctx, key).Result()
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

// SRem 从集合移除成员
func (c *Client) SRem(ctx context.Context, key string, members ...interface{}) error {
	ctx, span := tracer.Start(ctx, "redis.SRem",
		trace.WithAttributes(attribute.String("redis.key", key)))
	defer span.End()

	err := c.rdb.SRem(ctx, key, members...).Err()
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// IsNil 检查是否为 redis.Nil 错误
func IsNil(err error) bool {
	return err == redis.Nil
}
