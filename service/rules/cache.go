/*
 * @module service/rules/cache
 * @description 远程规则文档的Redis缓存，降低规则刷新时对规则源的请求压力
 * @architecture 适配器模式 - 封装Redis客户端提供缓存读写
 * @documentReference ai_docs/brand_review_req.md
 * @stateFlow 读缓存 -> 未命中则回源 -> 写缓存
 * @rules 缓存为尽力而为, Redis不可用时静默降级为直接回源
 * @dependencies github.com/go-redis/redis/v8
 * @refs service/rules/repository.go
 */

package rules

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

const remoteCacheKeyPrefix = "brandreview:ruleset:"

// RemoteCache 远程规则文档缓存
type RemoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRemoteCacheFromEnv 根据环境变量创建缓存
// 未配置 REDIS_ADDR 时返回 nil, 仓库将直接回源
func NewRemoteCacheFromEnv() *RemoteCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	ttl := 5 * time.Minute
	if val := os.Getenv("RULES_CACHE_TTL"); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	slog.Info("规则缓存已启用", "addr", addr, "ttl", ttl.String())
	return &RemoteCache{client: client, ttl: ttl}
}

// Get 读取缓存的规则文档
func (c *RemoteCache) Get(ctx context.Context, source string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, remoteCacheKeyPrefix+source).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("读取规则缓存失败", "source", source, "error", err)
		}
		return nil, false
	}
	return data, true
}

// Set 写入缓存, 失败仅记录日志
func (c *RemoteCache) Set(ctx context.Context, source string, data []byte) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, remoteCacheKeyPrefix+source, data, c.ttl).Err(); err != nil {
		slog.Warn("写入规则缓存失败", "source", source, "error", err)
	}
}

// Close 关闭Redis连接
func (c *RemoteCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
