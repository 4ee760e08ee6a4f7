package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"recipe-suggester/internal/core/ai"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache Redis 回應快取，保存補全服務回傳的原始文字
type Cache struct {
	client *redis.Client
	config *config.CacheConfig
}

// New 創建回應快取。快取停用時回傳 nil（呼叫端以 nil 判斷略過）。
func New(cfg *config.Config) (*Cache, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("回應快取已初始化",
		zap.String("addr", cfg.Cache.Addr),
		zap.Duration("ttl", cfg.Cache.TTL),
	)

	return &Cache{
		client: client,
		config: &cfg.Cache,
	}, nil
}

// Key 以生成參數與 prompt 生成快取鍵
func Key(params ai.Params, prompt string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%g|%d|%s", params.Model, params.Temperature, params.MaxTokens, prompt)))
	return "ai:response:" + hex.EncodeToString(sum[:])
}

// Get 獲取快取的補全文字，未命中回傳 redis.Nil
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("completion")
			return "", err
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	common.LogCacheHit("completion")
	return val, nil
}

// Set 寫入快取
func (c *Cache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, key, value, c.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連接
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
