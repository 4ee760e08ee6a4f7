package service

import (
	"context"
	"time"

	"recipe-suggester/internal/core/ai"
	"recipe-suggester/internal/core/ai/cache"
	"recipe-suggester/internal/core/ai/openai"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"
)

// Service AI 服務：憑證檢查、快取查詢、單次補全調用
type Service struct {
	config *config.Config
	client *openai.Client
	cache  *cache.Cache
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, responseCache *cache.Cache) *Service {
	return &Service{
		config: cfg,
		client: openai.NewClient(cfg),
		cache:  responseCache,
	}
}

// Complete 統一對外方法。發出外部調用前先檢查憑證；
// 快取只作加速，讀寫失敗一律降級為直接調用。
func (s *Service) Complete(ctx context.Context, prompt string, params ai.Params) (string, error) {
	if s.config.OpenAI.APIKey == "" {
		return "", common.ErrAPIKeyMissing
	}

	if params.Model == "" {
		params.Model = s.config.OpenAI.Model
	}

	key := cache.Key(params, prompt)

	// 檢查快取
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, key); err == nil && val != "" {
			return val, nil
		}
	}

	start := time.Now()
	content, err := s.client.Complete(ctx, prompt, params)
	common.LogAICall(time.Since(start), err, requestIDFrom(ctx))
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, content)
	}

	return content, nil
}

type requestIDKey struct{}

// WithRequestID 把請求 ID 放進 context，供 AI 調用日誌使用
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
