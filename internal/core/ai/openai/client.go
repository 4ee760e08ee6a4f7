package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"recipe-suggester/internal/core/ai"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client OpenAI Chat Completions 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建補全服務客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.OpenAI.BaseURL).
		SetTimeout(cfg.OpenAI.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenAI.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// errorBody 上游錯誤回應結構
type errorBody struct {
	Error struct {
		Message string      `json:"message"`
		Type    string      `json:"type"`
		Code    interface{} `json:"code"`
	} `json:"error"`
}

// Complete 發送一次補全請求並回傳最佳補全的原始文字。
// 單次嘗試，不重試；失敗分類交給 classifyStatus / classifyMessage。
func (c *Client) Complete(ctx context.Context, prompt string, params ai.Params) (string, error) {
	req := map[string]interface{}{
		"model": params.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": params.Temperature,
		"max_tokens":  params.MaxTokens,
	}

	common.LogDebug("Sending request to completion service",
		zap.String("model", params.Model),
		zap.Float64("temperature", params.Temperature),
		zap.Int("max_tokens", params.MaxTokens),
		zap.Int("prompt_length", len(prompt)),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		common.LogError("Failed to send request to completion service",
			zap.Error(err),
			zap.String("model", params.Model),
		)
		return "", classifyMessage(err.Error(), err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("Completion service returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", params.Model),
		)
		return "", classifyStatus(resp.StatusCode(), resp.Body())
	}

	// 解析回應
	var result ai.Response
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse completion response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	content := result.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in completion response")
	}

	common.LogDebug("Completion received",
		zap.String("model", params.Model),
		zap.Int("content_length", len(content)),
		zap.Int("total_tokens", result.Usage.TotalTokens),
	)

	return content, nil
}

// classifyStatus 依上游狀態碼分類錯誤，優先於訊息比對
func classifyStatus(status int, body []byte) error {
	message := upstreamMessage(body)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrInvalidAPIKey.WithCause(fmt.Errorf("completion service error (status %d): %s", status, message))
	case http.StatusTooManyRequests:
		return common.ErrRateLimit.WithCause(fmt.Errorf("completion service error (status %d): %s", status, message))
	}

	return classifyMessage(message, fmt.Errorf("completion service error (status %d): %s", status, message))
}

// classifyMessage 無狀態碼可用時，退回以訊息子字串分類
func classifyMessage(message string, cause error) error {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "api key"):
		return common.ErrInvalidAPIKey.WithCause(cause)
	case strings.Contains(lower, "rate limit"):
		return common.ErrRateLimit.WithCause(cause)
	}
	return cause
}

// upstreamMessage 從錯誤回應體取出訊息，取不到就回傳原文
func upstreamMessage(body []byte) string {
	var parsed errorBody
	if err := common.ParseJSONBytes(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return string(body)
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
