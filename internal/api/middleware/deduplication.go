package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	// 請求緩存，用於去重
	requestCache = struct {
		sync.RWMutex
		requests map[string]time.Time
	}{
		requests: make(map[string]time.Time),
	}

	cleanupOnce sync.Once
)

// 啟動自動清理 goroutine（只啟動一次）
func startDeduplicationCleanup(window time.Duration) {
	cleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(10 * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				requestCache.Lock()
				for k, t := range requestCache.requests {
					if now.Sub(t) > 10*window {
						delete(requestCache.requests, k)
					}
				}
				requestCache.Unlock()
			}
		}()
	})
}

// Deduplication 請求去重中間件：同一 POST body 在視窗內只接受一次
func Deduplication(cfg *config.Config) gin.HandlerFunc {
	window := time.Second
	if cfg != nil && cfg.DedupWindow > 0 {
		window = cfg.DedupWindow
	}
	startDeduplicationCleanup(window)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		// 計算請求體哈希
		bodyHash := ""
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}

			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if bodyHash != "" {
			fingerprint += ":" + bodyHash
		}

		now := time.Now()
		requestCache.RLock()
		lastTime, exists := requestCache.requests[fingerprint]
		requestCache.RUnlock()
		if exists && now.Sub(lastTime) <= window {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Request too frequent",
				"code":  common.ErrCodeTooManyRequests,
			})
			c.Abort()
			return
		}

		requestCache.Lock()
		requestCache.requests[fingerprint] = now
		requestCache.Unlock()

		c.Next()
	}
}
