package api

import (
	"context"
	"net/http"
	"time"

	"recipe-suggester/internal/api/handlers/health"
	suggestHandler "recipe-suggester/internal/api/handlers/suggest"
	"recipe-suggester/internal/api/middleware"
	"recipe-suggester/internal/core/ai/cache"
	"recipe-suggester/internal/core/ai/service"
	"recipe-suggester/internal/core/suggest"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 整體請求超時
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (1MB)，純文字請求用不到更多
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, responseCache *cache.Cache) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流與去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	if cfg.DedupWindow > 0 {
		router.Use(middleware.Deduplication(cfg))
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", responseCache != nil),
		zap.String("model", cfg.OpenAI.Model),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化服務
	aiService := service.NewService(cfg, responseCache)
	recipeSvc := suggest.NewRecipeService(aiService)
	calorieSvc := suggest.NewCalorieService(aiService)
	stepsSvc := suggest.NewStepsService(aiService)

	// 全局中間件：設置超時與配置
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := suggestHandler.NewHandler(recipeSvc, calorieSvc, stepsSvc)

		recipeGroup := api.Group("/recipes")
		{
			// 根據食材與工具生成食譜
			recipeGroup.POST("/generate", handler.HandleGenerateRecipes)

			// 估算食譜卡路里
			recipeGroup.POST("/calories", handler.HandleEstimateCalories)

			// 把描述轉成編號步驟
			recipeGroup.POST("/steps", handler.HandleGenerateSteps)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
