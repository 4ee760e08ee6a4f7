package suggest

import (
	"context"
	"errors"

	"recipe-suggester/internal/core/suggest"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecipeGenerator 食譜生成服務介面
type RecipeGenerator interface {
	GenerateRecipes(ctx context.Context, req *suggest.RecipeRequest) ([]suggest.Recipe, error)
}

// CalorieEstimator 卡路里估算服務介面
type CalorieEstimator interface {
	EstimateCalories(ctx context.Context, req *suggest.CalorieEstimateRequest) (int, error)
}

// StepsGenerator 步驟生成服務介面
type StepsGenerator interface {
	GenerateSteps(ctx context.Context, req *suggest.StepsRequest) ([]string, error)
}

// Handler 食譜建議處理程序
type Handler struct {
	recipeService  RecipeGenerator
	calorieService CalorieEstimator
	stepsService   StepsGenerator
}

// NewHandler 創建新的處理程序
func NewHandler(recipeService RecipeGenerator, calorieService CalorieEstimator, stepsService StepsGenerator) *Handler {
	return &Handler{
		recipeService:  recipeService,
		calorieService: calorieService,
		stepsService:   stepsService,
	}
}

// ensureRequestID 沒有請求 ID 時補一個
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// respondError 統一錯誤響應：已分類的錯誤帶自己的狀態碼與代碼，
// 其餘一律用該端點的兜底錯誤
func respondError(c *gin.Context, err error, fallback *common.CustomError) {
	var cerr *common.CustomError
	if !errors.As(err, &cerr) {
		cerr = fallback
	}
	c.JSON(cerr.Status, common.ErrorResponse{
		Error: cerr.Message,
		Code:  cerr.Code,
	})
	c.Abort()
}
