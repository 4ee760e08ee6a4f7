package suggest

import (
	"net/http"

	"recipe-suggester/internal/core/ai/service"
	"recipe-suggester/internal/core/suggest"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalorieEstimateResponse 卡路里估算響應
type CalorieEstimateResponse struct {
	EstimatedCalories int `json:"estimated_calories"`
}

// HandleEstimateCalories 估算食譜卡路里
// POST /api/v1/recipes/calories
func (h *Handler) HandleEstimateCalories(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req suggest.CalorieEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, common.ErrInvalidRequest, common.ErrInvalidRequest)
		return
	}

	// 輸入驗證必須在任何外部調用之前
	if req.Title == "" || len(req.Ingredients) == 0 {
		respondError(c, common.ErrMissingData, common.ErrMissingData)
		return
	}

	common.LogInfo("開始處理卡路里估算請求",
		zap.String("request_id", requestID),
		zap.String("title", req.Title),
		zap.Int("ingredient_count", len(req.Ingredients)),
	)

	ctx := service.WithRequestID(c.Request.Context(), requestID)
	calories, err := h.calorieService.EstimateCalories(ctx, &req)
	if err != nil {
		common.LogError("卡路里估算失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, err, common.ErrEstimation)
		return
	}

	c.JSON(http.StatusOK, CalorieEstimateResponse{EstimatedCalories: calories})
}
