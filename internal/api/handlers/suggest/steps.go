package suggest

import (
	"net/http"
	"strings"

	"recipe-suggester/internal/core/ai/service"
	"recipe-suggester/internal/core/suggest"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StepsResponse 步驟生成響應
type StepsResponse struct {
	Steps []string `json:"steps"`
}

// HandleGenerateSteps 把食譜描述轉成編號步驟
// POST /api/v1/recipes/steps
func (h *Handler) HandleGenerateSteps(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req suggest.StepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, common.ErrInvalidRequest, common.ErrInvalidRequest)
		return
	}

	// 輸入驗證必須在任何外部調用之前
	if strings.TrimSpace(req.Description) == "" {
		respondError(c, common.ErrNoDescription, common.ErrNoDescription)
		return
	}

	common.LogInfo("開始處理步驟生成請求",
		zap.String("request_id", requestID),
		zap.Int("description_length", len(req.Description)),
	)

	ctx := service.WithRequestID(c.Request.Context(), requestID)
	steps, err := h.stepsService.GenerateSteps(ctx, &req)
	if err != nil {
		common.LogError("步驟生成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, err, common.ErrStepsGeneration)
		return
	}

	c.JSON(http.StatusOK, StepsResponse{Steps: steps})
}
