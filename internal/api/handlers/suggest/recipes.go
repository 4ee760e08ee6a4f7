package suggest

import (
	"net/http"

	"recipe-suggester/internal/core/ai/service"
	"recipe-suggester/internal/core/suggest"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleGenerateRecipes 根據食材與工具生成食譜列表
// POST /api/v1/recipes/generate
func (h *Handler) HandleGenerateRecipes(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req suggest.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, common.ErrInvalidRequest, common.ErrInvalidRequest)
		return
	}

	// 輸入驗證必須在任何外部調用之前
	if len(req.Ingredients) == 0 {
		respondError(c, common.ErrNoIngredients, common.ErrNoIngredients)
		return
	}

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestID),
		zap.Int("ingredient_count", len(req.Ingredients)),
		zap.Int("tool_count", len(req.Tools)),
		zap.String("recipe_type", req.RecipeType),
	)

	ctx := service.WithRequestID(c.Request.Context(), requestID)
	recipes, err := h.recipeService.GenerateRecipes(ctx, &req)
	if err != nil {
		common.LogError("食譜生成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, err, common.ErrRecipeGeneration)
		return
	}

	c.JSON(http.StatusOK, recipes)
}
