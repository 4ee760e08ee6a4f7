package suggest

import (
	"context"

	"recipe-suggester/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeService 食譜生成服務
type RecipeService struct {
	ai Completer
}

// NewRecipeService 創建食譜生成服務
func NewRecipeService(ai Completer) *RecipeService {
	return &RecipeService{ai: ai}
}

// GenerateRecipes 根據可用食材與工具生成食譜列表。
// 呼叫端已驗證過 Ingredients 非空。回傳的列表保證非空、
// 每筆欄位齊全；解析失敗直接回報錯誤，不偽造部分結果。
func (s *RecipeService) GenerateRecipes(ctx context.Context, req *RecipeRequest) ([]Recipe, error) {
	prompt := BuildRecipePrompt(req)

	raw, err := s.ai.Complete(ctx, prompt, recipeParams)
	if err != nil {
		return nil, err
	}

	recipes, _, err := ParseRecipes(raw)
	if err != nil {
		common.LogError("食譜回應解析失敗",
			zap.Error(err),
			zap.Int("response_length", len(raw)),
		)
		return nil, err
	}

	common.LogInfo("食譜生成完成",
		zap.Int("recipe_count", len(recipes)),
	)
	return recipes, nil
}
