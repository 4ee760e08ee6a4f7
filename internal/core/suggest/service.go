package suggest

import (
	"context"

	"recipe-suggester/internal/core/ai"
)

// Completer 補全服務介面，單次調用、不重試
type Completer interface {
	Complete(ctx context.Context, prompt string, params ai.Params) (string, error)
}

// 各端點固定的生成參數。模型名稱留空，由 AI 服務以設定補上。
var (
	// 食譜生成：較高溫度、較大輸出預算
	recipeParams = ai.Params{Temperature: 0.7, MaxTokens: 2000}
	// 卡路里估算：低溫度、小輸出預算
	calorieParams = ai.Params{Temperature: 0.3, MaxTokens: 200}
	// 步驟生成：中溫度、中輸出預算
	stepsParams = ai.Params{Temperature: 0.7, MaxTokens: 1000}
)
