package suggest

import (
	"context"

	"recipe-suggester/internal/pkg/common"

	"go.uber.org/zap"
)

// CalorieService 卡路里估算服務
type CalorieService struct {
	ai Completer
}

// NewCalorieService 創建卡路里估算服務
func NewCalorieService(ai Completer) *CalorieService {
	return &CalorieService{ai: ai}
}

// EstimateCalories 估算整道食譜的卡路里。
// 只有上游調用本身失敗才回錯誤；回應解析永遠能得到一個非負整數。
func (s *CalorieService) EstimateCalories(ctx context.Context, req *CalorieEstimateRequest) (int, error) {
	prompt := BuildCaloriePrompt(req)

	raw, err := s.ai.Complete(ctx, prompt, calorieParams)
	if err != nil {
		return 0, err
	}

	calories, outcome := ParseCalories(raw)
	if outcome == OutcomeFallback {
		common.LogWarn("卡路里回應非 JSON，改用數字掃描",
			zap.Int("estimated_calories", calories),
			zap.Int("response_length", len(raw)),
		)
	}

	return calories, nil
}
