package suggest

import (
	"context"

	"recipe-suggester/internal/pkg/common"

	"go.uber.org/zap"
)

// StepsService 步驟生成服務
type StepsService struct {
	ai Completer
}

// NewStepsService 創建步驟生成服務
func NewStepsService(ai Completer) *StepsService {
	return &StepsService{ai: ai}
}

// GenerateSteps 把自由文字描述轉成編號步驟。
// 只有上游調用本身失敗才回錯誤；解析永遠能得到非空的步驟列表。
func (s *StepsService) GenerateSteps(ctx context.Context, req *StepsRequest) ([]string, error) {
	prompt := BuildStepsPrompt(req)

	raw, err := s.ai.Complete(ctx, prompt, stepsParams)
	if err != nil {
		return nil, err
	}

	steps, outcome := ParseSteps(raw)
	if outcome == OutcomeFallback {
		common.LogWarn("步驟回應非 JSON 陣列，改用逐行切分",
			zap.Int("step_count", len(steps)),
			zap.Int("response_length", len(raw)),
		)
	}

	return steps, nil
}
