package suggest

// RecipeRequest 食譜生成請求
// Ingredients 不可為空，其餘欄位皆可省略
type RecipeRequest struct {
	Ingredients []string `json:"ingredients"`
	Tools       []string `json:"tools"`
	Time        *int     `json:"time,omitempty"`     // 分鐘
	Calories    *int     `json:"calories,omitempty"` // 目標卡路里
	Prioritize  string   `json:"prioritize,omitempty"`
	RecipeType  string   `json:"recipeType,omitempty"`
}

// Recipe 單一食譜，欄位缺漏時由 normalizeRecipe 補預設值
type Recipe struct {
	Title             string   `json:"title"`
	Ingredients       []string `json:"ingredients"`
	Steps             []string `json:"steps"`
	EstimatedCalories int      `json:"estimated_calories"`
}

// CalorieEstimateRequest 卡路里估算請求
type CalorieEstimateRequest struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Description string   `json:"description,omitempty"`
}

// StepsRequest 步驟生成請求
type StepsRequest struct {
	Description string `json:"description"`
}
