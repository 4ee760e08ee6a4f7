package suggest

import (
	"fmt"
	"strconv"
	"strings"
)

// Prompt builder：純字串組裝，不做驗證。
// 缺漏的選填欄位一律以明確的佔位文字呈現（"none"、"any"、"unspecified"），
// 讓模型永遠收到完整的模板。

const recipePromptTemplate = `
You are a friendly cooking assistant. Suggest 3 creative, realistic recipes
based only on the user's available ingredients and tools.

User's ingredients: %s
User's tools: %s
Time limit: %s minutes
Target calories: %s
Prioritize ingredients: %s
Recipe type/description: %s

IMPORTANT: Consider the recipe type/description when creating recipes. If the user wants a "post-workout protein meal", focus on high-protein options. If they want a "smoothie", create drinkable recipes. If they want "comfort food", make hearty, satisfying dishes. If they want "light lunch", create lighter, fresher options.

Return your answer as **strict JSON only** in this exact format (array of recipes):

[
  {
    "title": "Recipe name",
    "ingredients": ["ingredient 1", "ingredient 2"],
    "steps": ["step 1", "step 2"],
    "estimated_calories": 500
  },
  {
    "title": "Another Recipe name",
    "ingredients": ["ingredient 3", "ingredient 4"],
    "steps": ["step 1", "step 2"],
    "estimated_calories": 300
  },
  {
    "title": "Third Recipe name",
    "ingredients": ["ingredient 5", "ingredient 6"],
    "steps": ["step 1", "step 2"],
    "estimated_calories": 400
  }
]
`

const caloriePromptTemplate = `
Estimate the total calories for this recipe based on the ingredients and description.

Recipe Title: "%s"
Ingredients: %s
Description: "%s"

Please provide a reasonable calorie estimate for a typical serving of this dish. Consider:
- The main ingredients and their typical calorie content
- Cooking methods (fried vs baked vs steamed)
- Portion sizes (assume 1 serving unless specified otherwise)
- Common preparation methods

Return your answer as a JSON object with this exact format:
{"estimated_calories": 350}

Make the estimate realistic and based on typical food values. If you cannot make a reasonable estimate, return 0.
`

const stepsPromptTemplate = `
Convert the following recipe description into clear, numbered cooking steps.
Make the steps practical and easy to follow for someone who wants to recreate this dish.

Recipe Description: "%s"

Return your answer as a JSON array of strings, where each string is a cooking step:

["Step 1: ...", "Step 2: ...", "Step 3: ..."]

Make sure the steps are:
- Numbered and clear
- In logical cooking order
- Practical and actionable
- Include cooking times and temperatures where appropriate
- Include any important techniques or tips mentioned
`

// BuildRecipePrompt 組裝食譜生成指令
func BuildRecipePrompt(req *RecipeRequest) string {
	return fmt.Sprintf(recipePromptTemplate,
		joinOr(req.Ingredients, "none"),
		joinOr(req.Tools, "none"),
		intOr(req.Time, "unspecified"),
		intOr(req.Calories, "any"),
		textOr(req.Prioritize, "none"),
		textOr(req.RecipeType, "any type of recipe"),
	)
}

// BuildCaloriePrompt 組裝卡路里估算指令
func BuildCaloriePrompt(req *CalorieEstimateRequest) string {
	return fmt.Sprintf(caloriePromptTemplate,
		req.Title,
		strings.Join(req.Ingredients, ", "),
		textOr(req.Description, "No description provided"),
	)
}

// BuildStepsPrompt 組裝步驟生成指令
func BuildStepsPrompt(req *StepsRequest) string {
	return fmt.Sprintf(stepsPromptTemplate, req.Description)
}

func joinOr(items []string, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, ", ")
}

// 非正數視同未提供
func intOr(v *int, placeholder string) string {
	if v == nil || *v <= 0 {
		return placeholder
	}
	return strconv.Itoa(*v)
}

func textOr(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
