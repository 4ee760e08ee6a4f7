package suggest

import (
	"testing"

	"recipe-suggester/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "tagged fence",
			raw:  "```json\n{\"estimated_calories\": 420}\n```",
			want: `{"estimated_calories": 420}`,
		},
		{
			name: "untagged fence",
			raw:  "```\n[\"Step 1: Mix\"]\n```",
			want: `["Step 1: Mix"]`,
		},
		{
			name: "no fence",
			raw:  `{"estimated_calories": 100}`,
			want: `{"estimated_calories": 100}`,
		},
		{
			name: "unbalanced fence",
			raw:  "```json\n{\"a\": 1}",
			want: `{"a": 1}`,
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n```json\n[1]\n```\n  ",
			want: "[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.raw))
		})
	}
}

func TestParseRecipesValid(t *testing.T) {
	raw := `[
		{"title": "Fried Rice", "ingredients": ["rice", "egg"], "steps": ["cook rice", "fry"], "estimated_calories": 500},
		{"title": "Omelette", "ingredients": ["egg"], "steps": ["whisk", "fry"], "estimated_calories": 300}
	]`

	recipes, outcome, err := ParseRecipes(raw)
	require.NoError(t, err)
	assert.Equal(t, OutcomeParsed, outcome)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Fried Rice", recipes[0].Title)
	assert.Equal(t, []string{"rice", "egg"}, recipes[0].Ingredients)
	assert.Equal(t, 500, recipes[0].EstimatedCalories)
}

func TestParseRecipesFenced(t *testing.T) {
	raw := "```json\n[{\"title\": \"Toast\", \"ingredients\": [\"bread\"], \"steps\": [\"toast it\"], \"estimated_calories\": 120}]\n```"

	recipes, _, err := ParseRecipes(raw)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Toast", recipes[0].Title)
}

func TestParseRecipesAppliesDefaults(t *testing.T) {
	// 欄位缺漏或型別錯誤的食譜會被修補，不會被拒絕
	raw := `[
		{},
		{"title": "", "ingredients": "not an array", "steps": null, "estimated_calories": "300"},
		{"title": "Soup", "ingredients": ["water", 42], "steps": ["boil"], "estimated_calories": 450.7},
		{"title": "Weird", "ingredients": [], "steps": [], "estimated_calories": -50}
	]`

	recipes, _, err := ParseRecipes(raw)
	require.NoError(t, err)
	require.Len(t, recipes, 4)

	assert.Equal(t, "Untitled Recipe", recipes[0].Title)
	assert.Equal(t, []string{}, recipes[0].Ingredients)
	assert.Equal(t, []string{}, recipes[0].Steps)
	assert.Equal(t, 0, recipes[0].EstimatedCalories)

	assert.Equal(t, "Untitled Recipe", recipes[1].Title)
	assert.Equal(t, []string{}, recipes[1].Ingredients)
	// 字串型卡路里在食譜端點不被接受
	assert.Equal(t, 0, recipes[1].EstimatedCalories)

	// 非字串元素被丟棄，浮點數卡路里取整
	assert.Equal(t, []string{"water"}, recipes[2].Ingredients)
	assert.Equal(t, 450, recipes[2].EstimatedCalories)

	// 負數收斂到 0
	assert.Equal(t, 0, recipes[3].EstimatedCalories)
}

func TestParseRecipesInvalidJSON(t *testing.T) {
	recipes, outcome, err := ParseRecipes("Sorry, I can't help with that.")
	require.Error(t, err)
	assert.Nil(t, recipes)
	assert.Equal(t, OutcomeFailed, outcome)

	var cerr *common.CustomError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, common.ErrCodeParseError, cerr.Code)
}

func TestParseRecipesNotAnArray(t *testing.T) {
	_, _, err := ParseRecipes(`{"title": "Single Recipe"}`)
	require.Error(t, err)

	var cerr *common.CustomError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, common.ErrCodeInvalidFormat, cerr.Code)
}

func TestParseRecipesEmptyArray(t *testing.T) {
	_, _, err := ParseRecipes(`[]`)
	require.Error(t, err)

	var cerr *common.CustomError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, common.ErrCodeInvalidFormat, cerr.Code)
}

func TestParseCaloriesFencedJSON(t *testing.T) {
	calories, outcome := ParseCalories("```json\n{\"estimated_calories\": 420}\n```")
	assert.Equal(t, 420, calories)
	assert.Equal(t, OutcomeParsed, outcome)
}

func TestParseCaloriesTextFallback(t *testing.T) {
	calories, outcome := ParseCalories("I think around 350 kcal")
	assert.Equal(t, 350, calories)
	assert.Equal(t, OutcomeFallback, outcome)
}

func TestParseCaloriesNoDigits(t *testing.T) {
	calories, outcome := ParseCalories("I cannot estimate that.")
	assert.Equal(t, 0, calories)
	assert.Equal(t, OutcomeFallback, outcome)
}

func TestParseCaloriesStringValue(t *testing.T) {
	calories, outcome := ParseCalories(`{"estimated_calories": "480"}`)
	assert.Equal(t, 480, calories)
	assert.Equal(t, OutcomeParsed, outcome)
}

func TestParseCaloriesNegativeClampsToZero(t *testing.T) {
	calories, _ := ParseCalories(`{"estimated_calories": -100}`)
	assert.Equal(t, 0, calories)
}

func TestParseCaloriesMissingField(t *testing.T) {
	calories, outcome := ParseCalories(`{"something_else": 9}`)
	assert.Equal(t, 0, calories)
	assert.Equal(t, OutcomeParsed, outcome)
}

func TestParseStepsValidArray(t *testing.T) {
	steps, outcome := ParseSteps(`["Step 1: Preheat oven", "Step 2: Bake"]`)
	assert.Equal(t, OutcomeParsed, outcome)
	assert.Equal(t, []string{"Step 1: Preheat oven", "Step 2: Bake"}, steps)
}

func TestParseStepsNumberedTextFallback(t *testing.T) {
	steps, outcome := ParseSteps("1. Preheat oven\n2. Mix batter\n3. Bake 20 minutes")
	assert.Equal(t, OutcomeFallback, outcome)
	require.Len(t, steps, 3)
	assert.Equal(t, "Step 1: Preheat oven", steps[0])
	assert.Equal(t, "Step 2: Mix batter", steps[1])
	assert.Equal(t, "Step 3: Bake 20 minutes", steps[2])
}

func TestParseStepsRenumbersAfterDroppingEmptyLines(t *testing.T) {
	steps, _ := ParseSteps("1.\n\n5. Mix everything\n\n9. Serve")
	require.Len(t, steps, 2)
	assert.Equal(t, "Step 1: Mix everything", steps[0])
	assert.Equal(t, "Step 2: Serve", steps[1])
}

func TestParseStepsEmptyResponse(t *testing.T) {
	steps, outcome := ParseSteps("")
	assert.Equal(t, OutcomeFallback, outcome)
	assert.Equal(t, []string{FallbackStep}, steps)
}

func TestParseStepsNonArrayJSON(t *testing.T) {
	steps, outcome := ParseSteps(`{"steps": ["a", "b"]}`)
	assert.Equal(t, OutcomeFallback, outcome)
	assert.Equal(t, []string{FallbackStep}, steps)
}

func TestParseStepsEmptyArray(t *testing.T) {
	steps, _ := ParseSteps(`[]`)
	assert.Equal(t, []string{FallbackStep}, steps)
}
