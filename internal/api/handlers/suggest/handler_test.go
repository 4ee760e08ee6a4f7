package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipe-suggester/internal/core/suggest"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecipeService struct {
	recipes []suggest.Recipe
	err     error
	calls   int
}

func (s *stubRecipeService) GenerateRecipes(ctx context.Context, req *suggest.RecipeRequest) ([]suggest.Recipe, error) {
	s.calls++
	return s.recipes, s.err
}

type stubCalorieService struct {
	calories int
	err      error
	calls    int
}

func (s *stubCalorieService) EstimateCalories(ctx context.Context, req *suggest.CalorieEstimateRequest) (int, error) {
	s.calls++
	return s.calories, s.err
}

type stubStepsService struct {
	steps []string
	err   error
	calls int
}

func (s *stubStepsService) GenerateSteps(ctx context.Context, req *suggest.StepsRequest) ([]string, error) {
	s.calls++
	return s.steps, s.err
}

func setupRouter(recipes *stubRecipeService, calories *stubCalorieService, steps *stubStepsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(recipes, calories, steps)
	router.POST("/api/v1/recipes/generate", handler.HandleGenerateRecipes)
	router.POST("/api/v1/recipes/calories", handler.HandleEstimateCalories)
	router.POST("/api/v1/recipes/steps", handler.HandleGenerateSteps)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) common.ErrorResponse {
	t.Helper()
	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGenerateRecipesSuccess(t *testing.T) {
	recipeSvc := &stubRecipeService{recipes: []suggest.Recipe{
		{Title: "Fried Rice", Ingredients: []string{"rice"}, Steps: []string{"fry"}, EstimatedCalories: 500},
	}}
	router := setupRouter(recipeSvc, &stubCalorieService{}, &stubStepsService{})

	w := doJSON(t, router, "/api/v1/recipes/generate", `{"ingredients": ["rice"], "tools": []}`)

	require.Equal(t, http.StatusOK, w.Code)

	var recipes []suggest.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, "Fried Rice", recipes[0].Title)
	assert.Equal(t, 1, recipeSvc.calls)
}

func TestGenerateRecipesEmptyIngredients(t *testing.T) {
	recipeSvc := &stubRecipeService{}
	router := setupRouter(recipeSvc, &stubCalorieService{}, &stubStepsService{})

	w := doJSON(t, router, "/api/v1/recipes/generate", `{"ingredients": [], "tools": ["pan"]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, common.ErrCodeNoIngredients, resp.Code)
	// 驗證失敗時不得觸發任何外部調用
	assert.Equal(t, 0, recipeSvc.calls)
}

func TestGenerateRecipesParseErrorIsServerError(t *testing.T) {
	recipeSvc := &stubRecipeService{err: common.ErrParseError}
	router := setupRouter(recipeSvc, &stubCalorieService{}, &stubStepsService{})

	w := doJSON(t, router, "/api/v1/recipes/generate", `{"ingredients": ["egg"]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, common.ErrCodeParseError, decodeError(t, w).Code)
}

func TestGenerateRecipesRateLimitMapsTo429(t *testing.T) {
	recipeSvc := &stubRecipeService{err: common.ErrRateLimit}
	router := setupRouter(recipeSvc, &stubCalorieService{}, &stubStepsService{})

	w := doJSON(t, router, "/api/v1/recipes/generate", `{"ingredients": ["egg"]}`)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, common.ErrCodeRateLimit, decodeError(t, w).Code)
}

func TestGenerateRecipesMissingCredential(t *testing.T) {
	recipeSvc := &stubRecipeService{err: common.ErrAPIKeyMissing}
	router := setupRouter(recipeSvc, &stubCalorieService{}, &stubStepsService{})

	w := doJSON(t, router, "/api/v1/recipes/generate", `{"ingredients": ["egg"]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, common.ErrCodeAPIKeyMissing, decodeError(t, w).Code)
}

func TestGenerateRecipesUnclassifiedErrorUsesFallbackCode(t *testing.T) {
	recipeSvc := &stubRecipeService{err: context.DeadlineExceeded}
	router := setupRouter(recipeSvc, &stubCalorieService{}, &stubStepsService{})

	w := doJSON(t, router, "/api/v1/recipes/generate", `{"ingredients": ["egg"]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, common.ErrCodeGenerationError, decodeError(t, w).Code)
}

func TestEstimateCaloriesSuccess(t *testing.T) {
	calorieSvc := &stubCalorieService{calories: 420}
	router := setupRouter(&stubRecipeService{}, calorieSvc, &stubStepsService{})

	w := doJSON(t, router, "/api/v1/recipes/calories", `{"title": "Toast", "ingredients": ["bread"]}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp CalorieEstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 420, resp.EstimatedCalories)
}

func TestEstimateCaloriesMissingData(t *testing.T) {
	calorieSvc := &stubCalorieService{}
	router := setupRouter(&stubRecipeService{}, calorieSvc, &stubStepsService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"ingredients": ["bread"]}`},
		{"empty ingredients", `{"title": "Toast", "ingredients": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, "/api/v1/recipes/calories", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, common.ErrCodeMissingData, decodeError(t, w).Code)
		})
	}
	assert.Equal(t, 0, calorieSvc.calls)
}

func TestEstimateCaloriesUpstreamFailureUsesEstimationCode(t *testing.T) {
	calorieSvc := &stubCalorieService{err: context.DeadlineExceeded}
	router := setupRouter(&stubRecipeService{}, calorieSvc, &stubStepsService{})

	w := doJSON(t, router, "/api/v1/recipes/calories", `{"title": "Toast", "ingredients": ["bread"]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, common.ErrCodeEstimationError, decodeError(t, w).Code)
}

func TestGenerateStepsSuccess(t *testing.T) {
	stepsSvc := &stubStepsService{steps: []string{"Step 1: Mix", "Step 2: Bake"}}
	router := setupRouter(&stubRecipeService{}, &stubCalorieService{}, stepsSvc)

	w := doJSON(t, router, "/api/v1/recipes/steps", `{"description": "bake a cake"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StepsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Step 1: Mix", "Step 2: Bake"}, resp.Steps)
}

func TestGenerateStepsBlankDescription(t *testing.T) {
	stepsSvc := &stubStepsService{}
	router := setupRouter(&stubRecipeService{}, &stubCalorieService{}, stepsSvc)

	w := doJSON(t, router, "/api/v1/recipes/steps", `{"description": "   "}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, common.ErrCodeNoDescription, decodeError(t, w).Code)
	assert.Equal(t, 0, stepsSvc.calls)
}

func TestInvalidJSONBody(t *testing.T) {
	router := setupRouter(&stubRecipeService{}, &stubCalorieService{}, &stubStepsService{})

	w := doJSON(t, router, "/api/v1/recipes/generate", `{not json`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, common.ErrCodeInvalidRequest, decodeError(t, w).Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := setupRouter(&stubRecipeService{recipes: []suggest.Recipe{{Title: "x"}}}, &stubCalorieService{}, &stubStepsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/generate", bytes.NewBufferString(`{"ingredients": ["egg"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
