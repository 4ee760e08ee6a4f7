package common

import (
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Error string `json:"error"` // 錯誤信息
	Code  string `json:"code"`  // 錯誤代碼
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// WithCause 回傳帶原始錯誤的副本
func (e *CustomError) WithCause(err error) *CustomError {
	return &CustomError{
		Code:    e.Code,
		Message: e.Message,
		Status:  e.Status,
		Err:     err,
	}
}

// 預定義錯誤代碼（客戶端依賴這些字串，不可改名）
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNoIngredients   = "NO_INGREDIENTS"    // 400
	ErrCodeMissingData     = "MISSING_DATA"      // 400
	ErrCodeNoDescription   = "NO_DESCRIPTION"    // 400
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429
	ErrCodeRateLimit       = "RATE_LIMIT"        // 429
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"   // 504

	// 服務器錯誤 (5xx)
	ErrCodeInternalError   = "INTERNAL_ERROR"   // 500
	ErrCodeAPIKeyMissing   = "API_KEY_MISSING"  // 500
	ErrCodeInvalidAPIKey   = "INVALID_API_KEY"  // 500
	ErrCodeParseError      = "PARSE_ERROR"      // 500
	ErrCodeInvalidFormat   = "INVALID_FORMAT"   // 500
	ErrCodeGenerationError = "GENERATION_ERROR" // 500
	ErrCodeEstimationError = "ESTIMATION_ERROR" // 500
)

// 預定義錯誤（訊息為前端顯示用字串，保持原樣）
var (
	// 客戶端錯誤
	ErrInvalidRequest = NewError(ErrCodeInvalidRequest, "Invalid request format.", http.StatusBadRequest, nil)
	ErrNoIngredients  = NewError(ErrCodeNoIngredients, "No ingredients provided.", http.StatusBadRequest, nil)
	ErrMissingData    = NewError(ErrCodeMissingData, "Title and ingredients are required.", http.StatusBadRequest, nil)
	ErrNoDescription  = NewError(ErrCodeNoDescription, "Description is required.", http.StatusBadRequest, nil)

	// 憑證與上游錯誤
	ErrAPIKeyMissing = NewError(ErrCodeAPIKeyMissing, "OpenAI API key not configured.", http.StatusInternalServerError, nil)
	ErrInvalidAPIKey = NewError(ErrCodeInvalidAPIKey, "OpenAI API key is invalid or missing.", http.StatusInternalServerError, nil)
	ErrRateLimit     = NewError(ErrCodeRateLimit, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests, nil)

	// 解析錯誤（僅食譜生成端點會對外回報）
	ErrParseError    = NewError(ErrCodeParseError, "Failed to parse recipe response from AI.", http.StatusInternalServerError, nil)
	ErrInvalidFormat = NewError(ErrCodeInvalidFormat, "Invalid recipe format received from AI.", http.StatusInternalServerError, nil)

	// 各端點的兜底錯誤
	ErrRecipeGeneration = NewError(ErrCodeGenerationError, "Failed to generate recipes. Please try again.", http.StatusInternalServerError, nil)
	ErrStepsGeneration  = NewError(ErrCodeGenerationError, "Failed to generate steps. Please try again.", http.StatusInternalServerError, nil)
	ErrEstimation       = NewError(ErrCodeEstimationError, "Failed to estimate calories. Please try again.", http.StatusInternalServerError, nil)

	ErrInternalError = NewError(ErrCodeInternalError, "Internal server error.", http.StatusInternalServerError, nil)
)
