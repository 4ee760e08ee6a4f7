package suggest

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"recipe-suggester/internal/pkg/common"
)

// Outcome 標記解析結果的來源
type Outcome int

const (
	// OutcomeParsed 嚴格 JSON 解碼成功
	OutcomeParsed Outcome = iota
	// OutcomeFallback 解碼失敗，結果來自啟發式兜底
	OutcomeFallback
	// OutcomeFailed 終止性失敗，僅食譜解析會發生
	OutcomeFailed
)

// FallbackStep 步驟生成完全失敗時回傳的唯一步驟，前端依賴此字串
const FallbackStep = "1. Follow the description provided"

var (
	fenceTagPattern   = regexp.MustCompile(`^[A-Za-z0-9]*$`)
	integerPattern    = regexp.MustCompile(`\d+`)
	leadingIntPattern = regexp.MustCompile(`^[+-]?\d+`)
	enumMarkerPattern = regexp.MustCompile(`^\d+\.?\s*`)
)

// StripCodeFence 移除包住模型輸出的 markdown code fence。
// 只處理第一對／最後一對 fence，語言標籤（```json）一併移除。
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	first := strings.Index(s, "```")
	if first == -1 {
		return s
	}

	var inner string
	if last := strings.LastIndex(s, "```"); last > first {
		inner = s[first+3 : last]
	} else {
		// 不成對的 fence：只拿掉開頭標記
		inner = s[first+3:]
	}

	// 去掉開頭 fence 的語言標籤
	if nl := strings.IndexByte(inner, '\n'); nl != -1 && fenceTagPattern.MatchString(strings.TrimSpace(inner[:nl])) {
		inner = inner[nl+1:]
	}

	return strings.TrimSpace(s[:first] + inner)
}

// ParseRecipes 解析食譜生成回應。
// 食譜列表會被前端逐欄位取用，啟發式重建有靜默出錯的風險，
// 所以這裡解碼失敗就直接失敗，不做兜底。
func ParseRecipes(raw string) ([]Recipe, Outcome, error) {
	cleaned := StripCodeFence(raw)

	var elems []json.RawMessage
	if err := common.ParseJSON(cleaned, &elems); err != nil {
		if json.Valid([]byte(cleaned)) {
			// JSON 有效但不是陣列
			return nil, OutcomeFailed, common.ErrInvalidFormat.WithCause(err)
		}
		return nil, OutcomeFailed, common.ErrParseError.WithCause(err)
	}

	if len(elems) == 0 {
		return nil, OutcomeFailed, common.ErrInvalidFormat
	}

	// 逐筆修補缺漏欄位，單筆格式錯誤不會使整體失敗
	recipes := make([]Recipe, 0, len(elems))
	for _, elem := range elems {
		var fields map[string]interface{}
		if err := common.ParseJSONBytes(elem, &fields); err != nil {
			recipes = append(recipes, normalizeRecipe(nil))
			continue
		}
		recipes = append(recipes, normalizeRecipe(fields))
	}

	return recipes, OutcomeParsed, nil
}

// normalizeRecipe 把鬆散解析的欄位修補成固定形狀
func normalizeRecipe(fields map[string]interface{}) Recipe {
	recipe := Recipe{
		Title:       "Untitled Recipe",
		Ingredients: []string{},
		Steps:       []string{},
	}
	if fields == nil {
		return recipe
	}

	if title, ok := fields["title"].(string); ok && title != "" {
		recipe.Title = title
	}
	recipe.Ingredients = stringSlice(fields["ingredients"])
	recipe.Steps = stringSlice(fields["steps"])
	recipe.EstimatedCalories = numericInt(fields["estimated_calories"])

	return recipe
}

// ParseCalories 解析卡路里估算回應。永不失敗：
// 解碼失敗時掃描原始文字中第一段連續數字，找不到就回 0。
func ParseCalories(raw string) (int, Outcome) {
	cleaned := StripCodeFence(raw)

	var fields map[string]interface{}
	if err := common.ParseJSON(cleaned, &fields); err == nil {
		return coerceCalories(fields["estimated_calories"]), OutcomeParsed
	}

	if match := integerPattern.FindString(raw); match != "" {
		if n, err := strconv.Atoi(match); err == nil {
			return n, OutcomeFallback
		}
	}
	return 0, OutcomeFallback
}

// ParseSteps 解析步驟生成回應。永不失敗：
// 解碼失敗改為逐行切分，完全沒有內容時回傳單一預設步驟。
func ParseSteps(raw string) ([]string, Outcome) {
	cleaned := StripCodeFence(raw)

	if json.Valid([]byte(cleaned)) {
		var steps []string
		if err := common.ParseJSON(cleaned, &steps); err == nil && len(steps) > 0 {
			return steps, OutcomeParsed
		}
		// 有效 JSON 但不是非空字串陣列
		return []string{FallbackStep}, OutcomeFallback
	}

	if steps := splitSteps(raw); len(steps) > 0 {
		return steps, OutcomeFallback
	}
	return []string{FallbackStep}, OutcomeFallback
}

// splitSteps 把自由文字切成編號步驟：去空行、去原有編號、重新編號
func splitSteps(raw string) []string {
	var steps []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		content := strings.TrimSpace(enumMarkerPattern.ReplaceAllString(line, ""))
		if content == "" {
			continue
		}
		steps = append(steps, "Step "+strconv.Itoa(len(steps)+1)+": "+content)
	}
	return steps
}

// stringSlice 只保留陣列中的字串元素，其他型別一律丟棄
func stringSlice(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// numericInt 僅接受數字型別，非數字回 0，負數收斂到 0
func numericInt(v interface{}) int {
	num, ok := v.(json.Number)
	if !ok {
		return 0
	}
	n, err := num.Int64()
	if err != nil {
		f, ferr := num.Float64()
		if ferr != nil {
			return 0
		}
		n = int64(f)
	}
	if n < 0 {
		return 0
	}
	return int(n)
}

// coerceCalories 比 numericInt 寬鬆：數字字串也接受，
// 取字串開頭的整數（"350 kcal" -> 350）
func coerceCalories(v interface{}) int {
	switch val := v.(type) {
	case json.Number:
		return numericInt(val)
	case string:
		if match := leadingIntPattern.FindString(strings.TrimSpace(val)); match != "" {
			if n, err := strconv.Atoi(match); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}
