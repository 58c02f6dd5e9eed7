package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/tools"

	"RestaurantFinder-App/internal/domain/model"
	"RestaurantFinder-App/internal/usecase"
)

const RestaurantToolName = "find_restaurants_by_state"

var _ tools.Tool = &RestaurantTool{}

// ToolDefinition エージェントに公開するツールの定義
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// RestaurantTool 州名を受け取りレストランのプレイスIDを返すツール
type RestaurantTool struct {
	finder usecase.RestaurantFinderUseCase
}

// NewRestaurantTool 新しいRestaurantToolを作成
func NewRestaurantTool(finder usecase.RestaurantFinderUseCase) *RestaurantTool {
	return &RestaurantTool{finder: finder}
}

func (t *RestaurantTool) Name() string {
	return RestaurantToolName
}

func (t *RestaurantTool) Description() string {
	return `Finds restaurants in a US state. Returns a JSON array of Google place IDs.
The state's bounding box is split into four quadrants and each quadrant is searched separately,
so the same place ID can appear more than once.
Input: a JSON object like {"state": "california"} or just the state name.`
}

// InputSchema 必須の文字列フィールド state を1つ持つ
func (t *RestaurantTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"state": map[string]any{
				"type":        "string",
				"description": "US state name, e.g. california",
			},
		},
		"required": []string{"state"},
	}
}

// Definition ツール定義を返す
func (t *RestaurantTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: t.InputSchema(),
	}
}

// Invoke は州名からプレイスIDを返す。ルックアップ失敗時のみエラー
func (t *RestaurantTool) Invoke(ctx context.Context, state string) ([]string, error) {
	result, err := t.finder.FindRestaurantsByState(ctx, state)
	if err != nil {
		return nil, err
	}
	return result.PlaceIDStrings(), nil
}

// Call はエージェントからの呼び出し口。結果はJSON配列の文字列
func (t *RestaurantTool) Call(ctx context.Context, input string) (string, error) {
	state, err := ParseStateInput(input)
	if err != nil {
		return "", err
	}

	ids, err := t.Invoke(ctx, state)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("結果のシリアライズに失敗: %w", err)
	}
	return string(out), nil
}

// ParseStateInput は {"state": "..."} 形式と州名そのままの両方を受け付ける
func ParseStateInput(input string) (string, error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "{") {
		var args struct {
			State string `json:"state"`
		}
		if err := json.Unmarshal([]byte(input), &args); err != nil {
			return "", fmt.Errorf("ツール入力のパースに失敗: %w", err)
		}
		input = args.State
	}

	state := strings.TrimSpace(strings.Trim(strings.TrimSpace(input), `"'`))
	if state == "" {
		return "", model.ErrInvalidState
	}
	return state, nil
}
