package agent

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"RestaurantFinder-App/internal/config"
)

// NewLLM は設定に応じてLLMクライアントを生成する
func NewLLM(ctx context.Context, cfg *config.Config) (llms.Model, error) {
	switch cfg.LLMProvider {
	case config.LLMProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEYが設定されていません")
		}
		llm, err := openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(cfg.OpenAIModel),
		)
		if err != nil {
			return nil, fmt.Errorf("OpenAIクライアントの初期化に失敗: %w", err)
		}
		return llm, nil

	case config.LLMProviderGoogleAI:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEYが設定されていません")
		}
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel(cfg.GeminiModel),
		)
		if err != nil {
			return nil, fmt.Errorf("Geminiクライアントの初期化に失敗: %w", err)
		}
		return llm, nil
	}

	return nil, fmt.Errorf("未対応のLLM_PROVIDERです: %q", cfg.LLMProvider)
}
