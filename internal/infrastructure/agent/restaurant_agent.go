package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"
)

// ErrEmptyMessage メッセージが空
var ErrEmptyMessage = errors.New("メッセージが空です")

// RestaurantAgent レストラン検索ツールを持つ会話エージェント
// ツール呼び出しのループはlangchaingoのエグゼキュータに任せる
type RestaurantAgent struct {
	llm           llms.Model
	tool          *RestaurantTool
	maxIterations int
}

// NewRestaurantAgent 新しいRestaurantAgentを作成
func NewRestaurantAgent(llm llms.Model, tool *RestaurantTool, maxIterations int) *RestaurantAgent {
	if maxIterations < 1 {
		maxIterations = 5
	}
	return &RestaurantAgent{
		llm:           llm,
		tool:          tool,
		maxIterations: maxIterations,
	}
}

// Run はメッセージに対する最終回答を返す。handlerはnilでもよい
func (a *RestaurantAgent) Run(ctx context.Context, message string, handler callbacks.Handler) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	log.Printf("🤖 エージェント実行開始: %q", message)

	agentTools := []tools.Tool{&toolErrorObserver{inner: a.tool, handler: handler}}

	opts := []agents.Option{agents.WithMaxIterations(a.maxIterations)}
	if handler != nil {
		opts = append(opts, agents.WithCallbacksHandler(handler))
	}

	executor := agents.NewExecutor(agents.NewOneShotAgent(a.llm, agentTools, opts...), opts...)

	output, err := chains.Run(ctx, executor, message)
	if err != nil {
		log.Printf("❌ エージェント実行に失敗: %v", err)
		return "", fmt.Errorf("エージェントの実行に失敗: %w", err)
	}

	log.Printf("✅ エージェント実行完了 (%d文字)", len(output))
	return output, nil
}

// toolErrorObserver はツールのエラーを観測結果としてLLMに返し、コールバックに通知する
type toolErrorObserver struct {
	inner   tools.Tool
	handler callbacks.Handler
}

func (o *toolErrorObserver) Name() string {
	return o.inner.Name()
}

func (o *toolErrorObserver) Description() string {
	return o.inner.Description()
}

func (o *toolErrorObserver) Call(ctx context.Context, input string) (string, error) {
	if o.handler != nil {
		o.handler.HandleToolStart(ctx, input)
	}

	output, err := o.inner.Call(ctx, input)
	if err != nil {
		log.Printf("⚠️  ツール %s の実行エラー: %v", o.inner.Name(), err)
		if o.handler != nil {
			o.handler.HandleToolError(ctx, err)
		}
		return fmt.Sprintf("Tool execution error: %v", err), nil
	}

	if o.handler != nil {
		o.handler.HandleToolEnd(ctx, output)
	}
	return output, nil
}
