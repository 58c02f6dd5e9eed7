package agent

import (
	"context"

	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/schema"
)

// ストリームイベントの種類
const (
	EventAgentAction = "agent_action"
	EventToolStart   = "tool_start"
	EventToolEnd     = "tool_end"
	EventToolError   = "tool_error"
	EventFinal       = "final"
	EventError       = "error"
)

// StreamEvent SSEでクライアントに送るイベント
type StreamEvent struct {
	Type   string `json:"type"`
	Tool   string `json:"tool,omitempty"`
	Input  string `json:"input,omitempty"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

var _ callbacks.Handler = &StreamHandler{}

// StreamHandler エージェントの進行状況をイベントとして送出する
// 最終回答のイベントは呼び出し側がRunの戻り値から送る
type StreamHandler struct {
	callbacks.SimpleHandler
	emit func(StreamEvent)
}

// NewStreamHandler 新しいStreamHandlerを作成
func NewStreamHandler(emit func(StreamEvent)) *StreamHandler {
	return &StreamHandler{emit: emit}
}

func (h *StreamHandler) HandleAgentAction(_ context.Context, action schema.AgentAction) {
	h.emit(StreamEvent{Type: EventAgentAction, Tool: action.Tool, Input: action.ToolInput})
}

func (h *StreamHandler) HandleToolStart(_ context.Context, input string) {
	h.emit(StreamEvent{Type: EventToolStart, Tool: RestaurantToolName, Input: input})
}

func (h *StreamHandler) HandleToolEnd(_ context.Context, output string) {
	h.emit(StreamEvent{Type: EventToolEnd, Tool: RestaurantToolName, Output: output})
}

func (h *StreamHandler) HandleToolError(_ context.Context, err error) {
	h.emit(StreamEvent{Type: EventToolError, Tool: RestaurantToolName, Error: err.Error()})
}
