package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/callbacks"

	"RestaurantFinder-App/internal/infrastructure/agent"
)

// ChatAgent はメッセージに応答するエージェント
type ChatAgent interface {
	Run(ctx context.Context, message string, handler callbacks.Handler) (string, error)
}

// ChatHandler は会話エージェントAPIのハンドラー
type ChatHandler struct {
	agent ChatAgent
}

// NewChatHandler は新しいChatHandlerインスタンスを作成
func NewChatHandler(chatAgent ChatAgent) *ChatHandler {
	return &ChatHandler{agent: chatAgent}
}

// ChatRequest チャットのリクエスト
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// PostChat はエージェントの最終回答を返すエンドポイント
// POST /api/chat
func (h *ChatHandler) PostChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	output, err := h.agent.Run(c.Request.Context(), req.Message, nil)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, agent.ErrEmptyMessage) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":   "agent_error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"output": output})
}

// PostChatStream はエージェントの進行状況をServer-Sent Eventsで返すエンドポイント
// POST /api/chat/stream
func (h *ChatHandler) PostChatStream(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events := make(chan agent.StreamEvent, 16)
	emit := func(e agent.StreamEvent) {
		select {
		case events <- e:
		case <-ctx.Done():
		}
	}

	// エージェントは別goroutineで実行し、終わったらチャンネルを閉じる
	go func() {
		defer close(events)
		output, err := h.agent.Run(ctx, req.Message, agent.NewStreamHandler(emit))
		if err != nil {
			emit(agent.StreamEvent{Type: agent.EventError, Error: err.Error()})
			return
		}
		emit(agent.StreamEvent{Type: agent.EventFinal, Output: output})
	}()

	c.Stream(func(w io.Writer) bool {
		select {
		case e, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(e.Type, e)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
