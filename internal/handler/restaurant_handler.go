package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"RestaurantFinder-App/internal/domain/model"
	"RestaurantFinder-App/internal/infrastructure/agent"
	"RestaurantFinder-App/internal/usecase"
)

// RestaurantHandler はレストラン検索とツール呼び出しAPIのハンドラー
type RestaurantHandler struct {
	finderUseCase usecase.RestaurantFinderUseCase
	tool          *agent.RestaurantTool
}

// NewRestaurantHandler は新しいRestaurantHandlerインスタンスを作成
func NewRestaurantHandler(finderUseCase usecase.RestaurantFinderUseCase, tool *agent.RestaurantTool) *RestaurantHandler {
	return &RestaurantHandler{
		finderUseCase: finderUseCase,
		tool:          tool,
	}
}

// RestaurantsResponse GET /api/restaurants のレスポンス
type RestaurantsResponse struct {
	State           string   `json:"state"`
	CountyName      string   `json:"county_name,omitempty"`
	QuadrantCount   int      `json:"quadrant_count"`
	FailedQuadrants int      `json:"failed_quadrants"`
	Count           int      `json:"count"`
	PlaceIDs        []string `json:"place_ids"`
	SearchID        string   `json:"search_id,omitempty"`
}

// ToolCallRequest ツール呼び出しのリクエスト
type ToolCallRequest struct {
	State string `json:"state"`
}

// GetRestaurants は州のレストランIDを返すエンドポイント
// GET /api/restaurants?state=california
func (h *RestaurantHandler) GetRestaurants(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "state parameter is required",
		})
		return
	}

	result, err := h.finderUseCase.FindRestaurantsByState(c.Request.Context(), state)
	if err != nil {
		respondSearchError(c, err)
		return
	}

	ids := result.PlaceIDStrings()
	c.JSON(http.StatusOK, RestaurantsResponse{
		State:           result.State,
		CountyName:      result.CountyName,
		QuadrantCount:   result.QuadrantCount,
		FailedQuadrants: result.FailedQuadrants,
		Count:           len(ids),
		PlaceIDs:        ids,
		SearchID:        result.SearchID,
	})
}

// ListTools はエージェントに公開しているツール定義を返す
// GET /api/tools
func (h *RestaurantHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": []agent.ToolDefinition{h.tool.Definition()},
	})
}

// CallRestaurantTool はツールを直接呼び出すエンドポイント
// POST /api/tools/find_restaurants_by_state
func (h *RestaurantHandler) CallRestaurantTool(c *gin.Context) {
	var req ToolCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	ids, err := h.tool.Invoke(c.Request.Context(), req.State)
	if err != nil {
		respondSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tool":   h.tool.Name(),
		"result": ids,
	})
}

// GetSearchHistory は検索履歴を返すエンドポイント
// GET /api/searches/:id
func (h *RestaurantHandler) GetSearchHistory(c *gin.Context) {
	id := c.Param("id")

	record, err := h.finderUseCase.GetSearchHistory(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrHistoryDisabled):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "history_disabled",
				"message": err.Error(),
			})
		case errors.Is(err, model.ErrSearchHistoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// respondSearchError は検索エラーをHTTPステータスに振り分ける
func respondSearchError(c *gin.Context, err error) {
	var exhausted *model.LookupExhaustedError

	switch {
	case errors.Is(err, model.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_state",
			"message": err.Error(),
		})
	case errors.As(err, &exhausted) && errors.Is(err, model.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "state_not_found",
			"message":  err.Error(),
			"state":    exhausted.State,
			"attempts": exhausted.Attempts,
		})
	case errors.As(err, &exhausted):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    "lookup_failed",
			"message":  err.Error(),
			"state":    exhausted.State,
			"attempts": exhausted.Attempts,
		})
	case errors.Is(err, model.ErrBoundingBoxNotObtained):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "no_bounding_box",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
	}
}
