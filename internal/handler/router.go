package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter はAPIルーティングを設定したgin.Engineを返す
// chatHandler が nil の場合はチャットAPIを登録しない
func NewRouter(restaurantHandler *RestaurantHandler, chatHandler *ChatHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to RestaurantFinder-App!")
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "RestaurantFinder-App"})
		})

		api.GET("/restaurants", restaurantHandler.GetRestaurants)
		api.GET("/searches/:id", restaurantHandler.GetSearchHistory)

		api.GET("/tools", restaurantHandler.ListTools)
		api.POST("/tools/find_restaurants_by_state", restaurantHandler.CallRestaurantTool)

		if chatHandler != nil {
			api.POST("/chat", chatHandler.PostChat)
			api.POST("/chat/stream", chatHandler.PostChatStream)
		}
	}

	return r
}
