package main

import (
	"context"
	"fmt"
	"log"

	"RestaurantFinder-App/internal/bootstrap"
	"RestaurantFinder-App/internal/config"
	"RestaurantFinder-App/internal/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	components, cleanup, err := bootstrap.BuildAll(context.Background(), cfg)
	if err != nil {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println(".envファイルを作成するか、環境変数を設定してください")
		log.Fatalf("初期化失敗: %v", err)
	}
	defer cleanup()

	restaurantHandler := handler.NewRestaurantHandler(components.Finder, components.Tool)

	var chatHandler *handler.ChatHandler
	if components.Agent != nil {
		chatHandler = handler.NewChatHandler(components.Agent)
	}

	router := handler.NewRouter(restaurantHandler, chatHandler)

	fmt.Printf("RestaurantFinder-App server starting on :%s...\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("サーバー起動失敗: %v", err)
	}
}
