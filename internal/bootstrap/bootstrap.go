package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"RestaurantFinder-App/internal/config"
	"RestaurantFinder-App/internal/domain/repository"
	"RestaurantFinder-App/internal/domain/service"
	"RestaurantFinder-App/internal/infrastructure/agent"
	"RestaurantFinder-App/internal/infrastructure/database"
	"RestaurantFinder-App/internal/infrastructure/firestore"
	"RestaurantFinder-App/internal/infrastructure/maps"
	repoimpl "RestaurantFinder-App/internal/repository"
	"RestaurantFinder-App/internal/usecase"
)

// Components 起動時に組み立てる依存関係一式
type Components struct {
	Finder usecase.RestaurantFinderUseCase
	Tool   *agent.RestaurantTool
	Agent  *agent.RestaurantAgent // LLM未設定時は nil
}

// BuildFinder 設定からレストラン検索ユースケースとツールを組み立てる
// 戻り値の cleanup は接続を閉じる
func BuildFinder(ctx context.Context, cfg *config.Config) (*Components, func(), error) {
	if err := cfg.ValidateSearch(); err != nil {
		return nil, nil, err
	}

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	bboxRepo, closeRepo, err := newBoundingBoxRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeRepo)

	var historyRepo repository.SearchHistoryRepository
	if cfg.HistoryEnabled() {
		fsClient, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.GoogleCredentialsFile)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("検索履歴の初期化に失敗: %w", err)
		}
		closers = append(closers, func() { fsClient.Close() })
		historyRepo = repoimpl.NewFirestoreSearchHistoryRepository(fsClient.GetClient())
	} else {
		log.Println("ℹ️ FIRESTORE_PROJECT_ID未設定のため検索履歴は無効")
	}

	lookupService := service.NewBoundingBoxLookupService(bboxRepo, service.NewImmediateRetryPolicy(cfg.MaxLookupAttempts))
	placesProvider := maps.NewGooglePlacesProvider(cfg.GoogleMapsAPIKey, cfg.PlacesBaseURL)
	regionSearcher := service.NewParallelRegionSearcher(placesProvider, cfg.SearchConcurrency)
	finder := usecase.NewRestaurantFinderUseCase(lookupService, regionSearcher, historyRepo)

	return &Components{
		Finder: finder,
		Tool:   agent.NewRestaurantTool(finder),
	}, cleanup, nil
}

// BuildAll BuildFinder に加えて、LLMキーがあればエージェントも組み立てる
func BuildAll(ctx context.Context, cfg *config.Config) (*Components, func(), error) {
	components, cleanup, err := BuildFinder(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if !cfg.AgentEnabled() {
		log.Printf("⚠️ LLM(%s)のAPIキーが未設定のためチャットAPIは無効", cfg.LLMProvider)
		return components, cleanup, nil
	}

	llm, err := agent.NewLLM(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	components.Agent = agent.NewRestaurantAgent(llm, components.Tool, cfg.AgentMaxIterations)
	log.Printf("✅ エージェント初期化完了 (provider: %s)", cfg.LLMProvider)

	return components, cleanup, nil
}

func newBoundingBoxRepository(cfg *config.Config) (repository.BoundingBoxRepository, func(), error) {
	table := repoimpl.BoundingBoxTable{Name: cfg.BBoxTable, StateColumn: cfg.BBoxStateColumn}

	switch cfg.BBoxStore {
	case config.StorePostgres:
		connStr := cfg.PostgresDSN
		if connStr == "" {
			var err error
			connStr, err = database.BuildSupabaseConnString(cfg.SupabaseURL, cfg.SupabaseDBPassword)
			if err != nil {
				return nil, nil, err
			}
		}
		client, err := database.NewPostgreSQLClientWithRetry(connStr, 3, 2*time.Second)
		if err != nil {
			return nil, nil, err
		}
		log.Println("✅ PostgreSQL connection successful!")
		return repoimpl.NewPostgresBoundingBoxRepository(client, table), func() { client.Close() }, nil

	default:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, nil, fmt.Errorf("Supabaseヘルスチェック失敗: %w", err)
		}
		log.Println("✅ Supabase connection successful!")
		return repoimpl.NewSupabaseBoundingBoxRepository(client, table), func() {}, nil
	}
}
