package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"RestaurantFinder-App/internal/domain/model"
)

// バウンディングボックスの取得元
const (
	StoreSupabase = "supabase"
	StorePostgres = "postgres"
)

// LLMプロバイダ
const (
	LLMProviderOpenAI   = "openai"
	LLMProviderGoogleAI = "googleai"
)

// Config アプリケーション全体の設定
type Config struct {
	Port string

	// バウンディングボックスストア
	BBoxStore          string
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseDBPassword string
	PostgresDSN        string // 指定時はSUPABASE_URLから組み立てずにこれを使う
	BBoxTable          string
	BBoxStateColumn    string

	// プレイス検索
	GoogleMapsAPIKey  string
	PlacesBaseURL     string
	MaxLookupAttempts int
	SearchConcurrency int

	// エージェント
	LLMProvider        string
	OpenAIAPIKey       string
	OpenAIModel        string
	GeminiAPIKey       string
	GeminiModel        string
	AgentMaxIterations int

	// 検索履歴（空なら無効）
	FirestoreProjectID    string
	GoogleCredentialsFile string
}

// Load .envを読み込んだ上で環境変数から設定を作る
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv 任意の参照関数から設定を作る
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:                  get("PORT", "8080"),
		BBoxStore:             strings.ToLower(get("BBOX_STORE", StoreSupabase)),
		SupabaseURL:           get("SUPABASE_URL", ""),
		SupabaseAnonKey:       get("SUPABASE_ANON_KEY", ""),
		SupabaseDBPassword:    get("SUPABASE_DB_PASSWORD", ""),
		PostgresDSN:           get("POSTGRES_DSN", ""),
		BBoxTable:             get("BBOX_TABLE", "bounding_boxes"),
		BBoxStateColumn:       get("BBOX_STATE_COLUMN", "STATE_NAME"),
		GoogleMapsAPIKey:      get("GOOGLE_MAPS_API_KEY", ""),
		PlacesBaseURL:         get("GOOGLE_PLACES_BASE_URL", ""),
		LLMProvider:           strings.ToLower(get("LLM_PROVIDER", LLMProviderOpenAI)),
		OpenAIAPIKey:          get("OPENAI_API_KEY", ""),
		OpenAIModel:           get("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:          get("GEMINI_API_KEY", ""),
		GeminiModel:           get("GEMINI_MODEL", "gemini-2.5-flash"),
		FirestoreProjectID:    get("FIRESTORE_PROJECT_ID", ""),
		GoogleCredentialsFile: get("GOOGLE_APPLICATION_CREDENTIALS", ""),
	}

	var err error
	if cfg.MaxLookupAttempts, err = getInt(get, "BBOX_MAX_ATTEMPTS", model.DefaultMaxLookupAttempts); err != nil {
		return nil, err
	}
	if cfg.SearchConcurrency, err = getInt(get, "PLACES_SEARCH_CONCURRENCY", model.DefaultSearchConcurrency); err != nil {
		return nil, err
	}
	if cfg.AgentMaxIterations, err = getInt(get, "AGENT_MAX_ITERATIONS", 5); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getInt(get func(string, string) string, key string, def int) (int, error) {
	raw := get(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%sは1以上の整数で指定してください: %q", key, raw)
	}
	return v, nil
}

// ValidateSearch レストラン検索に必要な設定が揃っているか確認する
func (c *Config) ValidateSearch() error {
	var missing []string

	switch c.BBoxStore {
	case StoreSupabase:
		if c.SupabaseURL == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if c.SupabaseAnonKey == "" {
			missing = append(missing, "SUPABASE_ANON_KEY")
		}
	case StorePostgres:
		if c.PostgresDSN == "" {
			if c.SupabaseURL == "" {
				missing = append(missing, "SUPABASE_URL")
			}
			if c.SupabaseDBPassword == "" {
				missing = append(missing, "SUPABASE_DB_PASSWORD")
			}
		}
	default:
		return fmt.Errorf("BBOX_STOREは%sまたは%sを指定してください: %q", StoreSupabase, StorePostgres, c.BBoxStore)
	}

	if c.GoogleMapsAPIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("環境変数が設定されていません: %s", strings.Join(missing, ", "))
	}
	return nil
}

// AgentEnabled エージェント用のLLMキーが設定されているか
func (c *Config) AgentEnabled() bool {
	switch c.LLMProvider {
	case LLMProviderOpenAI:
		return c.OpenAIAPIKey != ""
	case LLMProviderGoogleAI:
		return c.GeminiAPIKey != ""
	}
	return false
}

// HistoryEnabled 検索履歴が有効か
func (c *Config) HistoryEnabled() bool {
	return c.FirestoreProjectID != ""
}
