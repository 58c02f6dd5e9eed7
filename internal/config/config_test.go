package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("未指定の項目はデフォルト値", func(t *testing.T) {
		cfg, err := FromEnv(envFrom(nil))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, StoreSupabase, cfg.BBoxStore)
		assert.Equal(t, "bounding_boxes", cfg.BBoxTable)
		assert.Equal(t, "STATE_NAME", cfg.BBoxStateColumn)
		assert.Equal(t, 3, cfg.MaxLookupAttempts)
		assert.Equal(t, 4, cfg.SearchConcurrency)
		assert.Equal(t, LLMProviderOpenAI, cfg.LLMProvider)
		assert.False(t, cfg.AgentEnabled())
		assert.False(t, cfg.HistoryEnabled())
	})

	t.Run("環境変数で上書きできる", func(t *testing.T) {
		cfg, err := FromEnv(envFrom(map[string]string{
			"PORT":                 "9090",
			"BBOX_STORE":           "Postgres",
			"BBOX_MAX_ATTEMPTS":    "5",
			"LLM_PROVIDER":         "googleai",
			"GEMINI_API_KEY":       "g-key",
			"FIRESTORE_PROJECT_ID": "proj",
		}))
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, StorePostgres, cfg.BBoxStore)
		assert.Equal(t, 5, cfg.MaxLookupAttempts)
		assert.True(t, cfg.AgentEnabled())
		assert.True(t, cfg.HistoryEnabled())
	})

	t.Run("整数でない値はエラー", func(t *testing.T) {
		_, err := FromEnv(envFrom(map[string]string{"BBOX_MAX_ATTEMPTS": "three"}))
		assert.Error(t, err)

		_, err = FromEnv(envFrom(map[string]string{"PLACES_SEARCH_CONCURRENCY": "0"}))
		assert.Error(t, err)
	})
}

func TestConfig_ValidateSearch(t *testing.T) {
	t.Run("Supabaseは URL・キー・Mapsキーが必須", func(t *testing.T) {
		cfg, err := FromEnv(envFrom(nil))
		require.NoError(t, err)

		err = cfg.ValidateSearch()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SUPABASE_URL")
		assert.Contains(t, err.Error(), "SUPABASE_ANON_KEY")
		assert.Contains(t, err.Error(), "GOOGLE_MAPS_API_KEY")
	})

	t.Run("PostgresはDSNがあればSupabase設定は不要", func(t *testing.T) {
		cfg, err := FromEnv(envFrom(map[string]string{
			"BBOX_STORE":          "postgres",
			"POSTGRES_DSN":        "postgres://localhost/test",
			"GOOGLE_MAPS_API_KEY": "m-key",
		}))
		require.NoError(t, err)
		assert.NoError(t, cfg.ValidateSearch())
	})

	t.Run("不明なストアはエラー", func(t *testing.T) {
		cfg, err := FromEnv(envFrom(map[string]string{"BBOX_STORE": "mongo"}))
		require.NoError(t, err)
		assert.Error(t, cfg.ValidateSearch())
	})
}
