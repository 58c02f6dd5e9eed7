package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// PostgreSQLClient PostgreSQL直接接続クライアント
type PostgreSQLClient struct {
	DB *sql.DB
}

// BuildSupabaseConnString SupabaseのURLとDBパスワードから接続文字列を組み立てる
func BuildSupabaseConnString(supabaseURL, password string) (string, error) {
	if supabaseURL == "" {
		return "", fmt.Errorf("SUPABASE_URLが設定されていません")
	}
	if password == "" {
		return "", fmt.Errorf("SUPABASE_DB_PASSWORDが設定されていません")
	}

	// https://xxx.supabase.co -> xxx.supabase.co
	host := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(supabaseURL, "https://"), "http://"), "/")

	// ポート6543（コネクションプーラー）を使用
	return fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, password,
	), nil
}

// NewPostgreSQLClient 新しいPostgreSQLクライアントを作成
func NewPostgreSQLClient(connStr string) (*PostgreSQLClient, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL接続の初期化に失敗: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("PostgreSQLへの接続に失敗: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// NewPostgreSQLClientWithRetry 接続が確立するまで一定間隔でリトライする
func NewPostgreSQLClientWithRetry(connStr string, maxRetries int, interval time.Duration) (*PostgreSQLClient, error) {
	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		client, err := NewPostgreSQLClient(connStr)
		if err == nil {
			return client, nil
		}
		lastErr = err
		log.Printf("⚠️  PostgreSQL接続失敗 (%d/%d): %v", i, maxRetries, err)
		if i < maxRetries {
			time.Sleep(interval)
		}
	}
	return nil, fmt.Errorf("PostgreSQL接続を%d回試行しましたが失敗: %w", maxRetries, lastErr)
}

// Close データベース接続を閉じる
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQLクライアントが初期化されていません")
	}
	return pc.DB.Ping()
}
