package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"RestaurantFinder-App/internal/domain/model"
	"RestaurantFinder-App/internal/domain/repository"
)

const searchHistoryCollection = "restaurantSearches"

// FirestoreSearchHistoryRepository Firestoreを使用した検索履歴リポジトリ
type FirestoreSearchHistoryRepository struct {
	client *firestore.Client
}

// NewFirestoreSearchHistoryRepository 新しいFirestoreSearchHistoryRepositoryインスタンスを作成
func NewFirestoreSearchHistoryRepository(client *firestore.Client) repository.SearchHistoryRepository {
	return &FirestoreSearchHistoryRepository{
		client: client,
	}
}

// Save は検索履歴を保存する。ExpiresAtはFirestoreのTTLポリシーで削除される想定
func (r *FirestoreSearchHistoryRepository) Save(ctx context.Context, record *model.SearchHistoryRecord) error {
	_, err := r.client.Collection(searchHistoryCollection).Doc(record.ID).Set(ctx, record)
	if err != nil {
		log.Printf("❌ Failed to save search history %s: %v", record.ID, err)
		return fmt.Errorf("検索履歴の保存に失敗しました: %w", err)
	}
	return nil
}

// GetByID は検索履歴を取得する。期限切れのものは見つからない扱い
func (r *FirestoreSearchHistoryRepository) GetByID(ctx context.Context, id string) (*model.SearchHistoryRecord, error) {
	doc, err := r.client.Collection(searchHistoryCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", model.ErrSearchHistoryNotFound, id)
		}
		return nil, fmt.Errorf("検索履歴の取得に失敗しました: %w", err)
	}

	var record model.SearchHistoryRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	// TTLによる削除は即時ではないため、期限はここでも確認する
	if !record.ExpiresAt.IsZero() && time.Now().After(record.ExpiresAt) {
		return nil, fmt.Errorf("%w（有効期限切れ）: %s", model.ErrSearchHistoryNotFound, id)
	}

	return &record, nil
}
