package repository

import (
	"context"

	"RestaurantFinder-App/internal/domain/model"
)

// PlacesProvider は矩形範囲とカテゴリでプレイスを検索する外部プロバイダ
type PlacesProvider interface {
	// SearchInBounds は通信エラー時のみerrorを返す。APIレベルの失敗はStatusで表す
	SearchInBounds(ctx context.Context, req model.SearchRequest) (*model.PlacesSearchResult, error)
}
