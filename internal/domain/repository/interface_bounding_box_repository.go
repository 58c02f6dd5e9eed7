package repository

import (
	"context"

	"RestaurantFinder-App/internal/domain/model"
)

type BoundingBoxRepository interface {
	// FindByState 州名の部分一致（大文字小文字を区別しない）で最大1件を取得する
	// 該当なしの場合はエラーではなく空スライスを返す
	FindByState(ctx context.Context, state string) ([]model.BoundingBox, error)
}
