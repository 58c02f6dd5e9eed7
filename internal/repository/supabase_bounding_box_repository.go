package repository

import (
	"context"
	"fmt"

	"RestaurantFinder-App/internal/domain/model"
	"RestaurantFinder-App/internal/domain/repository"
	"RestaurantFinder-App/internal/infrastructure/database"
)

type SupabaseBoundingBoxRepository struct {
	client *database.SupabaseClient
	table  BoundingBoxTable
}

func NewSupabaseBoundingBoxRepository(client *database.SupabaseClient, table BoundingBoxTable) repository.BoundingBoxRepository {
	return &SupabaseBoundingBoxRepository{
		client: client,
		table:  table,
	}
}

// FindByState 州名カラムを ilike '%state%' で検索し、最大1件を返す
func (r *SupabaseBoundingBoxRepository) FindByState(ctx context.Context, state string) ([]model.BoundingBox, error) {
	data, _, err := r.client.GetClient().From(r.table.Name).
		Select("*", "", false).
		Ilike(r.table.StateColumn, statePattern(state)).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("州 %s のバウンディングボックス取得失敗: %w", state, err)
	}

	boxes, err := decodeBoundingBoxes(data)
	if err != nil {
		return nil, err
	}

	// limitは念のためクライアント側でも保証する
	if len(boxes) > 1 {
		boxes = boxes[:1]
	}
	return boxes, nil
}
