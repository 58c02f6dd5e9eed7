package repository

import (
	"context"

	"RestaurantFinder-App/internal/domain/model"
)

type SearchHistoryRepository interface {
	Save(ctx context.Context, record *model.SearchHistoryRecord) error
	GetByID(ctx context.Context, id string) (*model.SearchHistoryRecord, error)
}
