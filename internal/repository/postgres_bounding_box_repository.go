package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"RestaurantFinder-App/internal/domain/model"
	"RestaurantFinder-App/internal/domain/repository"
	"RestaurantFinder-App/internal/infrastructure/database"
)

type PostgresBoundingBoxRepository struct {
	client *database.PostgreSQLClient
	query  string
}

func NewPostgresBoundingBoxRepository(client *database.PostgreSQLClient, table BoundingBoxTable) repository.BoundingBoxRepository {
	return &PostgresBoundingBoxRepository{
		client: client,
		query:  buildFindByStateQuery(table),
	}
}

// buildFindByStateQuery テーブル名・カラム名はクォートして埋め込む
func buildFindByStateQuery(table BoundingBoxTable) string {
	return fmt.Sprintf(
		`SELECT y_min, y_max, x_min, x_max, "COUNTY_NAME" FROM %s WHERE %s ILIKE $1 LIMIT 1`,
		pq.QuoteIdentifier(table.Name),
		pq.QuoteIdentifier(table.StateColumn),
	)
}

func (r *PostgresBoundingBoxRepository) FindByState(ctx context.Context, state string) ([]model.BoundingBox, error) {
	rows, err := r.client.DB.QueryContext(ctx, r.query, statePattern(state))
	if err != nil {
		return nil, fmt.Errorf("州 %s のバウンディングボックス取得失敗: %w", state, err)
	}
	defer rows.Close()

	boxes := []model.BoundingBox{}
	for rows.Next() {
		var row boundingBoxRow
		if err := rows.Scan(&row.YMin, &row.YMax, &row.XMin, &row.XMax, &row.CountyName); err != nil {
			return nil, fmt.Errorf("バウンディングボックスのスキャンエラー: %w", err)
		}
		boxes = append(boxes, row.ToBoundingBox())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("バウンディングボックスの読み取りエラー: %w", err)
	}

	return boxes, nil
}
