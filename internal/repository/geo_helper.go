package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"RestaurantFinder-App/internal/domain/model"
)

// BoundingBoxTable バウンディングボックスのテーブル定義
type BoundingBoxTable struct {
	Name        string // テーブル名
	StateColumn string // 州名カラム
}

// DefaultBoundingBoxTable デフォルトのテーブル定義
func DefaultBoundingBoxTable() BoundingBoxTable {
	return BoundingBoxTable{
		Name:        "bounding_boxes",
		StateColumn: "STATE_NAME",
	}
}

// statePattern 州名の部分一致パターン
func statePattern(state string) string {
	return "%" + state + "%"
}

// boundingBoxRow SQLのNULLを受け取るための構造体
type boundingBoxRow struct {
	YMin       sql.NullFloat64
	YMax       sql.NullFloat64
	XMin       sql.NullFloat64
	XMax       sql.NullFloat64
	CountyName sql.NullString
}

// ToBoundingBox boundingBoxRowをmodel.BoundingBoxに変換
func (r *boundingBoxRow) ToBoundingBox() model.BoundingBox {
	box := model.BoundingBox{}
	if r.YMin.Valid {
		box.YMin = &r.YMin.Float64
	}
	if r.YMax.Valid {
		box.YMax = &r.YMax.Float64
	}
	if r.XMin.Valid {
		box.XMin = &r.XMin.Float64
	}
	if r.XMax.Valid {
		box.XMax = &r.XMax.Float64
	}
	if r.CountyName.Valid {
		box.CountyName = &r.CountyName.String
	}
	return box
}

// decodeBoundingBoxes PostgRESTのJSONレスポンスをmodel.BoundingBoxに変換
func decodeBoundingBoxes(data []byte) ([]model.BoundingBox, error) {
	var boxes []model.BoundingBox
	if len(data) == 0 {
		return boxes, nil
	}
	if err := json.Unmarshal(data, &boxes); err != nil {
		return nil, fmt.Errorf("バウンディングボックスのJSONアンマーシャル失敗: %w", err)
	}
	return boxes, nil
}
