package model

// PlaceID 外部プレイスプロバイダが発行する不透明なID
type PlaceID string

// PlacesSearchResult プレイス検索1回分の結果
type PlacesSearchResult struct {
	Status   string    `json:"status"`
	PlaceIDs []PlaceID `json:"place_ids"`
}

// IsOK ステータスがOKかどうか
func (r *PlacesSearchResult) IsOK() bool {
	return r != nil && r.Status == PlacesStatusOK
}

// RestaurantSearchResult 州単位のレストラン検索結果
type RestaurantSearchResult struct {
	State           string    `json:"state"`
	CountyName      string    `json:"county_name,omitempty"`
	QuadrantCount   int       `json:"quadrant_count"`
	FailedQuadrants int       `json:"failed_quadrants"`
	PlaceIDs        []PlaceID `json:"place_ids"`
	SearchID        string    `json:"search_id,omitempty"` // 検索履歴ID（履歴有効時のみ）
}

// PlaceIDStrings PlaceIDを文字列スライスに変換
func (r *RestaurantSearchResult) PlaceIDStrings() []string {
	ids := make([]string, len(r.PlaceIDs))
	for i, id := range r.PlaceIDs {
		ids[i] = string(id)
	}
	return ids
}
