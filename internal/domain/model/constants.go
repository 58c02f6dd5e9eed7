package model

// 検索カテゴリ
const (
	CategoryRestaurant = "restaurant"
)

// プレイスプロバイダのステータス
const (
	PlacesStatusOK          = "OK"
	PlacesStatusZeroResults = "ZERO_RESULTS"
)

// ルックアップ・検索のデフォルト値
const (
	DefaultMaxLookupAttempts = 3
	DefaultSearchConcurrency = 4
)

// 検索履歴のステータス
const (
	SearchStatusSucceeded = "succeeded"
	SearchStatusFailed    = "failed"
)

// QuadrantNameMap 象限の位置から日本語名へのマッピング
var QuadrantNameMap = map[QuadrantPosition]string{
	QuadrantSouthWest: "南西",
	QuadrantSouthEast: "南東",
	QuadrantNorthWest: "北西",
	QuadrantNorthEast: "北東",
}

// GetQuadrantJapaneseName 象限の位置から日本語名を取得する
func GetQuadrantJapaneseName(position QuadrantPosition) string {
	if name, ok := QuadrantNameMap[position]; ok {
		return name
	}
	return string(position)
}
