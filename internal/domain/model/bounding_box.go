package model

// LatLng 緯度経度
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox 州のバウンディングボックス（bounding_boxesテーブルの1行）
// y は緯度、x は経度。どの境界値もNULLになり得る
type BoundingBox struct {
	YMin       *float64 `json:"y_min" db:"y_min"`             // 南端の緯度
	YMax       *float64 `json:"y_max" db:"y_max"`             // 北端の緯度
	XMin       *float64 `json:"x_min" db:"x_min"`             // 西端の経度
	XMax       *float64 `json:"x_max" db:"x_max"`             // 東端の経度
	CountyName *string  `json:"COUNTY_NAME" db:"COUNTY_NAME"` // 郡・地域名（NULLABLE）
}

// HasAllBounds 4つの境界値がすべて存在するかチェック
func (b *BoundingBox) HasAllBounds() bool {
	return b.YMin != nil && b.YMax != nil && b.XMin != nil && b.XMax != nil
}

// IsValid 分割可能なボックスかどうか（境界値が揃っていて、min <= max）
func (b *BoundingBox) IsValid() bool {
	if !b.HasAllBounds() {
		return false
	}
	return *b.YMin <= *b.YMax && *b.XMin <= *b.XMax
}

// GetCountyName 郡名が存在する場合は値を、存在しない場合は空文字列を返す
func (b *BoundingBox) GetCountyName() string {
	if b.CountyName != nil {
		return *b.CountyName
	}
	return ""
}

// QuadrantPosition 親ボックス内での象限の位置
type QuadrantPosition string

const (
	QuadrantSouthWest QuadrantPosition = "south_west"
	QuadrantSouthEast QuadrantPosition = "south_east"
	QuadrantNorthWest QuadrantPosition = "north_west"
	QuadrantNorthEast QuadrantPosition = "north_east"
)

// Quadrant 親ボックスを中点で4分割した1区画
type Quadrant struct {
	Position   QuadrantPosition `json:"position"`
	YMin       float64          `json:"y_min"`
	YMax       float64          `json:"y_max"`
	XMin       float64          `json:"x_min"`
	XMax       float64          `json:"x_max"`
	CountyName *string          `json:"county_name,omitempty"` // 親ボックスから継承
}

// SouthWest 南西の角をLatLngで返す
func (q Quadrant) SouthWest() LatLng {
	return LatLng{Lat: q.YMin, Lng: q.XMin}
}

// NorthEast 北東の角をLatLngで返す
func (q Quadrant) NorthEast() LatLng {
	return LatLng{Lat: q.YMax, Lng: q.XMax}
}

// SearchRequest 1象限分のプレイス検索リクエスト
type SearchRequest struct {
	Quadrant Quadrant `json:"quadrant"`
	Category string   `json:"category"`
}

// NewRestaurantSearchRequest レストランカテゴリ固定の検索リクエストを作成
func NewRestaurantSearchRequest(q Quadrant) SearchRequest {
	return SearchRequest{
		Quadrant: q,
		Category: CategoryRestaurant,
	}
}
