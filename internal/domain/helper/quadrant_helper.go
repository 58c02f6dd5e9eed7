package helper

import (
	"github.com/paulmach/orb"

	"RestaurantFinder-App/internal/domain/model"
)

// BoundingBoxToBound model.BoundingBox を orb.Bound に変換する
// 境界値が欠けている、または min > max の場合は false を返す
func BoundingBoxToBound(box model.BoundingBox) (orb.Bound, bool) {
	if !box.IsValid() {
		return orb.Bound{}, false
	}

	// orb.Point は [経度, 緯度] の順
	return orb.Bound{
		Min: orb.Point{*box.XMin, *box.YMin},
		Max: orb.Point{*box.XMax, *box.YMax},
	}, true
}

// QuadrantToBound model.Quadrant を orb.Bound に変換する
func QuadrantToBound(q model.Quadrant) orb.Bound {
	return orb.Bound{
		Min: orb.Point{q.XMin, q.YMin},
		Max: orb.Point{q.XMax, q.YMax},
	}
}

// SubdivideBoundingBox はボックスを中点で4象限に分割する
// 順序は 南西, 南東, 北西, 北東 で固定。無効なボックスは空スライスを返す
func SubdivideBoundingBox(box model.BoundingBox) []model.Quadrant {
	bound, ok := BoundingBoxToBound(box)
	if !ok {
		return []model.Quadrant{}
	}

	mid := bound.Center()

	newQuadrant := func(pos model.QuadrantPosition, min, max orb.Point) model.Quadrant {
		return model.Quadrant{
			Position:   pos,
			YMin:       min.Lat(),
			YMax:       max.Lat(),
			XMin:       min.Lon(),
			XMax:       max.Lon(),
			CountyName: box.CountyName,
		}
	}

	return []model.Quadrant{
		newQuadrant(model.QuadrantSouthWest, bound.Min, mid),
		newQuadrant(model.QuadrantSouthEast, orb.Point{mid.Lon(), bound.Bottom()}, orb.Point{bound.Right(), mid.Lat()}),
		newQuadrant(model.QuadrantNorthWest, orb.Point{bound.Left(), mid.Lat()}, orb.Point{mid.Lon(), bound.Top()}),
		newQuadrant(model.QuadrantNorthEast, mid, bound.Max),
	}
}

// SubdivideBoundingBoxes は複数ボックスを分割して連結する。無効なボックスは読み飛ばす
func SubdivideBoundingBoxes(boxes []model.BoundingBox) []model.Quadrant {
	quadrants := make([]model.Quadrant, 0, len(boxes)*4)
	for _, box := range boxes {
		quadrants = append(quadrants, SubdivideBoundingBox(box)...)
	}
	return quadrants
}
