package helper

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RestaurantFinder-App/internal/domain/model"
)

func ptr[T any](v T) *T {
	return &v
}

func californiaBox() model.BoundingBox {
	return model.BoundingBox{
		YMin: ptr(32.5),
		YMax: ptr(42.0),
		XMin: ptr(-124.4),
		XMax: ptr(-114.1),
	}
}

// overlapArea は2つの矩形の重なり面積を返す
func overlapArea(a, b orb.Bound) float64 {
	w := math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	h := math.Min(a.Top(), b.Top()) - math.Max(a.Bottom(), b.Bottom())
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

func TestSubdivideBoundingBox(t *testing.T) {
	t.Run("カリフォルニアの中点で4分割される", func(t *testing.T) {
		quadrants := SubdivideBoundingBox(californiaBox())
		require.Len(t, quadrants, 4)

		assert.Equal(t, model.QuadrantSouthWest, quadrants[0].Position)
		assert.Equal(t, model.QuadrantSouthEast, quadrants[1].Position)
		assert.Equal(t, model.QuadrantNorthWest, quadrants[2].Position)
		assert.Equal(t, model.QuadrantNorthEast, quadrants[3].Position)

		// 南西
		assert.InDelta(t, 32.5, quadrants[0].YMin, 1e-9)
		assert.InDelta(t, 37.25, quadrants[0].YMax, 1e-9)
		assert.InDelta(t, -124.4, quadrants[0].XMin, 1e-9)
		assert.InDelta(t, -119.25, quadrants[0].XMax, 1e-9)

		// 南東
		assert.InDelta(t, 32.5, quadrants[1].YMin, 1e-9)
		assert.InDelta(t, 37.25, quadrants[1].YMax, 1e-9)
		assert.InDelta(t, -119.25, quadrants[1].XMin, 1e-9)
		assert.InDelta(t, -114.1, quadrants[1].XMax, 1e-9)

		// 北西
		assert.InDelta(t, 37.25, quadrants[2].YMin, 1e-9)
		assert.InDelta(t, 42.0, quadrants[2].YMax, 1e-9)
		assert.InDelta(t, -124.4, quadrants[2].XMin, 1e-9)
		assert.InDelta(t, -119.25, quadrants[2].XMax, 1e-9)

		// 北東
		assert.InDelta(t, 37.25, quadrants[3].YMin, 1e-9)
		assert.InDelta(t, 42.0, quadrants[3].YMax, 1e-9)
		assert.InDelta(t, -119.25, quadrants[3].XMin, 1e-9)
		assert.InDelta(t, -114.1, quadrants[3].XMax, 1e-9)
	})

	t.Run("象限の和集合が元のボックスになり、重なりは辺のみ", func(t *testing.T) {
		boxes := []model.BoundingBox{
			californiaBox(),
			{YMin: ptr(0.0), YMax: ptr(1.0), XMin: ptr(0.0), XMax: ptr(1.0)},
			{YMin: ptr(-10.0), YMax: ptr(-10.0), XMin: ptr(5.0), XMax: ptr(7.5)},
			{YMin: ptr(24.5), YMax: ptr(49.4), XMin: ptr(-125.0), XMax: ptr(-66.9)},
		}

		for _, box := range boxes {
			parent, ok := BoundingBoxToBound(box)
			require.True(t, ok)

			quadrants := SubdivideBoundingBox(box)
			require.Len(t, quadrants, 4)

			union := QuadrantToBound(quadrants[0])
			for _, q := range quadrants[1:] {
				union = union.Union(QuadrantToBound(q))
			}
			assert.True(t, union.Equal(parent), "union %v != parent %v", union, parent)

			for i := range quadrants {
				for j := i + 1; j < len(quadrants); j++ {
					a := QuadrantToBound(quadrants[i])
					b := QuadrantToBound(quadrants[j])
					assert.Zero(t, overlapArea(a, b), "象限 %d と %d が重なっています", i, j)
				}
			}
		}
	})

	t.Run("郡名が各象限に継承される", func(t *testing.T) {
		box := californiaBox()
		box.CountyName = ptr("Los Angeles")

		for _, q := range SubdivideBoundingBox(box) {
			require.NotNil(t, q.CountyName)
			assert.Equal(t, "Los Angeles", *q.CountyName)
		}
	})

	t.Run("境界値が欠けていれば0件", func(t *testing.T) {
		cases := []model.BoundingBox{
			{YMax: ptr(42.0), XMin: ptr(-124.4), XMax: ptr(-114.1)},
			{YMin: ptr(32.5), XMin: ptr(-124.4), XMax: ptr(-114.1)},
			{YMin: ptr(32.5), YMax: ptr(42.0), XMax: ptr(-114.1)},
			{YMin: ptr(32.5), YMax: ptr(42.0), XMin: ptr(-124.4)},
			{},
		}
		for _, box := range cases {
			assert.Empty(t, SubdivideBoundingBox(box))
		}
	})

	t.Run("min > max のボックスは0件", func(t *testing.T) {
		box := model.BoundingBox{YMin: ptr(42.0), YMax: ptr(32.5), XMin: ptr(-124.4), XMax: ptr(-114.1)}
		assert.Empty(t, SubdivideBoundingBox(box))
	})

	t.Run("同じボックスを2回分割しても同じ結果", func(t *testing.T) {
		first := SubdivideBoundingBox(californiaBox())
		second := SubdivideBoundingBox(californiaBox())
		assert.Equal(t, first, second)
	})
}

func TestSubdivideBoundingBoxes(t *testing.T) {
	invalid := model.BoundingBox{YMin: ptr(1.0)}
	quadrants := SubdivideBoundingBoxes([]model.BoundingBox{invalid, californiaBox(), invalid})

	require.Len(t, quadrants, 4)
	assert.Equal(t, model.QuadrantSouthWest, quadrants[0].Position)
	assert.Empty(t, SubdivideBoundingBoxes(nil))
}
