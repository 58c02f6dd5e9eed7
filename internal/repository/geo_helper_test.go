package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxRow_ToBoundingBox(t *testing.T) {
	row := boundingBoxRow{
		YMin:       sql.NullFloat64{Float64: 32.5, Valid: true},
		YMax:       sql.NullFloat64{Float64: 42.0, Valid: true},
		XMin:       sql.NullFloat64{Valid: false},
		XMax:       sql.NullFloat64{Float64: -114.1, Valid: true},
		CountyName: sql.NullString{String: "Kern", Valid: true},
	}

	box := row.ToBoundingBox()
	require.NotNil(t, box.YMin)
	assert.Equal(t, 32.5, *box.YMin)
	assert.Nil(t, box.XMin)
	assert.False(t, box.HasAllBounds())
	assert.Equal(t, "Kern", box.GetCountyName())
}

func TestDecodeBoundingBoxes(t *testing.T) {
	t.Run("空のボディは0件", func(t *testing.T) {
		boxes, err := decodeBoundingBoxes(nil)
		require.NoError(t, err)
		assert.Empty(t, boxes)
	})

	t.Run("不正なJSONはエラー", func(t *testing.T) {
		_, err := decodeBoundingBoxes([]byte(`{"message":"oops"}`))
		assert.Error(t, err)
	})
}

func TestBuildFindByStateQuery(t *testing.T) {
	query := buildFindByStateQuery(DefaultBoundingBoxTable())
	assert.Equal(t, `SELECT y_min, y_max, x_min, x_max, "COUNTY_NAME" FROM "bounding_boxes" WHERE "STATE_NAME" ILIKE $1 LIMIT 1`, query)
	assert.Equal(t, "%california%", statePattern("california"))
}
