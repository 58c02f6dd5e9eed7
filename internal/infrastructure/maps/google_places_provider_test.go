package maps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RestaurantFinder-App/internal/domain/model"
)

func testSearchRequest() model.SearchRequest {
	return model.NewRestaurantSearchRequest(model.Quadrant{
		Position: model.QuadrantSouthWest,
		YMin:     32.5,
		YMax:     37.25,
		XMin:     -124.4,
		XMax:     -119.25,
	})
}

func TestGooglePlacesProvider_SearchInBounds(t *testing.T) {
	ctx := context.Background()

	t.Run("矩形とカテゴリを送り、IDを順序どおりに返す", func(t *testing.T) {
		var got searchTextRequest
		var headers http.Header
		var path string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			headers = r.Header.Clone()
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"places":[{"id":"ChIJ-a"},{"id":"ChIJ-b"},{"id":""}]}`))
		}))
		defer server.Close()

		provider := NewGooglePlacesProvider("test-key", server.URL)
		result, err := provider.SearchInBounds(ctx, testSearchRequest())
		require.NoError(t, err)

		assert.Equal(t, model.PlacesStatusOK, result.Status)
		assert.Equal(t, []model.PlaceID{"ChIJ-a", "ChIJ-b"}, result.PlaceIDs)

		assert.Equal(t, "/places:searchText", path)
		assert.Equal(t, "test-key", headers.Get("X-Goog-Api-Key"))
		assert.Equal(t, "places.id", headers.Get("X-Goog-FieldMask"))
		assert.Equal(t, "restaurant", got.TextQuery)
		assert.Equal(t, "restaurant", got.IncludedType)
		assert.Equal(t, 32.5, got.LocationRestriction.Rectangle.Low.Latitude)
		assert.Equal(t, -124.4, got.LocationRestriction.Rectangle.Low.Longitude)
		assert.Equal(t, 37.25, got.LocationRestriction.Rectangle.High.Latitude)
		assert.Equal(t, -119.25, got.LocationRestriction.Rectangle.High.Longitude)
	})

	t.Run("0件はZERO_RESULTS", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		result, err := NewGooglePlacesProvider("k", server.URL).SearchInBounds(ctx, testSearchRequest())
		require.NoError(t, err)
		assert.Equal(t, model.PlacesStatusZeroResults, result.Status)
		assert.Empty(t, result.PlaceIDs)
		assert.False(t, result.IsOK())
	})

	t.Run("APIエラーはステータスとして返し、errorにはしない", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
		}))
		defer server.Close()

		result, err := NewGooglePlacesProvider("bad", server.URL).SearchInBounds(ctx, testSearchRequest())
		require.NoError(t, err)
		assert.Equal(t, "PERMISSION_DENIED", result.Status)
		assert.Empty(t, result.PlaceIDs)
	})

	t.Run("エラーボディがなければHTTPステータスを使う", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		result, err := NewGooglePlacesProvider("k", server.URL).SearchInBounds(ctx, testSearchRequest())
		require.NoError(t, err)
		assert.Equal(t, "HTTP_502", result.Status)
	})

	t.Run("通信エラーはerrorを返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := NewGooglePlacesProvider("k", server.URL).SearchInBounds(ctx, testSearchRequest())
		assert.Error(t, err)
	})
}
