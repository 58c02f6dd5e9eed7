package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"RestaurantFinder-App/internal/domain/model"
	"RestaurantFinder-App/internal/domain/repository"
)

const defaultPlacesBaseURL = "https://places.googleapis.com/v1"

// GooglePlacesProvider はGoogle Places API (New) の searchText を使った矩形範囲検索の実装
type GooglePlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGooglePlacesProvider は新しいプロバイダを生成する。baseURLが空なら本番URLを使う
func NewGooglePlacesProvider(apiKey, baseURL string) repository.PlacesProvider {
	if baseURL == "" {
		baseURL = defaultPlacesBaseURL
	}
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchInBounds は象限の矩形を locationRestriction にしてカテゴリ検索する
// APIがエラーを返した場合はエラーではなく、そのステータスを持つ結果を返す
func (g *GooglePlacesProvider) SearchInBounds(ctx context.Context, req model.SearchRequest) (*model.PlacesSearchResult, error) {
	// 1. リクエストボディを構築
	body, err := json.Marshal(buildSearchTextRequest(req))
	if err != nil {
		return nil, fmt.Errorf("リクエストのシリアライズに失敗: %w", err)
	}

	// 2. HTTPリクエストを作成・実行
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/places:searchText", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", g.apiKey)
	httpReq.Header.Set("X-Goog-FieldMask", "places.id")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスの読み取りに失敗: %w", err)
	}

	// 3. エラーステータスは結果のStatusに変換
	if resp.StatusCode != http.StatusOK {
		return &model.PlacesSearchResult{
			Status:   errorStatus(resp, respBody),
			PlaceIDs: []model.PlaceID{},
		}, nil
	}

	// 4. JSONレスポンスをパースしてドメインモデルに変換
	var apiResp searchTextResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	ids := make([]model.PlaceID, 0, len(apiResp.Places))
	for _, p := range apiResp.Places {
		if p.ID != "" {
			ids = append(ids, model.PlaceID(p.ID))
		}
	}

	status := model.PlacesStatusOK
	if len(ids) == 0 {
		status = model.PlacesStatusZeroResults
	}

	return &model.PlacesSearchResult{
		Status:   status,
		PlaceIDs: ids,
	}, nil
}

func buildSearchTextRequest(req model.SearchRequest) searchTextRequest {
	sw := req.Quadrant.SouthWest()
	ne := req.Quadrant.NorthEast()
	return searchTextRequest{
		TextQuery:    req.Category,
		IncludedType: req.Category,
		LocationRestriction: locationRestriction{
			Rectangle: rectangle{
				Low:  latLng{Latitude: sw.Lat, Longitude: sw.Lng},
				High: latLng{Latitude: ne.Lat, Longitude: ne.Lng},
			},
		},
	}
}

// errorStatus はエラーレスポンスからステータス文字列を取り出す
func errorStatus(resp *http.Response, body []byte) string {
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Status != "" {
		return apiErr.Error.Status
	}
	return fmt.Sprintf("HTTP_%d", resp.StatusCode)
}

// --- Google Places APIのリクエスト・レスポンス構造体 ---

type searchTextRequest struct {
	TextQuery           string              `json:"textQuery"`
	IncludedType        string              `json:"includedType,omitempty"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
}
type locationRestriction struct {
	Rectangle rectangle `json:"rectangle"`
}
type rectangle struct {
	Low  latLng `json:"low"`
	High latLng `json:"high"`
}
type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchTextResponse struct {
	Places []place `json:"places"`
}
type place struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
