package service

import (
	"context"
	"sync"

	"RestaurantFinder-App/internal/domain/model"
)

func ptr[T any](v T) *T {
	return &v
}

// fakeBoundingBoxRepository は呼び出しごとに用意した応答を順番に返す
type fakeBoundingBoxRepository struct {
	mu        sync.Mutex
	responses []fakeLookupResponse
	calls     int
	states    []string
}

type fakeLookupResponse struct {
	rows []model.BoundingBox
	err  error
}

func (f *fakeBoundingBoxRepository) FindByState(ctx context.Context, state string) ([]model.BoundingBox, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.states = append(f.states, state)
	idx := f.calls
	f.calls++
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	resp := f.responses[idx]
	return resp.rows, resp.err
}

// fakePlacesProvider は象限の位置ごとに応答を返す
type fakePlacesProvider struct {
	mu       sync.Mutex
	results  map[model.QuadrantPosition]*model.PlacesSearchResult
	errs     map[model.QuadrantPosition]error
	requests []model.SearchRequest
}

func (f *fakePlacesProvider) SearchInBounds(ctx context.Context, req model.SearchRequest) (*model.PlacesSearchResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if err, ok := f.errs[req.Quadrant.Position]; ok {
		return nil, err
	}
	if res, ok := f.results[req.Quadrant.Position]; ok {
		return res, nil
	}
	return &model.PlacesSearchResult{Status: model.PlacesStatusZeroResults}, nil
}

func testQuadrants() []model.Quadrant {
	return []model.Quadrant{
		{Position: model.QuadrantSouthWest, YMin: 0, YMax: 1, XMin: 0, XMax: 1},
		{Position: model.QuadrantSouthEast, YMin: 0, YMax: 1, XMin: 1, XMax: 2},
		{Position: model.QuadrantNorthWest, YMin: 1, YMax: 2, XMin: 0, XMax: 1},
		{Position: model.QuadrantNorthEast, YMin: 1, YMax: 2, XMin: 1, XMax: 2},
	}
}
