package service

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"RestaurantFinder-App/internal/domain/model"
	"RestaurantFinder-App/internal/domain/repository"
)

// ParallelRegionSearcher は象限ごとのプレイス検索を並行で実行し、結果を連結する
type ParallelRegionSearcher struct {
	placesProvider repository.PlacesProvider
	maxGoroutines  int
}

// NewParallelRegionSearcher は新しい並行検索インスタンスを作成
func NewParallelRegionSearcher(placesProvider repository.PlacesProvider, maxGoroutines int) *ParallelRegionSearcher {
	if maxGoroutines < 1 {
		maxGoroutines = model.DefaultSearchConcurrency
	}
	return &ParallelRegionSearcher{
		placesProvider: placesProvider,
		maxGoroutines:  maxGoroutines,
	}
}

// RegionSearchOutcome は並行検索の集計結果
type RegionSearchOutcome struct {
	PlaceIDs        []model.PlaceID
	FailedQuadrants int
}

// Search は全象限の検索が終わるまで待ち、象限の順序どおりにIDを連結して返す
// 失敗した象限は空として扱い、他の象限の検索は止めない
func (p *ParallelRegionSearcher) Search(ctx context.Context, quadrants []model.Quadrant) *RegionSearchOutcome {
	if len(quadrants) == 0 {
		return &RegionSearchOutcome{PlaceIDs: []model.PlaceID{}}
	}

	log.Printf("🚀 並行レストラン検索開始: %d象限", len(quadrants))
	start := time.Now()

	// 各ゴルーチンは自分のインデックスにだけ書き込む
	perQuadrant := make([][]model.PlaceID, len(quadrants))
	failed := make([]bool, len(quadrants))

	// 失敗してもnilを返すので、兄弟ゴルーチンがキャンセルされることはない
	var g errgroup.Group
	g.SetLimit(p.maxGoroutines)

	for i, quadrant := range quadrants {
		g.Go(func() error {
			ids, ok := p.searchQuadrant(ctx, quadrant)
			perQuadrant[i] = ids
			failed[i] = !ok
			return nil
		})
	}
	_ = g.Wait()

	outcome := &RegionSearchOutcome{PlaceIDs: []model.PlaceID{}}
	for i, ids := range perQuadrant {
		outcome.PlaceIDs = append(outcome.PlaceIDs, ids...)
		if failed[i] {
			outcome.FailedQuadrants++
		}
	}

	log.Printf("✅ 並行レストラン検索完了: %v (取得:%d件, 失敗象限:%d)", time.Since(start), len(outcome.PlaceIDs), outcome.FailedQuadrants)
	return outcome
}

// searchQuadrant は1象限を検索する。失敗時は空スライスとfalseを返す
func (p *ParallelRegionSearcher) searchQuadrant(ctx context.Context, quadrant model.Quadrant) ([]model.PlaceID, bool) {
	name := model.GetQuadrantJapaneseName(quadrant.Position)

	result, err := p.placesProvider.SearchInBounds(ctx, model.NewRestaurantSearchRequest(quadrant))
	if err != nil {
		log.Printf("⚠️  %s象限の検索エラー: %v", name, err)
		return []model.PlaceID{}, false
	}
	if result == nil {
		log.Printf("⚠️  %s象限の検索結果がnilです", name)
		return []model.PlaceID{}, false
	}
	if !result.IsOK() {
		log.Printf("⚠️  %s象限の検索ステータス: %s", name, result.Status)
		return []model.PlaceID{}, result.Status == model.PlacesStatusZeroResults
	}

	return result.PlaceIDs, true
}
