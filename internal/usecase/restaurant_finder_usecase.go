package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"RestaurantFinder-App/internal/domain/helper"
	"RestaurantFinder-App/internal/domain/model"
	"RestaurantFinder-App/internal/domain/repository"
	"RestaurantFinder-App/internal/domain/service"
)

type RestaurantFinderUseCase interface {
	// FindRestaurantsByState は州のバウンディングボックスを4分割し、各象限のレストランIDを連結して返す
	FindRestaurantsByState(ctx context.Context, state string) (*model.RestaurantSearchResult, error)

	// GetSearchHistory は検索履歴を取得する（履歴リポジトリ未設定時はエラー）
	GetSearchHistory(ctx context.Context, id string) (*model.SearchHistoryRecord, error)
}

// ErrHistoryDisabled 検索履歴が無効
var ErrHistoryDisabled = errors.New("検索履歴は無効です")

// historyTTL 検索履歴の保持期間
const historyTTL = 24 * time.Hour

// restaurantFinderUseCaseImpl はRestaurantFinderUseCaseの実装
type restaurantFinderUseCaseImpl struct {
	lookupService  *service.BoundingBoxLookupService
	regionSearcher *service.ParallelRegionSearcher
	historyRepo    repository.SearchHistoryRepository
}

// NewRestaurantFinderUseCase は新しいRestaurantFinderUseCaseインスタンスを作成
// historyRepo は nil でもよい
func NewRestaurantFinderUseCase(
	lookupService *service.BoundingBoxLookupService,
	regionSearcher *service.ParallelRegionSearcher,
	historyRepo repository.SearchHistoryRepository,
) RestaurantFinderUseCase {
	return &restaurantFinderUseCaseImpl{
		lookupService:  lookupService,
		regionSearcher: regionSearcher,
		historyRepo:    historyRepo,
	}
}

// FindRestaurantsByState はルックアップ失敗時のみエラーを返す
func (u *restaurantFinderUseCaseImpl) FindRestaurantsByState(ctx context.Context, state string) (*model.RestaurantSearchResult, error) {
	state = strings.TrimSpace(state)
	log.Printf("🚀 レストラン検索開始 (州: %s)", state)
	start := time.Now()

	// Step 1: バウンディングボックスを取得
	box, err := u.lookupService.Lookup(ctx, state)
	if err != nil {
		log.Printf("❌ バウンディングボックス取得に失敗 (州: %s): %v", state, err)
		u.recordHistory(ctx, state, nil, err, time.Since(start))
		return nil, fmt.Errorf("レストラン検索に失敗: %w", err)
	}

	// Step 2: 4象限に分割（境界値が欠けていれば0象限）
	quadrants := helper.SubdivideBoundingBox(*box)
	if len(quadrants) == 0 {
		log.Printf("⚠️  バウンディングボックスが不完全なため検索をスキップ (州: %s)", state)
	}

	// Step 3: 象限ごとに並行検索
	outcome := u.regionSearcher.Search(ctx, quadrants)

	result := &model.RestaurantSearchResult{
		State:           state,
		CountyName:      box.GetCountyName(),
		QuadrantCount:   len(quadrants),
		FailedQuadrants: outcome.FailedQuadrants,
		PlaceIDs:        outcome.PlaceIDs,
	}

	log.Printf("🎉 レストラン検索完了 (州: %s, %d件)", state, len(result.PlaceIDs))
	result.SearchID = u.recordHistory(ctx, state, result, nil, time.Since(start))

	return result, nil
}

// GetSearchHistory は指定IDの検索履歴を取得する
func (u *restaurantFinderUseCaseImpl) GetSearchHistory(ctx context.Context, id string) (*model.SearchHistoryRecord, error) {
	if u.historyRepo == nil {
		return nil, ErrHistoryDisabled
	}

	record, err := u.historyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("検索履歴の取得に失敗: %w", err)
	}
	return record, nil
}

// recordHistory は検索履歴を保存してIDを返す。保存失敗は検索結果に影響させない
func (u *restaurantFinderUseCaseImpl) recordHistory(ctx context.Context, state string, result *model.RestaurantSearchResult, searchErr error, elapsed time.Duration) string {
	if u.historyRepo == nil {
		return ""
	}

	now := time.Now()
	record := &model.SearchHistoryRecord{
		ID:             uuid.New().String(),
		State:          state,
		Status:         model.SearchStatusSucceeded,
		DurationMillis: elapsed.Milliseconds(),
		CreatedAt:      now,
		ExpiresAt:      now.Add(historyTTL),
	}
	if result != nil {
		record.QuadrantCount = result.QuadrantCount
		record.PlaceCount = len(result.PlaceIDs)
	}
	if searchErr != nil {
		record.Status = model.SearchStatusFailed
		record.ErrorMessage = searchErr.Error()
	}

	if err := u.historyRepo.Save(ctx, record); err != nil {
		log.Printf("⚠️  検索履歴の保存に失敗: %v", err)
		return ""
	}
	log.Printf("💾 検索履歴を保存 (ID: %s)", record.ID)
	return record.ID
}
