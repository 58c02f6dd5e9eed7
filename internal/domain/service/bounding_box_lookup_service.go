package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"RestaurantFinder-App/internal/domain/model"
	"RestaurantFinder-App/internal/domain/repository"
)

// BoundingBoxLookupService は州名からバウンディングボックスをリトライ付きで取得する
type BoundingBoxLookupService struct {
	repo   repository.BoundingBoxRepository
	policy RetryPolicy
}

// NewBoundingBoxLookupService は新しいBoundingBoxLookupServiceインスタンスを作成
func NewBoundingBoxLookupService(repo repository.BoundingBoxRepository, policy RetryPolicy) *BoundingBoxLookupService {
	return &BoundingBoxLookupService{
		repo:   repo,
		policy: policy,
	}
}

// Lookup は州名に部分一致する最初の1件を返す
// 全試行が失敗した場合は *model.LookupExhaustedError を返す
func (s *BoundingBoxLookupService) Lookup(ctx context.Context, state string) (*model.BoundingBox, error) {
	state = strings.TrimSpace(state)
	if state == "" {
		return nil, model.ErrInvalidState
	}

	var box *model.BoundingBox
	var lastQueryErr error

	attempts, err := s.policy.Execute(ctx, func(ctx context.Context, attempt int) error {
		rows, err := s.repo.FindByState(ctx, state)
		if err != nil {
			lastQueryErr = err
			log.Printf("⚠️  バウンディングボックス取得失敗 (州: %s, 試行: %d/%d): %v", state, attempt, s.policy.MaxAttempts, err)
			return err
		}
		if len(rows) == 0 {
			log.Printf("⚠️  バウンディングボックスが0件 (州: %s, 試行: %d/%d)", state, attempt, s.policy.MaxAttempts)
			return model.ErrNoData
		}

		box = &rows[0]
		log.Printf("✅ バウンディングボックス取得成功 (州: %s, 試行: %d/%d)", state, attempt, s.policy.MaxAttempts)
		return nil
	})
	if err != nil {
		// キャンセル以外は、通信エラーがあればそれを、全て0件ならErrNoDataを原因とする
		cause := err
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) && lastQueryErr != nil {
			cause = lastQueryErr
		}
		return nil, &model.LookupExhaustedError{
			State:    state,
			Attempts: attempts,
			Err:      cause,
		}
	}

	if box == nil {
		return nil, fmt.Errorf("%w (州: %s)", model.ErrBoundingBoxNotObtained, state)
	}

	return box, nil
}
