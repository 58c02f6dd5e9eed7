package service

import (
	"context"
	"fmt"
)

// AttemptFunc は1回分の試行。attemptは1始まり
type AttemptFunc func(ctx context.Context, attempt int) error

// RetryPolicy は待機なしで即時に再試行する回数制限付きポリシー
type RetryPolicy struct {
	MaxAttempts int
}

// NewImmediateRetryPolicy は新しいRetryPolicyを作成する。1未満は1回として扱う
func NewImmediateRetryPolicy(maxAttempts int) RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return RetryPolicy{MaxAttempts: maxAttempts}
}

// Execute はfnが成功するか上限に達するまで実行し、試行回数と最後のエラーを返す
// コンテキストがキャンセルされた場合はそれ以上試行しない
func (p RetryPolicy) Execute(ctx context.Context, fn AttemptFunc) (int, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	attempts := 0
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				return attempts, err
			}
			return attempts, fmt.Errorf("%w (直前のエラー: %v)", err, lastErr)
		}

		attempts = attempt
		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return attempts, nil
		}
	}

	return attempts, lastErr
}
