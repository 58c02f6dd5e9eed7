package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState 州名が空
	ErrInvalidState = errors.New("州名が指定されていません")
	// ErrNoData クエリは成功したが該当行が0件
	ErrNoData = errors.New("該当するバウンディングボックスが見つかりません")
	// ErrBoundingBoxNotObtained リトライ後もボックスが得られなかった
	ErrBoundingBoxNotObtained = errors.New("バウンディングボックスを取得できませんでした")
)

// LookupExhaustedError バウンディングボックス取得のリトライ上限到達
type LookupExhaustedError struct {
	State    string
	Attempts int
	Err      error
}

func (e *LookupExhaustedError) Error() string {
	return fmt.Sprintf("州 %q のバウンディングボックス取得に%d回失敗しました: %v", e.State, e.Attempts, e.Err)
}

func (e *LookupExhaustedError) Unwrap() error {
	return e.Err
}

// ErrSearchHistoryNotFound 検索履歴が存在しない（期限切れを含む）
var ErrSearchHistoryNotFound = errors.New("検索履歴が見つかりません")
