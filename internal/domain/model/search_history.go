package model

import "time"

// SearchHistoryRecord ツール呼び出し1回分の監査記録（プレイスIDは保持しない）
type SearchHistoryRecord struct {
	ID             string    `json:"id" firestore:"id"`
	State          string    `json:"state" firestore:"state"`
	Status         string    `json:"status" firestore:"status"`
	QuadrantCount  int       `json:"quadrant_count" firestore:"quadrant_count"`
	PlaceCount     int       `json:"place_count" firestore:"place_count"`
	ErrorMessage   string    `json:"error_message,omitempty" firestore:"error_message"`
	DurationMillis int64     `json:"duration_millis" firestore:"duration_millis"`
	CreatedAt      time.Time `json:"created_at" firestore:"created_at"`
	ExpiresAt      time.Time `json:"expires_at" firestore:"expires_at"`
}
