package models

import "time"

// WatchHistory records that a user has opened a video. The (user, video)
// unique pair gives the set semantics the view counter depends on: a view
// increments at most once per pair, decided by whether the insert actually
// added a row.
type WatchHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_watch_history_pair" json:"user_id"`
	VideoID   uint      `gorm:"not null;uniqueIndex:idx_watch_history_pair;index" json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (WatchHistory) TableName() string {
	return "watch_history"
}

// WatchLater is a user's save-for-later bookmark on a video.
type WatchLater struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_watch_later_pair" json:"user_id"`
	VideoID   uint      `gorm:"not null;uniqueIndex:idx_watch_later_pair;index" json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (WatchLater) TableName() string {
	return "watch_later"
}
