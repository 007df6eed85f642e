package models

import (
	"time"

	"gorm.io/gorm"
)

// Video represents an uploaded video. Aggregate counters (likes, dislikes,
// comments, subscribers) are never stored on the row; they are derived from
// the reaction, comment and subscription tables at read time so they can
// never drift from the underlying records.
type Video struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	VideoURL     string  `gorm:"not null" json:"video_url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Duration     float64 `json:"duration"`
	Views        int64   `gorm:"default:0" json:"views"`
	IsPublished  bool    `gorm:"default:false;index" json:"is_published"`
	OwnerID      uint    `gorm:"not null;index" json:"owner_id"`

	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"->" json:"likes_count"`
	// DislikesCount is not persisted; computed at query time
	DislikesCount int64 `gorm:"->" json:"dislikes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int64 `gorm:"->" json:"comments_count"`
	// IsLiked indicates whether the current viewer liked this video (computed)
	IsLiked bool `gorm:"->" json:"is_liked"`
	// IsDisliked indicates whether the current viewer disliked this video (computed)
	IsDisliked bool `gorm:"->" json:"is_disliked"`

	// Owner is the channel summary attached by the read-model layer. It is
	// nil when the owning account no longer exists; readers degrade rather
	// than fail.
	Owner *ChannelSummary `gorm:"-" json:"owner,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Video) TableName() string {
	return "videos"
}
