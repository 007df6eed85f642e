package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a video. Only the owner may edit or delete
// it; deleting the video cascades to its comments, and deleting a comment
// (directly or via cascade) purges the comment's reactions.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
	VideoID uint   `gorm:"not null;index" json:"video_id"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID" json:"owner"`

	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"->" json:"likes_count"`
	// DislikesCount is not persisted; computed at query time
	DislikesCount int64 `gorm:"->" json:"dislikes_count"`
	// IsLiked indicates whether the current viewer liked this comment (computed)
	IsLiked bool `gorm:"->" json:"is_liked"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Comment) TableName() string {
	return "comments"
}
