package models

import (
	"time"

	"gorm.io/gorm"
)

// Tweet is a short text post on a channel. It exists mainly as a reaction
// target alongside videos and comments.
type Tweet struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID" json:"owner"`

	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"->" json:"likes_count"`
	// IsLiked indicates whether the current viewer liked this tweet (computed)
	IsLiked bool `gorm:"->" json:"is_liked"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Tweet) TableName() string {
	return "tweets"
}
