// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Every user doubles as a channel that
// other users can subscribe to.
type User struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Username      string `gorm:"uniqueIndex;not null" json:"username"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `gorm:"not null" json:"-"`
	FullName      string `json:"full_name"`
	AvatarURL     string `json:"avatar_url"`
	CoverImageURL string `json:"cover_image_url"`
	Description   string `gorm:"type:text" json:"description"`

	// SubscribersCount is not persisted; computed at query time
	SubscribersCount int64 `gorm:"->" json:"subscribers_count"`
	// SubscribedToCount is not persisted; computed at query time
	SubscribedToCount int64 `gorm:"->" json:"subscribed_to_count"`
	// IsSubscribed indicates whether the current viewer subscribes to this channel (computed)
	IsSubscribed bool `gorm:"->" json:"is_subscribed"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// ChannelSummary is the nested owner projection embedded in video, comment
// and subscriber read models.
type ChannelSummary struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	FullName         string `json:"full_name"`
	AvatarURL        string `json:"avatar_url"`
	SubscribersCount int64  `json:"subscribers_count"`
	IsSubscribed     bool   `json:"is_subscribed"`
}
