package models

import (
	"time"

	"gorm.io/gorm"
)

// Playlist is a named, owner-curated collection of videos.
type Playlist struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`

	// Attached by the read-model layer for the detail projection.
	Owner      *ChannelSummary `gorm:"-" json:"owner,omitempty"`
	Videos     []*Video        `gorm:"-" json:"videos,omitempty"`
	VideoCount int64           `gorm:"-" json:"video_count"`
	TotalViews int64           `gorm:"-" json:"total_views"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo links a video into a playlist. Unique per pair so repeated
// adds are absorbed.
type PlaylistVideo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PlaylistID uint      `gorm:"not null;uniqueIndex:idx_playlist_videos_pair" json:"playlist_id"`
	VideoID    uint      `gorm:"not null;uniqueIndex:idx_playlist_videos_pair;index" json:"video_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
