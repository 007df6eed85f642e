package repository

import (
	"context"

	"clipstream/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WatchHistoryRepository defines the interface for watch history data. The
// Add result feeds the view counter: a view increments only when the insert
// actually added a row.
type WatchHistoryRepository interface {
	// Add records that the user opened the video. Returns whether this is
	// the first time for this (user, video) pair.
	Add(ctx context.Context, userID, videoID uint) (bool, error)
	Remove(ctx context.Context, userID, videoID uint) (bool, error)
	Clear(ctx context.Context, userID uint) error
	// VideoIDs lists the user's watched videos, most recently opened first.
	VideoIDs(ctx context.Context, userID uint, page, limit int) ([]uint, int64, error)
	DeleteByVideo(ctx context.Context, videoID uint) error
}

type watchHistoryRepository struct {
	db *gorm.DB
}

// NewWatchHistoryRepository creates a new WatchHistoryRepository
func NewWatchHistoryRepository(db *gorm.DB) WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

func (r *watchHistoryRepository) Add(ctx context.Context, userID, videoID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.WatchHistory{UserID: userID, VideoID: videoID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *watchHistoryRepository) Remove(ctx context.Context, userID, videoID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&models.WatchHistory{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *watchHistoryRepository) Clear(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.WatchHistory{}).Error
}

func (r *watchHistoryRepository) VideoIDs(ctx context.Context, userID uint, page, limit int) ([]uint, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.WatchHistory{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.WatchHistory{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Pluck("video_id", &ids).Error
	if err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

func (r *watchHistoryRepository) DeleteByVideo(ctx context.Context, videoID uint) error {
	return r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&models.WatchHistory{}).Error
}

// WatchLaterRepository defines the interface for watch-later bookmarks.
type WatchLaterRepository interface {
	Add(ctx context.Context, userID, videoID uint) (bool, error)
	Remove(ctx context.Context, userID, videoID uint) (bool, error)
	Contains(ctx context.Context, userID, videoID uint) (bool, error)
	VideoIDs(ctx context.Context, userID uint, page, limit int) ([]uint, int64, error)
	DeleteByVideo(ctx context.Context, videoID uint) error
}

type watchLaterRepository struct {
	db *gorm.DB
}

// NewWatchLaterRepository creates a new WatchLaterRepository
func NewWatchLaterRepository(db *gorm.DB) WatchLaterRepository {
	return &watchLaterRepository{db: db}
}

func (r *watchLaterRepository) Add(ctx context.Context, userID, videoID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.WatchLater{UserID: userID, VideoID: videoID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *watchLaterRepository) Remove(ctx context.Context, userID, videoID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&models.WatchLater{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *watchLaterRepository) Contains(ctx context.Context, userID, videoID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WatchLater{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *watchLaterRepository) VideoIDs(ctx context.Context, userID uint, page, limit int) ([]uint, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.WatchLater{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.WatchLater{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Pluck("video_id", &ids).Error
	if err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

func (r *watchLaterRepository) DeleteByVideo(ctx context.Context, videoID uint) error {
	return r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&models.WatchLater{}).Error
}
