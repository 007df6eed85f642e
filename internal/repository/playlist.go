package repository

import (
	"context"
	"errors"

	"clipstream/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlaylistRepository defines the interface for playlist data operations
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *models.Playlist) error
	GetByID(ctx context.Context, id uint) (*models.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uint, page, limit int) ([]*models.Playlist, int64, error)
	Update(ctx context.Context, playlist *models.Playlist) error
	Delete(ctx context.Context, id uint) error
	// AddVideo links a video into a playlist, absorbing duplicate adds.
	// Returns whether a row was actually added.
	AddVideo(ctx context.Context, playlistID, videoID uint) (bool, error)
	// RemoveVideo unlinks a video. Returns whether a row was actually removed.
	RemoveVideo(ctx context.Context, playlistID, videoID uint) (bool, error)
	VideoIDs(ctx context.Context, playlistID uint) ([]uint, error)
	// Rollups computes the membership count and summed view count for a
	// playlist's videos in one pass.
	Rollups(ctx context.Context, playlistID uint) (videoCount int64, totalViews int64, err error)
	// RemoveVideoFromAll detaches a video from every playlist. Used when the
	// video itself is deleted.
	RemoveVideoFromAll(ctx context.Context, videoID uint) error
}

type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository creates a new PlaylistRepository
func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *models.Playlist) error {
	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *playlistRepository) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := r.db.WithContext(ctx).First(&playlist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID uint, page, limit int) ([]*models.Playlist, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Playlist{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}

	var playlists []*models.Playlist
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&playlists).Error
	if err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist *models.Playlist) error {
	return r.db.WithContext(ctx).Model(playlist).Updates(map[string]interface{}{
		"name":        playlist.Name,
		"description": playlist.Description,
	}).Error
}

func (r *playlistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Playlist{}, id).Error
	})
}

func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *playlistRepository) VideoIDs(ctx context.Context, playlistID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Order("created_at ASC").
		Pluck("video_id", &ids).Error
	return ids, err
}

func (r *playlistRepository) Rollups(ctx context.Context, playlistID uint) (int64, int64, error) {
	var row struct {
		VideoCount int64
		TotalViews int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.PlaylistVideo{}).
		Joins("JOIN videos ON videos.id = playlist_videos.video_id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Select("COUNT(*) as video_count, COALESCE(SUM(videos.views), 0) as total_views").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.VideoCount, row.TotalViews, nil
}

func (r *playlistRepository) RemoveVideoFromAll(ctx context.Context, videoID uint) error {
	return r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&models.PlaylistVideo{}).Error
}
