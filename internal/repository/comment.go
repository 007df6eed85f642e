package repository

import (
	"context"

	"clipstream/internal/cache"
	"clipstream/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	// ListByVideo returns the viewer-scoped comment list for a video,
	// newest first, with per-comment reaction counts.
	ListByVideo(ctx context.Context, videoID uint, viewerID uint, page, limit int) ([]*models.Comment, int64, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	// IDsByVideo lists comment ids for a video, including soft-deleted
	// rows, so a video cascade can purge reactions on already-gone
	// comments too.
	IDsByVideo(ctx context.Context, videoID uint) ([]uint, error)
	DeleteByVideo(ctx context.Context, videoID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) applyCommentDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "comments.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.target_kind = 'comment' AND likes.target_id = comments.id) as likes_count, " +
		"(SELECT COUNT(*) FROM dislikes WHERE dislikes.target_kind = 'comment' AND dislikes.target_id = comments.id) as dislikes_count"

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM likes WHERE likes.target_kind = 'comment' AND likes.target_id = comments.id AND likes.user_id = ?) as is_liked",
			viewerID)
	}
	return db.Select(selectQuery + ", false as is_liked")
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	// The cached anonymous video projection embeds comments_count.
	cache.InvalidateVideo(ctx, comment.VideoID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("Owner").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByVideo(ctx context.Context, videoID uint, viewerID uint, page, limit int) ([]*models.Comment, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Comment{}).Where("video_id = ?", videoID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}

	var comments []*models.Comment
	err := r.applyCommentDetails(base, viewerID).
		Preload("Owner").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	var videoIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Pluck("video_id", &videoIDs).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return err
	}
	if len(videoIDs) > 0 {
		cache.InvalidateVideo(ctx, videoIDs[0])
	}
	return nil
}

func (r *commentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *commentRepository) IDsByVideo(ctx context.Context, videoID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&models.Comment{}).
		Where("video_id = ?", videoID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *commentRepository) DeleteByVideo(ctx context.Context, videoID uint) error {
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	cache.InvalidateVideo(ctx, videoID)
	return nil
}
