package repository

import (
	"context"
	"errors"

	"clipstream/internal/cache"
	"clipstream/internal/models"

	"gorm.io/gorm"
)

// VideoListOptions are the knobs for the feed query.
type VideoListOptions struct {
	Query         string // title/description substring search
	OwnerID       uint   // 0 = all owners
	SortBy        string // "created_at" (default), "views", "duration"
	SortAsc       bool
	Page          int // 1-based
	Limit         int
	PublishedOnly bool
	ViewerID      uint
}

// VideoRepository defines the interface for video data operations
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	// GetByID loads the bare row without derived fields.
	GetByID(ctx context.Context, id uint) (*models.Video, error)
	// GetDetail loads the viewer-scoped projection: derived counts plus
	// is_liked/is_disliked for the viewer (false when anonymous).
	GetDetail(ctx context.Context, id uint, viewerID uint) (*models.Video, error)
	List(ctx context.Context, opts VideoListOptions) ([]*models.Video, int64, error)
	ListByIDs(ctx context.Context, ids []uint, viewerID uint) ([]*models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	IncrementViews(ctx context.Context, id uint) error
	// OwnerRollups returns the dashboard per-video projection for a channel.
	OwnerRollups(ctx context.Context, ownerID uint) ([]*models.Video, error)
	LatestPublished(ctx context.Context, ownerID uint) (*models.Video, error)
}

// videoRepository implements VideoRepository
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// applyVideoDetails adds subqueries to fetch counts and the viewer's
// reaction flags in a single query. Counts are always computed from the
// underlying reaction and comment rows, never from stored fields, so a read
// can never observe drifted counters. With no viewer the flags are literal
// false: they must never be derived from another viewer's identity.
func (r *videoRepository) applyVideoDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "videos.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.target_kind = 'video' AND likes.target_id = videos.id) as likes_count, " +
		"(SELECT COUNT(*) FROM dislikes WHERE dislikes.target_kind = 'video' AND dislikes.target_id = videos.id) as dislikes_count, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.video_id = videos.id AND comments.deleted_at IS NULL) as comments_count"

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM likes WHERE likes.target_kind = 'video' AND likes.target_id = videos.id AND likes.user_id = ?) as is_liked"+
			", EXISTS(SELECT 1 FROM dislikes WHERE dislikes.target_kind = 'video' AND dislikes.target_id = videos.id AND dislikes.user_id = ?) as is_disliked",
			viewerID, viewerID)
	}

	return db.Select(selectQuery + ", false as is_liked, false as is_disliked")
}

func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) GetDetail(ctx context.Context, id uint, viewerID uint) (*models.Video, error) {
	var video models.Video

	// Only the anonymous projection is cacheable; viewer-scoped flags would
	// leak between viewers.
	if viewerID == 0 {
		err := cache.Aside(ctx, cache.VideoKey(id), &video, cache.VideoTTL, func() error {
			return r.applyVideoDetails(r.db.WithContext(ctx), 0).First(&video, id).Error
		})
		if err != nil {
			return nil, err
		}
		return &video, nil
	}

	if err := r.applyVideoDetails(r.db.WithContext(ctx), viewerID).First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) List(ctx context.Context, opts VideoListOptions) ([]*models.Video, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Video{})
	if opts.PublishedOnly {
		base = base.Where("is_published = ?", true)
	}
	if opts.OwnerID != 0 {
		base = base.Where("owner_id = ?", opts.OwnerID)
	}
	if opts.Query != "" {
		like := "%" + opts.Query + "%"
		base = base.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	switch opts.SortBy {
	case "views", "duration", "created_at":
		dir := "DESC"
		if opts.SortAsc {
			dir = "ASC"
		}
		order = opts.SortBy + " " + dir
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}

	var videos []*models.Video
	err := r.applyVideoDetails(base, opts.ViewerID).
		Order(order).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *videoRepository) ListByIDs(ctx context.Context, ids []uint, viewerID uint) ([]*models.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []*models.Video
	err := r.applyVideoDetails(r.db.WithContext(ctx).Model(&models.Video{}), viewerID).
		Where("videos.id IN ?", ids).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) Update(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Save(video).Error; err != nil {
		return err
	}
	cache.InvalidateVideo(ctx, video.ID)
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Video{}, id).Error; err != nil {
		return err
	}
	cache.InvalidateVideo(ctx, id)
	return nil
}

func (r *videoRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *videoRepository) IncrementViews(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err == nil {
		cache.InvalidateVideo(ctx, id)
	}
	return err
}

func (r *videoRepository) OwnerRollups(ctx context.Context, ownerID uint) ([]*models.Video, error) {
	var videos []*models.Video
	err := r.applyVideoDetails(r.db.WithContext(ctx).Model(&models.Video{}), 0).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) LatestPublished(ctx context.Context, ownerID uint) (*models.Video, error) {
	var video models.Video
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_published = ?", ownerID, true).
		Order("created_at DESC").
		First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}
