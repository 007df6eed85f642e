package repository

import (
	"context"
	"errors"

	"clipstream/internal/models"

	"gorm.io/gorm"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Tweet, error)
	ListByOwner(ctx context.Context, ownerID uint, viewerID uint, page, limit int) ([]*models.Tweet, int64, error)
	Update(ctx context.Context, tweet *models.Tweet) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository creates a new TweetRepository
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

// applyTweetDetails annotates tweets with their like count and, for a signed-in
// viewer, that viewer's own like flag. Anonymous viewers get a literal false.
func applyTweetDetails(query *gorm.DB, viewerID uint) *gorm.DB {
	if viewerID > 0 {
		return query.Select("tweets.*, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.target_kind = 'tweet' AND likes.target_id = tweets.id) as likes_count, "+
			"EXISTS(SELECT 1 FROM likes WHERE likes.target_kind = 'tweet' AND likes.target_id = tweets.id AND likes.user_id = ?) as is_liked",
			viewerID)
	}
	return query.Select("tweets.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.target_kind = 'tweet' AND likes.target_id = tweets.id) as likes_count, " +
		"false as is_liked")
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

func (r *tweetRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Tweet, error) {
	var tweet models.Tweet
	query := applyTweetDetails(r.db.WithContext(ctx).Model(&models.Tweet{}), viewerID)
	if err := query.Preload("Owner").First(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID uint, viewerID uint, page, limit int) ([]*models.Tweet, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Tweet{}).
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

	var tweets []*models.Tweet
	query := applyTweetDetails(r.db.WithContext(ctx).Model(&models.Tweet{}), viewerID).
		Where("owner_id = ?", ownerID).
		Preload("Owner").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit)
	if err := query.Find(&tweets).Error; err != nil {
		return nil, 0, err
	}
	return tweets, total, nil
}

func (r *tweetRepository) Update(ctx context.Context, tweet *models.Tweet) error {
	return r.db.WithContext(ctx).Model(tweet).Updates(map[string]interface{}{
		"content": tweet.Content,
	}).Error
}

func (r *tweetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Tweet{}, id).Error
}

func (r *tweetRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Tweet{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
