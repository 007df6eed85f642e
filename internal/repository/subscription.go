package repository

import (
	"context"

	"clipstream/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionRepository defines the interface for the follow graph. The
// (subscriber, channel) unique pair is the only concurrency guard, same as
// the reaction stores.
type SubscriptionRepository interface {
	// Insert creates the edge, absorbing duplicate races. Returns whether
	// a row was actually added.
	Insert(ctx context.Context, subscriberID, channelID uint) (bool, error)
	// Remove deletes the edge. Returns whether a row was actually removed.
	Remove(ctx context.Context, subscriberID, channelID uint) (bool, error)
	Exists(ctx context.Context, subscriberID, channelID uint) (bool, error)
	CountForChannel(ctx context.Context, channelID uint) (int64, error)
	// Subscribers lists a channel's subscribers, each with their own
	// subscriber count and whether the channel follows them back.
	Subscribers(ctx context.Context, channelID uint, page, limit int) ([]*models.SubscriberInfo, int64, error)
	// ChannelIDs lists the channels a user subscribes to, newest first.
	ChannelIDs(ctx context.Context, subscriberID uint) ([]uint, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Insert(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Subscription{SubscriberID: subscriberID, ChannelID: channelID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *subscriptionRepository) Remove(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&models.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subscriptionRepository) CountForChannel(ctx context.Context, channelID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) Subscribers(ctx context.Context, channelID uint, page, limit int) ([]*models.SubscriberInfo, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriptions.channel_id = ?", channelID)

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

	var rows []*models.SubscriberInfo
	err := base.
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Select("users.id, users.username, users.full_name, users.avatar_url, "+
			"(SELECT COUNT(*) FROM subscriptions s2 WHERE s2.channel_id = users.id) as subscribers_count, "+
			"EXISTS(SELECT 1 FROM subscriptions s3 WHERE s3.subscriber_id = ? AND s3.channel_id = users.id) as subscribed_back",
			channelID).
		Order("subscriptions.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *subscriptionRepository) ChannelIDs(ctx context.Context, subscriberID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC").
		Pluck("channel_id", &ids).Error
	return ids, err
}
