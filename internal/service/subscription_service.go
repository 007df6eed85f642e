package service

import (
	"context"

	"clipstream/internal/models"
	"clipstream/internal/repository"
)

// SubscriptionService owns the follow graph between viewers and channels.
type SubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	videoRepo        repository.VideoRepository
}

// SubscriptionState is the result of a toggle or status read.
type SubscriptionState struct {
	IsSubscribed    bool  `json:"is_subscribed"`
	SubscriberCount int64 `json:"subscriber_count"`
}

func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
	videoRepo repository.VideoRepository,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		videoRepo:        videoRepo,
	}
}

// Toggle flips the subscriber's edge to the channel: subscribed becomes
// unsubscribed and vice versa. Duplicate concurrent subscribes collapse on
// the unique pair index. Subscribing to yourself is allowed; nothing breaks
// and blocking it buys nothing.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID uint) (*SubscriptionState, error) {
	exists, err := s.userRepo.Exists(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("channel", channelID)
	}

	removed, err := s.subscriptionRepo.Remove(ctx, subscriberID, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	subscribed := false
	if !removed {
		if _, err := s.subscriptionRepo.Insert(ctx, subscriberID, channelID); err != nil {
			return nil, models.NewInternalError(err)
		}
		subscribed = true
	}

	count, err := s.subscriptionRepo.CountForChannel(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &SubscriptionState{IsSubscribed: subscribed, SubscriberCount: count}, nil
}

// Status reads the viewer's subscription state for a channel without
// changing it. A zero subscriberID yields false.
func (s *SubscriptionService) Status(ctx context.Context, subscriberID, channelID uint) (*SubscriptionState, error) {
	exists, err := s.userRepo.Exists(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("channel", channelID)
	}

	state := &SubscriptionState{}
	if subscriberID != 0 {
		subscribed, err := s.subscriptionRepo.Exists(ctx, subscriberID, channelID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		state.IsSubscribed = subscribed
	}

	count, err := s.subscriptionRepo.CountForChannel(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	state.SubscriberCount = count
	return state, nil
}

// ListSubscribers returns a channel's subscribers with each subscriber's own
// subscriber count and whether the channel follows them back.
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID uint, page, limit int) (*models.Page, error) {
	exists, err := s.userRepo.Exists(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("channel", channelID)
	}

	subscribers, total, err := s.subscriptionRepo.Subscribers(ctx, channelID, page, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if subscribers == nil {
		subscribers = []*models.SubscriberInfo{}
	}
	return models.NewPage(subscribers, pageOrDefault(page), limitOrDefault(limit), total), nil
}

// ListSubscribedChannels returns the channels the user subscribes to, each
// with its most recently published video when one exists.
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID uint) ([]*models.SubscribedChannel, error) {
	channelIDs, err := s.subscriptionRepo.ChannelIDs(ctx, subscriberID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	channels := make([]*models.SubscribedChannel, 0, len(channelIDs))
	for _, id := range channelIDs {
		summary, err := s.userRepo.ChannelSummary(ctx, id, subscriberID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		if summary == nil {
			// Deleted account; the edge is stale but harmless.
			continue
		}

		latest, err := s.videoRepo.LatestPublished(ctx, id)
		if err != nil {
			return nil, models.NewInternalError(err)
		}

		channels = append(channels, &models.SubscribedChannel{
			ID:          summary.ID,
			Username:    summary.Username,
			FullName:    summary.FullName,
			AvatarURL:   summary.AvatarURL,
			LatestVideo: latest,
		})
	}
	return channels, nil
}
