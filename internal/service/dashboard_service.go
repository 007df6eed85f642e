package service

import (
	"context"

	"clipstream/internal/models"
	"clipstream/internal/repository"
)

// DashboardService computes the channel analytics rollup. Everything is
// derived from the underlying rows at read time.
type DashboardService struct {
	videoRepo        repository.VideoRepository
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
}

func NewDashboardService(
	videoRepo repository.VideoRepository,
	subscriptionRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		videoRepo:        videoRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

// ChannelStats aggregates a channel's totals: subscribers, videos, views and
// likes across all its videos. The like percentage is likes per hundred
// views; with zero views it is zero, not a division error.
func (s *DashboardService) ChannelStats(ctx context.Context, channelID uint) (*models.ChannelStats, error) {
	exists, err := s.userRepo.Exists(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("channel", channelID)
	}

	subscribers, err := s.subscriptionRepo.CountForChannel(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	videos, err := s.videoRepo.OwnerRollups(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	stats := &models.ChannelStats{
		TotalSubscribers: subscribers,
		TotalVideos:      int64(len(videos)),
	}
	for _, v := range videos {
		stats.TotalViews += v.Views
		stats.TotalLikes += v.LikesCount
	}
	if stats.TotalViews > 0 {
		stats.LikePercentage = float64(stats.TotalLikes) / float64(stats.TotalViews) * 100
	}
	return stats, nil
}

// ChannelVideos returns all of a channel's videos with their rollups, drafts
// included, for the owner's dashboard.
func (s *DashboardService) ChannelVideos(ctx context.Context, channelID uint) ([]*models.Video, error) {
	videos, err := s.videoRepo.OwnerRollups(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if videos == nil {
		videos = []*models.Video{}
	}
	return videos, nil
}
