package service

import (
	"context"

	"clipstream/internal/models"
	"clipstream/internal/repository"
)

// reactionRepoStub is a stub for repository.ReactionRepository.
type reactionRepoStub struct {
	insertFn          func(context.Context, models.Polarity, uint, models.Target) (bool, error)
	removeFn          func(context.Context, models.Polarity, uint, models.Target) (bool, error)
	existsFn          func(context.Context, models.Polarity, uint, models.Target) (bool, error)
	countsFn          func(context.Context, models.Target) (int64, int64, error)
	deleteByTargetFn  func(context.Context, models.Target) error
	deleteByTargetsFn func(context.Context, models.TargetKind, []uint) error
	targetIDsFn       func(context.Context, models.Polarity, uint, models.TargetKind) ([]uint, error)
}

func (s *reactionRepoStub) Insert(ctx context.Context, p models.Polarity, userID uint, target models.Target) (bool, error) {
	return s.insertFn(ctx, p, userID, target)
}
func (s *reactionRepoStub) Remove(ctx context.Context, p models.Polarity, userID uint, target models.Target) (bool, error) {
	return s.removeFn(ctx, p, userID, target)
}
func (s *reactionRepoStub) Exists(ctx context.Context, p models.Polarity, userID uint, target models.Target) (bool, error) {
	return s.existsFn(ctx, p, userID, target)
}
func (s *reactionRepoStub) Counts(ctx context.Context, target models.Target) (int64, int64, error) {
	return s.countsFn(ctx, target)
}
func (s *reactionRepoStub) DeleteByTarget(ctx context.Context, target models.Target) error {
	return s.deleteByTargetFn(ctx, target)
}
func (s *reactionRepoStub) DeleteByTargets(ctx context.Context, kind models.TargetKind, ids []uint) error {
	return s.deleteByTargetsFn(ctx, kind, ids)
}
func (s *reactionRepoStub) TargetIDs(ctx context.Context, p models.Polarity, userID uint, kind models.TargetKind) ([]uint, error) {
	return s.targetIDsFn(ctx, p, userID, kind)
}

func noopReactionRepo() *reactionRepoStub {
	return &reactionRepoStub{
		insertFn: func(_ context.Context, _ models.Polarity, _ uint, _ models.Target) (bool, error) {
			return true, nil
		},
		removeFn: func(_ context.Context, _ models.Polarity, _ uint, _ models.Target) (bool, error) {
			return false, nil
		},
		existsFn: func(_ context.Context, _ models.Polarity, _ uint, _ models.Target) (bool, error) {
			return false, nil
		},
		countsFn:          func(_ context.Context, _ models.Target) (int64, int64, error) { return 0, 0, nil },
		deleteByTargetFn:  func(_ context.Context, _ models.Target) error { return nil },
		deleteByTargetsFn: func(_ context.Context, _ models.TargetKind, _ []uint) error { return nil },
		targetIDsFn: func(_ context.Context, _ models.Polarity, _ uint, _ models.TargetKind) ([]uint, error) {
			return nil, nil
		},
	}
}

// videoRepoStub is a stub for repository.VideoRepository.
type videoRepoStub struct {
	createFn          func(context.Context, *models.Video) error
	getByIDFn         func(context.Context, uint) (*models.Video, error)
	getDetailFn       func(context.Context, uint, uint) (*models.Video, error)
	listFn            func(context.Context, repository.VideoListOptions) ([]*models.Video, int64, error)
	listByIDsFn       func(context.Context, []uint, uint) ([]*models.Video, error)
	updateFn          func(context.Context, *models.Video) error
	deleteFn          func(context.Context, uint) error
	existsFn          func(context.Context, uint) (bool, error)
	incrementViewsFn  func(context.Context, uint) error
	ownerRollupsFn    func(context.Context, uint) ([]*models.Video, error)
	latestPublishedFn func(context.Context, uint) (*models.Video, error)
}

func (s *videoRepoStub) Create(ctx context.Context, video *models.Video) error {
	return s.createFn(ctx, video)
}
func (s *videoRepoStub) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	return s.getByIDFn(ctx, id)
}
func (s *videoRepoStub) GetDetail(ctx context.Context, id uint, viewerID uint) (*models.Video, error) {
	return s.getDetailFn(ctx, id, viewerID)
}
func (s *videoRepoStub) List(ctx context.Context, opts repository.VideoListOptions) ([]*models.Video, int64, error) {
	return s.listFn(ctx, opts)
}
func (s *videoRepoStub) ListByIDs(ctx context.Context, ids []uint, viewerID uint) ([]*models.Video, error) {
	return s.listByIDsFn(ctx, ids, viewerID)
}
func (s *videoRepoStub) Update(ctx context.Context, video *models.Video) error {
	return s.updateFn(ctx, video)
}
func (s *videoRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *videoRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *videoRepoStub) IncrementViews(ctx context.Context, id uint) error {
	return s.incrementViewsFn(ctx, id)
}
func (s *videoRepoStub) OwnerRollups(ctx context.Context, ownerID uint) ([]*models.Video, error) {
	return s.ownerRollupsFn(ctx, ownerID)
}
func (s *videoRepoStub) LatestPublished(ctx context.Context, ownerID uint) (*models.Video, error) {
	return s.latestPublishedFn(ctx, ownerID)
}

func noopVideoRepo() *videoRepoStub {
	return &videoRepoStub{
		createFn:    func(_ context.Context, _ *models.Video) error { return nil },
		getByIDFn:   func(_ context.Context, _ uint) (*models.Video, error) { return &models.Video{}, nil },
		getDetailFn: func(_ context.Context, _, _ uint) (*models.Video, error) { return &models.Video{}, nil },
		listFn: func(_ context.Context, _ repository.VideoListOptions) ([]*models.Video, int64, error) {
			return nil, 0, nil
		},
		listByIDsFn:       func(_ context.Context, _ []uint, _ uint) ([]*models.Video, error) { return nil, nil },
		updateFn:          func(_ context.Context, _ *models.Video) error { return nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
		existsFn:          func(_ context.Context, _ uint) (bool, error) { return true, nil },
		incrementViewsFn:  func(_ context.Context, _ uint) error { return nil },
		ownerRollupsFn:    func(_ context.Context, _ uint) ([]*models.Video, error) { return nil, nil },
		latestPublishedFn: func(_ context.Context, _ uint) (*models.Video, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listByVideoFn   func(context.Context, uint, uint, int, int) ([]*models.Comment, int64, error)
	updateFn        func(context.Context, *models.Comment) error
	deleteFn        func(context.Context, uint) error
	existsFn        func(context.Context, uint) (bool, error)
	idsByVideoFn    func(context.Context, uint) ([]uint, error)
	deleteByVideoFn func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByVideo(ctx context.Context, videoID uint, viewerID uint, page, limit int) ([]*models.Comment, int64, error) {
	return s.listByVideoFn(ctx, videoID, viewerID, page, limit)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *commentRepoStub) IDsByVideo(ctx context.Context, videoID uint) ([]uint, error) {
	return s.idsByVideoFn(ctx, videoID)
}
func (s *commentRepoStub) DeleteByVideo(ctx context.Context, videoID uint) error {
	return s.deleteByVideoFn(ctx, videoID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByVideoFn: func(_ context.Context, _ uint, _ uint, _, _ int) ([]*models.Comment, int64, error) {
			return nil, 0, nil
		},
		updateFn:        func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		existsFn:        func(_ context.Context, _ uint) (bool, error) { return true, nil },
		idsByVideoFn:    func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		deleteByVideoFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// tweetRepoStub is a stub for repository.TweetRepository.
type tweetRepoStub struct {
	createFn      func(context.Context, *models.Tweet) error
	getByIDFn     func(context.Context, uint, uint) (*models.Tweet, error)
	listByOwnerFn func(context.Context, uint, uint, int, int) ([]*models.Tweet, int64, error)
	updateFn      func(context.Context, *models.Tweet) error
	deleteFn      func(context.Context, uint) error
	existsFn      func(context.Context, uint) (bool, error)
}

func (s *tweetRepoStub) Create(ctx context.Context, tweet *models.Tweet) error {
	return s.createFn(ctx, tweet)
}
func (s *tweetRepoStub) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Tweet, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *tweetRepoStub) ListByOwner(ctx context.Context, ownerID uint, viewerID uint, page, limit int) ([]*models.Tweet, int64, error) {
	return s.listByOwnerFn(ctx, ownerID, viewerID, page, limit)
}
func (s *tweetRepoStub) Update(ctx context.Context, tweet *models.Tweet) error {
	return s.updateFn(ctx, tweet)
}
func (s *tweetRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *tweetRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopTweetRepo() *tweetRepoStub {
	return &tweetRepoStub{
		createFn:  func(_ context.Context, _ *models.Tweet) error { return nil },
		getByIDFn: func(_ context.Context, _, _ uint) (*models.Tweet, error) { return &models.Tweet{}, nil },
		listByOwnerFn: func(_ context.Context, _ uint, _ uint, _, _ int) ([]*models.Tweet, int64, error) {
			return nil, 0, nil
		},
		updateFn: func(_ context.Context, _ *models.Tweet) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		existsFn: func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn         func(context.Context, *models.User) error
	getByIDFn        func(context.Context, uint) (*models.User, error)
	getByUsernameFn  func(context.Context, string) (*models.User, error)
	getByEmailFn     func(context.Context, string) (*models.User, error)
	updateFn         func(context.Context, *models.User) error
	existsFn         func(context.Context, uint) (bool, error)
	channelSummaryFn func(context.Context, uint, uint) (*models.ChannelSummary, error)
	channelByNameFn  func(context.Context, string, uint) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) ChannelSummary(ctx context.Context, channelID, viewerID uint) (*models.ChannelSummary, error) {
	return s.channelSummaryFn(ctx, channelID, viewerID)
}
func (s *userRepoStub) ChannelByName(ctx context.Context, name string, viewerID uint) (*models.User, error) {
	return s.channelByNameFn(ctx, name, viewerID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		existsFn:        func(_ context.Context, _ uint) (bool, error) { return true, nil },
		channelSummaryFn: func(_ context.Context, _, _ uint) (*models.ChannelSummary, error) {
			return &models.ChannelSummary{}, nil
		},
		channelByNameFn: func(_ context.Context, _ string, _ uint) (*models.User, error) {
			return &models.User{}, nil
		},
	}
}

// subscriptionRepoStub is a stub for repository.SubscriptionRepository.
type subscriptionRepoStub struct {
	insertFn          func(context.Context, uint, uint) (bool, error)
	removeFn          func(context.Context, uint, uint) (bool, error)
	existsFn          func(context.Context, uint, uint) (bool, error)
	countForChannelFn func(context.Context, uint) (int64, error)
	subscribersFn     func(context.Context, uint, int, int) ([]*models.SubscriberInfo, int64, error)
	channelIDsFn      func(context.Context, uint) ([]uint, error)
}

func (s *subscriptionRepoStub) Insert(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	return s.insertFn(ctx, subscriberID, channelID)
}
func (s *subscriptionRepoStub) Remove(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	return s.removeFn(ctx, subscriberID, channelID)
}
func (s *subscriptionRepoStub) Exists(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	return s.existsFn(ctx, subscriberID, channelID)
}
func (s *subscriptionRepoStub) CountForChannel(ctx context.Context, channelID uint) (int64, error) {
	return s.countForChannelFn(ctx, channelID)
}
func (s *subscriptionRepoStub) Subscribers(ctx context.Context, channelID uint, page, limit int) ([]*models.SubscriberInfo, int64, error) {
	return s.subscribersFn(ctx, channelID, page, limit)
}
func (s *subscriptionRepoStub) ChannelIDs(ctx context.Context, subscriberID uint) ([]uint, error) {
	return s.channelIDsFn(ctx, subscriberID)
}

func noopSubscriptionRepo() *subscriptionRepoStub {
	return &subscriptionRepoStub{
		insertFn:          func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		removeFn:          func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		existsFn:          func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countForChannelFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		subscribersFn: func(_ context.Context, _ uint, _, _ int) ([]*models.SubscriberInfo, int64, error) {
			return nil, 0, nil
		},
		channelIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// playlistRepoStub is a stub for repository.PlaylistRepository.
type playlistRepoStub struct {
	createFn             func(context.Context, *models.Playlist) error
	getByIDFn            func(context.Context, uint) (*models.Playlist, error)
	listByOwnerFn        func(context.Context, uint, int, int) ([]*models.Playlist, int64, error)
	updateFn             func(context.Context, *models.Playlist) error
	deleteFn             func(context.Context, uint) error
	addVideoFn           func(context.Context, uint, uint) (bool, error)
	removeVideoFn        func(context.Context, uint, uint) (bool, error)
	videoIDsFn           func(context.Context, uint) ([]uint, error)
	rollupsFn            func(context.Context, uint) (int64, int64, error)
	removeVideoFromAllFn func(context.Context, uint) error
}

func (s *playlistRepoStub) Create(ctx context.Context, playlist *models.Playlist) error {
	return s.createFn(ctx, playlist)
}
func (s *playlistRepoStub) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	return s.getByIDFn(ctx, id)
}
func (s *playlistRepoStub) ListByOwner(ctx context.Context, ownerID uint, page, limit int) ([]*models.Playlist, int64, error) {
	return s.listByOwnerFn(ctx, ownerID, page, limit)
}
func (s *playlistRepoStub) Update(ctx context.Context, playlist *models.Playlist) error {
	return s.updateFn(ctx, playlist)
}
func (s *playlistRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *playlistRepoStub) AddVideo(ctx context.Context, playlistID, videoID uint) (bool, error) {
	return s.addVideoFn(ctx, playlistID, videoID)
}
func (s *playlistRepoStub) RemoveVideo(ctx context.Context, playlistID, videoID uint) (bool, error) {
	return s.removeVideoFn(ctx, playlistID, videoID)
}
func (s *playlistRepoStub) VideoIDs(ctx context.Context, playlistID uint) ([]uint, error) {
	return s.videoIDsFn(ctx, playlistID)
}
func (s *playlistRepoStub) Rollups(ctx context.Context, playlistID uint) (int64, int64, error) {
	return s.rollupsFn(ctx, playlistID)
}
func (s *playlistRepoStub) RemoveVideoFromAll(ctx context.Context, videoID uint) error {
	return s.removeVideoFromAllFn(ctx, videoID)
}

func noopPlaylistRepo() *playlistRepoStub {
	return &playlistRepoStub{
		createFn:  func(_ context.Context, _ *models.Playlist) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Playlist, error) { return &models.Playlist{}, nil },
		listByOwnerFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Playlist, int64, error) {
			return nil, 0, nil
		},
		updateFn:             func(_ context.Context, _ *models.Playlist) error { return nil },
		deleteFn:             func(_ context.Context, _ uint) error { return nil },
		addVideoFn:           func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		removeVideoFn:        func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		videoIDsFn:           func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		rollupsFn:            func(_ context.Context, _ uint) (int64, int64, error) { return 0, 0, nil },
		removeVideoFromAllFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// watchHistoryRepoStub is a stub for repository.WatchHistoryRepository.
type watchHistoryRepoStub struct {
	addFn           func(context.Context, uint, uint) (bool, error)
	removeFn        func(context.Context, uint, uint) (bool, error)
	clearFn         func(context.Context, uint) error
	videoIDsFn      func(context.Context, uint, int, int) ([]uint, int64, error)
	deleteByVideoFn func(context.Context, uint) error
}

func (s *watchHistoryRepoStub) Add(ctx context.Context, userID, videoID uint) (bool, error) {
	return s.addFn(ctx, userID, videoID)
}
func (s *watchHistoryRepoStub) Remove(ctx context.Context, userID, videoID uint) (bool, error) {
	return s.removeFn(ctx, userID, videoID)
}
func (s *watchHistoryRepoStub) Clear(ctx context.Context, userID uint) error {
	return s.clearFn(ctx, userID)
}
func (s *watchHistoryRepoStub) VideoIDs(ctx context.Context, userID uint, page, limit int) ([]uint, int64, error) {
	return s.videoIDsFn(ctx, userID, page, limit)
}
func (s *watchHistoryRepoStub) DeleteByVideo(ctx context.Context, videoID uint) error {
	return s.deleteByVideoFn(ctx, videoID)
}

func noopWatchHistoryRepo() *watchHistoryRepoStub {
	return &watchHistoryRepoStub{
		addFn:           func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		removeFn:        func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		clearFn:         func(_ context.Context, _ uint) error { return nil },
		videoIDsFn:      func(_ context.Context, _ uint, _, _ int) ([]uint, int64, error) { return nil, 0, nil },
		deleteByVideoFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// watchLaterRepoStub is a stub for repository.WatchLaterRepository.
type watchLaterRepoStub struct {
	addFn           func(context.Context, uint, uint) (bool, error)
	removeFn        func(context.Context, uint, uint) (bool, error)
	containsFn      func(context.Context, uint, uint) (bool, error)
	videoIDsFn      func(context.Context, uint, int, int) ([]uint, int64, error)
	deleteByVideoFn func(context.Context, uint) error
}

func (s *watchLaterRepoStub) Add(ctx context.Context, userID, videoID uint) (bool, error) {
	return s.addFn(ctx, userID, videoID)
}
func (s *watchLaterRepoStub) Remove(ctx context.Context, userID, videoID uint) (bool, error) {
	return s.removeFn(ctx, userID, videoID)
}
func (s *watchLaterRepoStub) Contains(ctx context.Context, userID, videoID uint) (bool, error) {
	return s.containsFn(ctx, userID, videoID)
}
func (s *watchLaterRepoStub) VideoIDs(ctx context.Context, userID uint, page, limit int) ([]uint, int64, error) {
	return s.videoIDsFn(ctx, userID, page, limit)
}
func (s *watchLaterRepoStub) DeleteByVideo(ctx context.Context, videoID uint) error {
	return s.deleteByVideoFn(ctx, videoID)
}

func noopWatchLaterRepo() *watchLaterRepoStub {
	return &watchLaterRepoStub{
		addFn:           func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		removeFn:        func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		containsFn:      func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		videoIDsFn:      func(_ context.Context, _ uint, _, _ int) ([]uint, int64, error) { return nil, 0, nil },
		deleteByVideoFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// Interface conformance checks for the stubs.
var (
	_ repository.ReactionRepository     = (*reactionRepoStub)(nil)
	_ repository.VideoRepository        = (*videoRepoStub)(nil)
	_ repository.CommentRepository      = (*commentRepoStub)(nil)
	_ repository.TweetRepository        = (*tweetRepoStub)(nil)
	_ repository.UserRepository         = (*userRepoStub)(nil)
	_ repository.SubscriptionRepository = (*subscriptionRepoStub)(nil)
	_ repository.PlaylistRepository     = (*playlistRepoStub)(nil)
	_ repository.WatchHistoryRepository = (*watchHistoryRepoStub)(nil)
	_ repository.WatchLaterRepository   = (*watchLaterRepoStub)(nil)
)
