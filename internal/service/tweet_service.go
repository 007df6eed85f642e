package service

import (
	"context"

	"clipstream/internal/models"
	"clipstream/internal/repository"
)

const maxTweetLen = 500

// TweetService owns the short text posts on a channel.
type TweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	cascader  *Cascader
}

type CreateTweetInput struct {
	UserID  uint
	Content string
}

type UpdateTweetInput struct {
	UserID  uint
	TweetID uint
	Content string
}

func NewTweetService(
	tweetRepo repository.TweetRepository,
	userRepo repository.UserRepository,
	cascader *Cascader,
) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		cascader:  cascader,
	}
}

func (s *TweetService) CreateTweet(ctx context.Context, in CreateTweetInput) (*models.Tweet, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Tweet content is required")
	}
	if len(in.Content) > maxTweetLen {
		return nil, models.NewValidationError("Tweet too long (max 500 characters)")
	}

	tweet := &models.Tweet{
		Content: in.Content,
		OwnerID: in.UserID,
	}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.tweetRepo.GetByID(ctx, tweet.ID, in.UserID)
}

// ListChannelTweets returns a channel's tweets, newest first, with the
// viewer's like flag attached.
func (s *TweetService) ListChannelTweets(ctx context.Context, channelID, viewerID uint, page, limit int) (*models.Page, error) {
	exists, err := s.userRepo.Exists(ctx, channelID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("channel", channelID)
	}

	tweets, total, err := s.tweetRepo.ListByOwner(ctx, channelID, viewerID, page, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if tweets == nil {
		tweets = []*models.Tweet{}
	}
	return models.NewPage(tweets, pageOrDefault(page), limitOrDefault(limit), total), nil
}

func (s *TweetService) UpdateTweet(ctx context.Context, in UpdateTweetInput) (*models.Tweet, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Tweet content is required")
	}

	tweet, err := s.ownedTweet(ctx, in.TweetID, in.UserID)
	if err != nil {
		return nil, err
	}

	tweet.Content = in.Content
	if err := s.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.tweetRepo.GetByID(ctx, tweet.ID, in.UserID)
}

// DeleteTweet removes the tweet and then clears the reactions that pointed
// at it.
func (s *TweetService) DeleteTweet(ctx context.Context, userID, tweetID uint) error {
	if _, err := s.ownedTweet(ctx, tweetID, userID); err != nil {
		return err
	}
	if err := s.tweetRepo.Delete(ctx, tweetID); err != nil {
		return models.NewInternalError(err)
	}
	s.cascader.TweetDeleted(ctx, tweetID)
	return nil
}

func (s *TweetService) ownedTweet(ctx context.Context, tweetID, userID uint) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if tweet == nil {
		return nil, models.NewNotFoundError("tweet", tweetID)
	}
	if tweet.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only modify your own tweets")
	}
	return tweet, nil
}
