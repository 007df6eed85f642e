package service

import (
	"context"

	"clipstream/internal/models"
	"clipstream/internal/repository"
)

// ReactionService implements the like/dislike toggle for videos, comments and
// tweets. Polarities are mutually exclusive per (user, target): toggling one
// direction always clears the other first, so no interleaving of requests can
// leave both set.
type ReactionService struct {
	reactionRepo repository.ReactionRepository
	videoRepo    repository.VideoRepository
	commentRepo  repository.CommentRepository
	tweetRepo    repository.TweetRepository
}

// ToggleInput identifies whose reaction flips, on what, and in which direction.
type ToggleInput struct {
	UserID   uint
	Target   models.Target
	Polarity models.Polarity
}

func NewReactionService(
	reactionRepo repository.ReactionRepository,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	tweetRepo repository.TweetRepository,
) *ReactionService {
	return &ReactionService{
		reactionRepo: reactionRepo,
		videoRepo:    videoRepo,
		commentRepo:  commentRepo,
		tweetRepo:    tweetRepo,
	}
}

// validateTarget rejects unknown kinds and targets that do not exist. A
// reaction must never point at a missing row.
func (s *ReactionService) validateTarget(ctx context.Context, target models.Target) error {
	if !target.Kind.Valid() {
		return models.NewValidationError("Invalid target kind")
	}
	if target.ID == 0 {
		return models.NewValidationError("Invalid target ID")
	}

	var (
		exists bool
		err    error
	)
	switch target.Kind {
	case models.TargetVideo:
		exists, err = s.videoRepo.Exists(ctx, target.ID)
	case models.TargetComment:
		exists, err = s.commentRepo.Exists(ctx, target.ID)
	case models.TargetTweet:
		exists, err = s.tweetRepo.Exists(ctx, target.ID)
	}
	if err != nil {
		return models.NewInternalError(err)
	}
	if !exists {
		return models.NewNotFoundError(string(target.Kind), target.ID)
	}
	return nil
}

// Toggle flips the user's reaction in the given direction. The opposite
// direction is cleared unconditionally before the flip, so the two can never
// coexist; duplicate concurrent toggles collapse on the unique index rather
// than erroring. The returned status carries exact counts recomputed from the
// reaction rows after the change.
func (s *ReactionService) Toggle(ctx context.Context, in ToggleInput) (*models.ReactionStatus, error) {
	if err := s.validateTarget(ctx, in.Target); err != nil {
		return nil, err
	}

	if _, err := s.reactionRepo.Remove(ctx, in.Polarity.Opposite(), in.UserID, in.Target); err != nil {
		return nil, models.NewInternalError(err)
	}

	removed, err := s.reactionRepo.Remove(ctx, in.Polarity, in.UserID, in.Target)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	active := false
	if !removed {
		// Nothing to take away: this toggle turns the reaction on. A
		// concurrent duplicate insert is absorbed by the unique index and
		// still leaves the reaction on.
		if _, err := s.reactionRepo.Insert(ctx, in.Polarity, in.UserID, in.Target); err != nil {
			return nil, models.NewInternalError(err)
		}
		active = true
	}

	likes, dislikes, err := s.reactionRepo.Counts(ctx, in.Target)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &models.ReactionStatus{
		IsLiked:      in.Polarity == models.PolarityLike && active,
		IsDisliked:   in.Polarity == models.PolarityDislike && active,
		LikeCount:    likes,
		DislikeCount: dislikes,
	}, nil
}

// Status reads the viewer's current reaction plus exact counts without
// changing anything. A zero userID yields both flags false.
func (s *ReactionService) Status(ctx context.Context, userID uint, target models.Target) (*models.ReactionStatus, error) {
	if err := s.validateTarget(ctx, target); err != nil {
		return nil, err
	}

	status := &models.ReactionStatus{}
	if userID != 0 {
		liked, err := s.reactionRepo.Exists(ctx, models.PolarityLike, userID, target)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		disliked, err := s.reactionRepo.Exists(ctx, models.PolarityDislike, userID, target)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		status.IsLiked = liked
		status.IsDisliked = disliked
	}

	likes, dislikes, err := s.reactionRepo.Counts(ctx, target)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	status.LikeCount = likes
	status.DislikeCount = dislikes
	return status, nil
}

// LikedVideos returns the videos the user currently likes, newest first, as a
// viewer-scoped page.
func (s *ReactionService) LikedVideos(ctx context.Context, userID uint, page, limit int) (*models.Page, error) {
	return s.reactedVideos(ctx, models.PolarityLike, userID, page, limit)
}

// DislikedVideos returns the videos the user currently dislikes.
func (s *ReactionService) DislikedVideos(ctx context.Context, userID uint, page, limit int) (*models.Page, error) {
	return s.reactedVideos(ctx, models.PolarityDislike, userID, page, limit)
}

func (s *ReactionService) reactedVideos(ctx context.Context, p models.Polarity, userID uint, page, limit int) (*models.Page, error) {
	ids, err := s.reactionRepo.TargetIDs(ctx, p, userID, models.TargetVideo)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	total := int64(len(ids))

	start := (page - 1) * limit
	if start > len(ids) {
		start = len(ids)
	}
	end := start + limit
	if end > len(ids) {
		end = len(ids)
	}

	videos, err := s.videoRepo.ListByIDs(ctx, ids[start:end], userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if videos == nil {
		videos = []*models.Video{}
	}
	return models.NewPage(videos, page, limit, total), nil
}
