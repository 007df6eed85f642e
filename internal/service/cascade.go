package service

import (
	"context"
	"log/slog"

	"clipstream/internal/middleware"
	"clipstream/internal/models"
	"clipstream/internal/repository"

	"github.com/google/uuid"
)

// Cascader fans a primary delete out to the collections that reference the
// deleted row. There is no cross-table transaction around the fan-out: each
// step is attempted regardless of earlier failures, and a failed step is
// logged and counted but never surfaced to the caller, because the primary
// delete has already happened. Orphans that survive a failed step are
// invisible to list reads (which join through the primary table) and are
// swept up the next time the cascade runs.
type Cascader struct {
	reactionRepo repository.ReactionRepository
	commentRepo  repository.CommentRepository
	historyRepo  repository.WatchHistoryRepository
	laterRepo    repository.WatchLaterRepository
	playlistRepo repository.PlaylistRepository
}

func NewCascader(
	reactionRepo repository.ReactionRepository,
	commentRepo repository.CommentRepository,
	historyRepo repository.WatchHistoryRepository,
	laterRepo repository.WatchLaterRepository,
	playlistRepo repository.PlaylistRepository,
) *Cascader {
	return &Cascader{
		reactionRepo: reactionRepo,
		commentRepo:  commentRepo,
		historyRepo:  historyRepo,
		laterRepo:    laterRepo,
		playlistRepo: playlistRepo,
	}
}

// step runs one cleanup action, recording a failure without aborting the rest
// of the cascade.
func (c *Cascader) step(ctx context.Context, cascadeID, entity, name string, fn func() error) {
	if err := fn(); err != nil {
		middleware.Logger.ErrorContext(ctx, "cascade step failed",
			slog.String("cascade_id", cascadeID),
			slog.String("entity", entity),
			slog.String("step", name),
			slog.String("error", err.Error()),
		)
		middleware.CascadeFailures.WithLabelValues(entity, name).Inc()
	}
}

// VideoDeleted cleans up everything that referenced a deleted video: its
// reactions, its comments and their reactions, and its membership rows in
// watch history, watch later and playlists.
func (c *Cascader) VideoDeleted(ctx context.Context, videoID uint) {
	cascadeID := uuid.NewString()
	target := models.Target{Kind: models.TargetVideo, ID: videoID}

	// Collect comment ids before deleting the comments so their reactions
	// can still be found.
	commentIDs, err := c.commentRepo.IDsByVideo(ctx, videoID)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "cascade step failed",
			slog.String("cascade_id", cascadeID),
			slog.String("entity", "video"),
			slog.String("step", "collect_comment_ids"),
			slog.String("error", err.Error()),
		)
		middleware.CascadeFailures.WithLabelValues("video", "collect_comment_ids").Inc()
	}

	c.step(ctx, cascadeID, "video", "video_reactions", func() error {
		return c.reactionRepo.DeleteByTarget(ctx, target)
	})
	if len(commentIDs) > 0 {
		c.step(ctx, cascadeID, "video", "comment_reactions", func() error {
			return c.reactionRepo.DeleteByTargets(ctx, models.TargetComment, commentIDs)
		})
	}
	c.step(ctx, cascadeID, "video", "comments", func() error {
		return c.commentRepo.DeleteByVideo(ctx, videoID)
	})
	c.step(ctx, cascadeID, "video", "watch_history", func() error {
		return c.historyRepo.DeleteByVideo(ctx, videoID)
	})
	c.step(ctx, cascadeID, "video", "watch_later", func() error {
		return c.laterRepo.DeleteByVideo(ctx, videoID)
	})
	c.step(ctx, cascadeID, "video", "playlist_memberships", func() error {
		return c.playlistRepo.RemoveVideoFromAll(ctx, videoID)
	})

	middleware.Logger.InfoContext(ctx, "video cascade complete",
		slog.String("cascade_id", cascadeID),
		slog.Any("video_id", videoID),
	)
}

// CommentDeleted cleans up the reactions that referenced a deleted comment.
func (c *Cascader) CommentDeleted(ctx context.Context, commentID uint) {
	cascadeID := uuid.NewString()
	target := models.Target{Kind: models.TargetComment, ID: commentID}

	c.step(ctx, cascadeID, "comment", "comment_reactions", func() error {
		return c.reactionRepo.DeleteByTarget(ctx, target)
	})
}

// TweetDeleted cleans up the reactions that referenced a deleted tweet.
func (c *Cascader) TweetDeleted(ctx context.Context, tweetID uint) {
	cascadeID := uuid.NewString()
	target := models.Target{Kind: models.TargetTweet, ID: tweetID}

	c.step(ctx, cascadeID, "tweet", "tweet_reactions", func() error {
		return c.reactionRepo.DeleteByTarget(ctx, target)
	})
}
