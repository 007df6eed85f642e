// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"clipstream/internal/models"
	"clipstream/internal/service"

	"github.com/gofiber/fiber/v2"
)

// toggleReaction flips the caller's reaction on a target and returns the
// resulting state with fresh counts.
func (s *Server) toggleReaction(c *fiber.Ctx, kind models.TargetKind, polarity models.Polarity) error {
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, err := s.reactionService.Toggle(c.Context(), service.ToggleInput{
		UserID:   userID,
		Target:   models.Target{Kind: kind, ID: targetID},
		Polarity: polarity,
	})
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(status)
}

// reactionStatus reads the viewer's reaction state and counts for a target.
func (s *Server) reactionStatus(c *fiber.Ctx, kind models.TargetKind) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, err := s.reactionService.Status(c.Context(), viewerID(c),
		models.Target{Kind: kind, ID: targetID})
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(status)
}

// ToggleVideoLike handles POST /api/videos/:id/like
func (s *Server) ToggleVideoLike(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.TargetVideo, models.PolarityLike)
}

// ToggleVideoDislike handles POST /api/videos/:id/dislike
func (s *Server) ToggleVideoDislike(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.TargetVideo, models.PolarityDislike)
}

// ToggleCommentLike handles POST /api/comments/:id/like
func (s *Server) ToggleCommentLike(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.TargetComment, models.PolarityLike)
}

// ToggleCommentDislike handles POST /api/comments/:id/dislike
func (s *Server) ToggleCommentDislike(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.TargetComment, models.PolarityDislike)
}

// ToggleTweetLike handles POST /api/tweets/:id/like
func (s *Server) ToggleTweetLike(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.TargetTweet, models.PolarityLike)
}

// ToggleTweetDislike handles POST /api/tweets/:id/dislike
func (s *Server) ToggleTweetDislike(c *fiber.Ctx) error {
	return s.toggleReaction(c, models.TargetTweet, models.PolarityDislike)
}

// GetVideoReactions handles GET /api/videos/:id/reactions
func (s *Server) GetVideoReactions(c *fiber.Ctx) error {
	return s.reactionStatus(c, models.TargetVideo)
}

// GetCommentReactions handles GET /api/comments/:id/reactions
func (s *Server) GetCommentReactions(c *fiber.Ctx) error {
	return s.reactionStatus(c, models.TargetComment)
}

// GetTweetReactions handles GET /api/tweets/:id/reactions
func (s *Server) GetTweetReactions(c *fiber.Ctx) error {
	return s.reactionStatus(c, models.TargetTweet)
}

// GetLikedVideos handles GET /api/likes/videos
func (s *Server) GetLikedVideos(c *fiber.Ctx) error {
	userID := currentUserID(c)
	page := parsePage(c, 12)

	videos, err := s.reactionService.LikedVideos(c.Context(), userID, page.Page, page.Limit)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(videos)
}

// GetDislikedVideos handles GET /api/dislikes/videos
func (s *Server) GetDislikedVideos(c *fiber.Ctx) error {
	userID := currentUserID(c)
	page := parsePage(c, 12)

	videos, err := s.reactionService.DislikedVideos(c.Context(), userID, page.Page, page.Limit)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(videos)
}
