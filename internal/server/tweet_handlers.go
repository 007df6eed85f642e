// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"clipstream/internal/models"
	"clipstream/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateTweet handles POST /api/tweets
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweetService.CreateTweet(c.Context(), service.CreateTweetInput{
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		return respondService(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tweet)
}

// GetChannelTweets handles GET /api/users/:id/tweets
func (s *Server) GetChannelTweets(c *fiber.Ctx) error {
	channelID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePage(c, 20)

	tweets, err := s.tweetService.ListChannelTweets(c.Context(), channelID, viewerID(c), page.Page, page.Limit)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(tweets)
}

// UpdateTweet handles PUT /api/tweets/:id
func (s *Server) UpdateTweet(c *fiber.Ctx) error {
	userID := currentUserID(c)
	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tweet, err := s.tweetService.UpdateTweet(c.Context(), service.UpdateTweetInput{
		UserID:  userID,
		TweetID: tweetID,
		Content: req.Content,
	})
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(tweet)
}

// DeleteTweet handles DELETE /api/tweets/:id
func (s *Server) DeleteTweet(c *fiber.Ctx) error {
	userID := currentUserID(c)
	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tweetService.DeleteTweet(c.Context(), userID, tweetID); err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"message": "Tweet deleted"})
}
