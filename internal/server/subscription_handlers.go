// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleSubscription handles POST /api/subscriptions/:channelId
func (s *Server) ToggleSubscription(c *fiber.Ctx) error {
	userID := currentUserID(c)
	channelID, err := s.parseID(c, "channelId")
	if err != nil {
		return nil
	}

	state, err := s.subscriptionService.Toggle(c.Context(), userID, channelID)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(state)
}

// GetSubscriptionStatus handles GET /api/subscriptions/:channelId/status
func (s *Server) GetSubscriptionStatus(c *fiber.Ctx) error {
	userID := currentUserID(c)
	channelID, err := s.parseID(c, "channelId")
	if err != nil {
		return nil
	}

	state, err := s.subscriptionService.Status(c.Context(), userID, channelID)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(state)
}

// GetSubscribers handles GET /api/users/:id/subscribers
func (s *Server) GetSubscribers(c *fiber.Ctx) error {
	channelID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePage(c, 20)

	subscribers, err := s.subscriptionService.ListSubscribers(c.Context(), channelID, page.Page, page.Limit)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(subscribers)
}

// GetSubscribedChannels handles GET /api/subscriptions
func (s *Server) GetSubscribedChannels(c *fiber.Ctx) error {
	userID := currentUserID(c)

	channels, err := s.subscriptionService.ListSubscribedChannels(c.Context(), userID)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"channels": channels})
}
