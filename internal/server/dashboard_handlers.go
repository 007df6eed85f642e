// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetChannelStats handles GET /api/dashboard/stats
func (s *Server) GetChannelStats(c *fiber.Ctx) error {
	userID := currentUserID(c)

	stats, err := s.dashboardService.ChannelStats(c.Context(), userID)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(stats)
}

// GetChannelVideos handles GET /api/dashboard/videos
// Returns all of the channel's videos, drafts included, since the caller is
// the owner.
func (s *Server) GetChannelVideos(c *fiber.Ctx) error {
	userID := currentUserID(c)

	videos, err := s.dashboardService.ChannelVideos(c.Context(), userID)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"videos": videos})
}
