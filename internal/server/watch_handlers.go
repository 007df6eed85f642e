// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetWatchHistory handles GET /api/history
func (s *Server) GetWatchHistory(c *fiber.Ctx) error {
	userID := currentUserID(c)
	page := parsePage(c, 20)

	history, err := s.watchService.History(c.Context(), userID, page.Page, page.Limit)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(history)
}

// RemoveFromHistory handles DELETE /api/history/:videoId
func (s *Server) RemoveFromHistory(c *fiber.Ctx) error {
	userID := currentUserID(c)
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	if err := s.watchService.RemoveFromHistory(c.Context(), userID, videoID); err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"message": "Removed from history"})
}

// ClearWatchHistory handles DELETE /api/history
func (s *Server) ClearWatchHistory(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.watchService.ClearHistory(c.Context(), userID); err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"message": "History cleared"})
}

// GetWatchLater handles GET /api/watch-later
func (s *Server) GetWatchLater(c *fiber.Ctx) error {
	userID := currentUserID(c)
	page := parsePage(c, 20)

	videos, err := s.watchService.WatchLater(c.Context(), userID, page.Page, page.Limit)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(videos)
}

// SaveToWatchLater handles POST /api/watch-later/:videoId
func (s *Server) SaveToWatchLater(c *fiber.Ctx) error {
	userID := currentUserID(c)
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	if err := s.watchService.SaveForLater(c.Context(), userID, videoID); err != nil {
		return respondService(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Saved for later"})
}

// RemoveFromWatchLater handles DELETE /api/watch-later/:videoId
func (s *Server) RemoveFromWatchLater(c *fiber.Ctx) error {
	userID := currentUserID(c)
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	if err := s.watchService.RemoveFromWatchLater(c.Context(), userID, videoID); err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"message": "Removed from watch later"})
}
