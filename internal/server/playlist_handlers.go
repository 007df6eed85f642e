// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"clipstream/internal/models"
	"clipstream/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePlaylist handles POST /api/playlists
func (s *Server) CreatePlaylist(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlistService.CreatePlaylist(c.Context(), service.CreatePlaylistInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondService(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(playlist)
}

// GetPlaylist handles GET /api/playlists/:id
func (s *Server) GetPlaylist(c *fiber.Ctx) error {
	playlistID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	playlist, err := s.playlistService.GetPlaylist(c.Context(), playlistID, viewerID(c))
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(playlist)
}

// GetMyPlaylists handles GET /api/playlists
func (s *Server) GetMyPlaylists(c *fiber.Ctx) error {
	userID := currentUserID(c)
	page := parsePage(c, 20)

	playlists, err := s.playlistService.ListUserPlaylists(c.Context(), userID, page.Page, page.Limit)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(playlists)
}

// GetUserPlaylists handles GET /api/users/:id/playlists
func (s *Server) GetUserPlaylists(c *fiber.Ctx) error {
	ownerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePage(c, 20)

	playlists, err := s.playlistService.ListUserPlaylists(c.Context(), ownerID, page.Page, page.Limit)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(playlists)
}

// UpdatePlaylist handles PUT /api/playlists/:id
func (s *Server) UpdatePlaylist(c *fiber.Ctx) error {
	userID := currentUserID(c)
	playlistID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	playlist, err := s.playlistService.UpdatePlaylist(c.Context(), service.UpdatePlaylistInput{
		UserID:      userID,
		PlaylistID:  playlistID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(playlist)
}

// DeletePlaylist handles DELETE /api/playlists/:id
func (s *Server) DeletePlaylist(c *fiber.Ctx) error {
	userID := currentUserID(c)
	playlistID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.playlistService.DeletePlaylist(c.Context(), userID, playlistID); err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"message": "Playlist deleted"})
}

// AddPlaylistVideo handles POST /api/playlists/:id/videos/:videoId
func (s *Server) AddPlaylistVideo(c *fiber.Ctx) error {
	userID := currentUserID(c)
	playlistID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	if err := s.playlistService.AddVideo(c.Context(), userID, playlistID, videoID); err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"message": "Video added to playlist"})
}

// RemovePlaylistVideo handles DELETE /api/playlists/:id/videos/:videoId
func (s *Server) RemovePlaylistVideo(c *fiber.Ctx) error {
	userID := currentUserID(c)
	playlistID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	if err := s.playlistService.RemoveVideo(c.Context(), userID, playlistID, videoID); err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"message": "Video removed from playlist"})
}
