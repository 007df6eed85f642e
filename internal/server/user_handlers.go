// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"clipstream/internal/models"
	"clipstream/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.GetProfile(c.Context(), userID, userID)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), userID, viewerID(c))
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(user)
}

// GetChannelByName handles GET /api/channels/:name
// Resolves a channel profile by username or display name, annotated with the
// viewer's subscription state.
func (s *Server) GetChannelByName(c *fiber.Ctx) error {
	name := c.Params("name")

	channel, err := s.userService.ChannelProfile(c.Context(), name, viewerID(c))
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(channel)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		FullName      string `json:"full_name"`
		Description   string `json:"description"`
		AvatarURL     string `json:"avatar_url"`
		CoverImageURL string `json:"cover_image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:        userID,
		FullName:      req.FullName,
		Description:   req.Description,
		AvatarURL:     req.AvatarURL,
		CoverImageURL: req.CoverImageURL,
	})
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(user)
}

// ChangePassword handles PUT /api/users/me/password
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.ChangePassword(c.Context(), service.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password updated"})
}
