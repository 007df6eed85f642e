// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"clipstream/internal/models"
	"clipstream/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateVideo handles POST /api/videos
func (s *Server) CreateVideo(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		VideoURL     string  `json:"video_url"`
		ThumbnailURL string  `json:"thumbnail_url"`
		Duration     float64 `json:"duration"`
		IsPublished  *bool   `json:"is_published"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// New uploads default to published unless the request says otherwise.
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	video, err := s.videoService.CreateVideo(c.Context(), service.CreateVideoInput{
		OwnerID:      userID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		IsPublished:  published,
	})
	if err != nil {
		return respondService(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(video)
}

// GetVideos handles GET /api/videos
func (s *Server) GetVideos(c *fiber.Ctx) error {
	page := parsePage(c, 12)

	in := service.ListVideosInput{
		Query:    c.Query("query"),
		OwnerID:  uint(c.QueryInt("userId", 0)),
		SortBy:   c.Query("sortBy"),
		SortAsc:  c.Query("sortType") == "asc",
		Page:     page.Page,
		Limit:    page.Limit,
		ViewerID: viewerID(c),
	}

	videos, err := s.videoService.ListVideos(c.Context(), in)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(videos)
}

// GetVideo handles GET /api/videos/:id
// Opening a video while authenticated records a watch-history entry; the
// view counter only moves the first time a given viewer opens it.
func (s *Server) GetVideo(c *fiber.Ctx) error {
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewer := viewerID(c)

	if viewer != 0 {
		if err := s.videoService.RecordView(c.Context(), viewer, videoID); err != nil {
			return respondService(c, err)
		}
	}

	video, err := s.videoService.GetVideo(c.Context(), videoID, viewer)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(video)
}

// UpdateVideo handles PUT /api/videos/:id
func (s *Server) UpdateVideo(c *fiber.Ctx) error {
	userID := currentUserID(c)
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ThumbnailURL string `json:"thumbnail_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	video, err := s.videoService.UpdateVideo(c.Context(), service.UpdateVideoInput{
		UserID:       userID,
		VideoID:      videoID,
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(video)
}

// TogglePublish handles PATCH /api/videos/:id/publish
func (s *Server) TogglePublish(c *fiber.Ctx) error {
	userID := currentUserID(c)
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	video, err := s.videoService.TogglePublish(c.Context(), userID, videoID)
	if err != nil {
		return respondService(c, err)
	}

	return c.JSON(video)
}

// DeleteVideo handles DELETE /api/videos/:id
func (s *Server) DeleteVideo(c *fiber.Ctx) error {
	userID := currentUserID(c)
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.videoService.DeleteVideo(c.Context(), userID, videoID); err != nil {
		return respondService(c, err)
	}

	return c.JSON(fiber.Map{"message": "Video deleted"})
}
