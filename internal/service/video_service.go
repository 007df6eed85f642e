package service

import (
	"context"
	"errors"

	"clipstream/internal/middleware"
	"clipstream/internal/models"
	"clipstream/internal/repository"

	"gorm.io/gorm"
)

// VideoService owns the video lifecycle: upload, publish state, the
// viewer-scoped detail read, and the once-per-viewer view counter.
type VideoService struct {
	videoRepo   repository.VideoRepository
	userRepo    repository.UserRepository
	historyRepo repository.WatchHistoryRepository
	cascader    *Cascader
}

type CreateVideoInput struct {
	OwnerID      uint
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Duration     float64
	IsPublished  bool
}

type UpdateVideoInput struct {
	UserID       uint
	VideoID      uint
	Title        string
	Description  string
	ThumbnailURL string
}

type ListVideosInput struct {
	Query    string
	OwnerID  uint
	SortBy   string
	SortAsc  bool
	Page     int
	Limit    int
	ViewerID uint
}

func NewVideoService(
	videoRepo repository.VideoRepository,
	userRepo repository.UserRepository,
	historyRepo repository.WatchHistoryRepository,
	cascader *Cascader,
) *VideoService {
	return &VideoService{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		cascader:    cascader,
	}
}

func (s *VideoService) CreateVideo(ctx context.Context, in CreateVideoInput) (*models.Video, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.VideoURL == "" {
		return nil, models.NewValidationError("Video URL is required")
	}

	video := &models.Video{
		Title:        in.Title,
		Description:  in.Description,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		Duration:     in.Duration,
		IsPublished:  in.IsPublished,
		OwnerID:      in.OwnerID,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.GetVideo(ctx, video.ID, in.OwnerID)
}

// GetVideo loads the viewer-scoped detail projection and attaches the owner's
// channel summary. A missing owner degrades to a nil summary rather than
// failing the read.
func (s *VideoService) GetVideo(ctx context.Context, id uint, viewerID uint) (*models.Video, error) {
	video, err := s.videoRepo.GetDetail(ctx, id, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("video", id)
		}
		return nil, models.NewInternalError(err)
	}

	owner, err := s.userRepo.ChannelSummary(ctx, video.OwnerID, viewerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	video.Owner = owner
	return video, nil
}

// ListVideos returns the published feed. Unpublished videos are only visible
// through the owner's own listing.
func (s *VideoService) ListVideos(ctx context.Context, in ListVideosInput) (*models.Page, error) {
	publishedOnly := in.OwnerID == 0 || in.OwnerID != in.ViewerID

	videos, total, err := s.videoRepo.List(ctx, repository.VideoListOptions{
		Query:         in.Query,
		OwnerID:       in.OwnerID,
		SortBy:        in.SortBy,
		SortAsc:       in.SortAsc,
		Page:          in.Page,
		Limit:         in.Limit,
		PublishedOnly: publishedOnly,
		ViewerID:      in.ViewerID,
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if videos == nil {
		videos = []*models.Video{}
	}
	return models.NewPage(videos, pageOrDefault(in.Page), limitOrDefault(in.Limit), total), nil
}

func (s *VideoService) UpdateVideo(ctx context.Context, in UpdateVideoInput) (*models.Video, error) {
	video, err := s.ownedVideo(ctx, in.VideoID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		video.Title = in.Title
	}
	if in.Description != "" {
		video.Description = in.Description
	}
	if in.ThumbnailURL != "" {
		video.ThumbnailURL = in.ThumbnailURL
	}
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.GetVideo(ctx, video.ID, in.UserID)
}

// TogglePublish flips the video between draft and published.
func (s *VideoService) TogglePublish(ctx context.Context, userID, videoID uint) (*models.Video, error) {
	video, err := s.ownedVideo(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.GetVideo(ctx, video.ID, userID)
}

// DeleteVideo removes the video and fans the delete out to everything that
// referenced it. The fan-out runs after the primary delete and cannot fail
// the request.
func (s *VideoService) DeleteVideo(ctx context.Context, userID, videoID uint) error {
	if _, err := s.ownedVideo(ctx, videoID, userID); err != nil {
		return err
	}
	if err := s.videoRepo.Delete(ctx, videoID); err != nil {
		return models.NewInternalError(err)
	}
	s.cascader.VideoDeleted(ctx, videoID)
	return nil
}

// RecordView marks the video watched by the viewer and bumps the view count
// only when this (viewer, video) pair has never been seen before. The
// watch-history insert decides: a row actually added means first watch. The
// owner watching their own video never counts.
func (s *VideoService) RecordView(ctx context.Context, viewerID, videoID uint) error {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("video", videoID)
		}
		return models.NewInternalError(err)
	}
	if video.OwnerID == viewerID {
		return nil
	}

	added, err := s.historyRepo.Add(ctx, viewerID, videoID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !added {
		return nil
	}

	if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return models.NewInternalError(err)
	}
	middleware.ViewIncrements.Inc()
	return nil
}

func (s *VideoService) ownedVideo(ctx context.Context, videoID, userID uint) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("video", videoID)
		}
		return nil, models.NewInternalError(err)
	}
	if video.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only modify your own videos")
	}
	return video, nil
}

func pageOrDefault(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}
