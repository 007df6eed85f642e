package service

import (
	"context"

	"clipstream/internal/models"
	"clipstream/internal/repository"
)

// PlaylistService owns playlist CRUD and video membership.
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	userRepo     repository.UserRepository
}

type CreatePlaylistInput struct {
	UserID      uint
	Name        string
	Description string
}

type UpdatePlaylistInput struct {
	UserID      uint
	PlaylistID  uint
	Name        string
	Description string
}

func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	videoRepo repository.VideoRepository,
	userRepo repository.UserRepository,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, in CreatePlaylistInput) (*models.Playlist, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Playlist name is required")
	}

	playlist := &models.Playlist{
		Name:        in.Name,
		Description: in.Description,
		OwnerID:     in.UserID,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, models.NewInternalError(err)
	}
	return playlist, nil
}

// GetPlaylist loads the playlist detail: its videos in insertion order, the
// owner summary, and the membership/view rollups.
func (s *PlaylistService) GetPlaylist(ctx context.Context, playlistID, viewerID uint) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if playlist == nil {
		return nil, models.NewNotFoundError("playlist", playlistID)
	}

	videoIDs, err := s.playlistRepo.VideoIDs(ctx, playlistID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	videos, err := s.videoRepo.ListByIDs(ctx, videoIDs, viewerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if videos == nil {
		videos = []*models.Video{}
	}

	count, views, err := s.playlistRepo.Rollups(ctx, playlistID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	owner, err := s.userRepo.ChannelSummary(ctx, playlist.OwnerID, viewerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	playlist.Videos = videos
	playlist.VideoCount = count
	playlist.TotalViews = views
	playlist.Owner = owner
	return playlist, nil
}

// ListUserPlaylists returns a user's playlists with their rollups attached.
func (s *PlaylistService) ListUserPlaylists(ctx context.Context, ownerID uint, page, limit int) (*models.Page, error) {
	exists, err := s.userRepo.Exists(ctx, ownerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("user", ownerID)
	}

	playlists, total, err := s.playlistRepo.ListByOwner(ctx, ownerID, page, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, p := range playlists {
		count, views, err := s.playlistRepo.Rollups(ctx, p.ID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		p.VideoCount = count
		p.TotalViews = views
	}
	if playlists == nil {
		playlists = []*models.Playlist{}
	}
	return models.NewPage(playlists, pageOrDefault(page), limitOrDefault(limit), total), nil
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, in UpdatePlaylistInput) (*models.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, in.PlaylistID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		playlist.Name = in.Name
	}
	if in.Description != "" {
		playlist.Description = in.Description
	}
	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, models.NewInternalError(err)
	}
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, userID, playlistID uint) error {
	if _, err := s.ownedPlaylist(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.playlistRepo.Delete(ctx, playlistID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// AddVideo links a video into the caller's playlist. Adding a video that is
// already in the playlist is a no-op, not an error.
func (s *PlaylistService) AddVideo(ctx context.Context, userID, playlistID, videoID uint) error {
	if _, err := s.ownedPlaylist(ctx, playlistID, userID); err != nil {
		return err
	}

	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !exists {
		return models.NewNotFoundError("video", videoID)
	}

	if _, err := s.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveVideo unlinks a video from the caller's playlist. Removing a video
// that is not in the playlist is a no-op.
func (s *PlaylistService) RemoveVideo(ctx context.Context, userID, playlistID, videoID uint) error {
	if _, err := s.ownedPlaylist(ctx, playlistID, userID); err != nil {
		return err
	}
	if _, err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, playlistID, userID uint) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if playlist == nil {
		return nil, models.NewNotFoundError("playlist", playlistID)
	}
	if playlist.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only modify your own playlists")
	}
	return playlist, nil
}
