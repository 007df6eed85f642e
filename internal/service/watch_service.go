package service

import (
	"context"

	"clipstream/internal/models"
	"clipstream/internal/repository"
)

// WatchService owns the per-user watch history and watch-later lists. The
// history doubles as the view gate: VideoService consults it through the
// repository when recording views.
type WatchService struct {
	historyRepo repository.WatchHistoryRepository
	laterRepo   repository.WatchLaterRepository
	videoRepo   repository.VideoRepository
}

func NewWatchService(
	historyRepo repository.WatchHistoryRepository,
	laterRepo repository.WatchLaterRepository,
	videoRepo repository.VideoRepository,
) *WatchService {
	return &WatchService{
		historyRepo: historyRepo,
		laterRepo:   laterRepo,
		videoRepo:   videoRepo,
	}
}

// History returns the user's watched videos, most recently opened first.
func (s *WatchService) History(ctx context.Context, userID uint, page, limit int) (*models.Page, error) {
	ids, total, err := s.historyRepo.VideoIDs(ctx, userID, page, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	videos, err := s.orderedVideos(ctx, ids, userID)
	if err != nil {
		return nil, err
	}
	return models.NewPage(videos, pageOrDefault(page), limitOrDefault(limit), total), nil
}

// RemoveFromHistory drops a single video from the user's history. The view it
// may have counted stays counted.
func (s *WatchService) RemoveFromHistory(ctx context.Context, userID, videoID uint) error {
	if _, err := s.historyRepo.Remove(ctx, userID, videoID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ClearHistory wipes the user's whole watch history.
func (s *WatchService) ClearHistory(ctx context.Context, userID uint) error {
	if err := s.historyRepo.Clear(ctx, userID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// WatchLater returns the user's saved videos, most recently saved first.
func (s *WatchService) WatchLater(ctx context.Context, userID uint, page, limit int) (*models.Page, error) {
	ids, total, err := s.laterRepo.VideoIDs(ctx, userID, page, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	videos, err := s.orderedVideos(ctx, ids, userID)
	if err != nil {
		return nil, err
	}
	return models.NewPage(videos, pageOrDefault(page), limitOrDefault(limit), total), nil
}

// SaveForLater bookmarks a video. Saving twice is a no-op.
func (s *WatchService) SaveForLater(ctx context.Context, userID, videoID uint) error {
	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !exists {
		return models.NewNotFoundError("video", videoID)
	}
	if _, err := s.laterRepo.Add(ctx, userID, videoID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveFromWatchLater drops the bookmark. Removing an absent bookmark is a
// no-op.
func (s *WatchService) RemoveFromWatchLater(ctx context.Context, userID, videoID uint) error {
	if _, err := s.laterRepo.Remove(ctx, userID, videoID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// orderedVideos resolves list membership ids to viewer-scoped video rows,
// preserving the membership order. Ids whose video has since been deleted
// drop out silently.
func (s *WatchService) orderedVideos(ctx context.Context, ids []uint, viewerID uint) ([]*models.Video, error) {
	videos, err := s.videoRepo.ListByIDs(ctx, ids, viewerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	byID := make(map[uint]*models.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	ordered := make([]*models.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}
