package service

import (
	"context"
	"errors"

	"clipstream/internal/models"
	"clipstream/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLen = 10000

// CommentService owns comment CRUD under a video, including the reaction
// cleanup when a comment goes away.
type CommentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	cascader    *Cascader
}

type CreateCommentInput struct {
	UserID  uint
	VideoID uint
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	videoRepo repository.VideoRepository,
	cascader *Cascader,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		cascader:    cascader,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	exists, err := s.videoRepo.Exists(ctx, in.VideoID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("video", in.VideoID)
	}

	comment := &models.Comment{
		Content: in.Content,
		VideoID: in.VideoID,
		OwnerID: in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return created, nil
}

// ListComments returns a video's comments, newest first, with counts and the
// viewer's like flag attached.
func (s *CommentService) ListComments(ctx context.Context, videoID, viewerID uint, page, limit int) (*models.Page, error) {
	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("video", videoID)
	}

	comments, total, err := s.commentRepo.ListByVideo(ctx, videoID, viewerID, page, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return models.NewPage(comments, pageOrDefault(page), limitOrDefault(limit), total), nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}

	comment, err := s.ownedComment(ctx, in.CommentID, in.UserID)
	if err != nil {
		return nil, err
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

// DeleteComment removes the comment and then clears the reactions that
// pointed at it.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	if _, err := s.ownedComment(ctx, commentID, userID); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return models.NewInternalError(err)
	}
	s.cascader.CommentDeleted(ctx, commentID)
	return nil
}

func (s *CommentService) ownedComment(ctx context.Context, commentID, userID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("comment", commentID)
		}
		return nil, models.NewInternalError(err)
	}
	if comment.OwnerID != userID {
		return nil, models.NewForbiddenError("You can only modify your own comments")
	}
	return comment, nil
}
