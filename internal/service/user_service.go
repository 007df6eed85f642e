package service

import (
	"context"
	"errors"
	"strings"

	"clipstream/internal/models"
	"clipstream/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService owns account profiles and the public channel page.
type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID        uint
	FullName      string
	Description   string
	AvatarURL     string
	CoverImageURL string
}

type ChangePasswordInput struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile loads a user with their subscription totals, scoped to the
// viewer.
func (s *UserService) GetProfile(ctx context.Context, userID, viewerID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("user", userID)
		}
		return nil, models.NewInternalError(err)
	}
	summary, err := s.userRepo.ChannelSummary(ctx, userID, viewerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if summary != nil {
		user.SubscribersCount = summary.SubscribersCount
		user.IsSubscribed = summary.IsSubscribed
	}
	return user, nil
}

// ChannelProfile resolves a channel page by name. The match is a
// case-insensitive substring over username and full name; a blank name never
// matches anything.
func (s *UserService) ChannelProfile(ctx context.Context, name string, viewerID uint) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewNotFoundError("channel", name)
	}

	user, err := s.userRepo.ChannelByName(ctx, name, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("channel", name)
		}
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// UpdateProfile applies the provided non-empty fields to the caller's own
// account.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("user", in.UserID)
		}
		return nil, models.NewInternalError(err)
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Description != "" {
		user.Description = in.Description
	}
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}
	if in.CoverImageURL != "" {
		user.CoverImageURL = in.CoverImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// ChangePassword verifies the old password before storing the new hash.
func (s *UserService) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	if len(in.NewPassword) < 8 {
		return models.NewValidationError("Password must be at least 8 characters")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("user", in.UserID)
		}
		return models.NewInternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.OldPassword)); err != nil {
		return models.NewUnauthorizedError("Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
