package repository

import (
	"context"
	"errors"
	"strings"

	"clipstream/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Exists(ctx context.Context, id uint) (bool, error)
	// ChannelSummary builds the nested owner projection: identity plus
	// subscriber count plus the viewer's subscription flag. Returns nil
	// (no error) when the account no longer exists so read models degrade
	// instead of failing.
	ChannelSummary(ctx context.Context, channelID, viewerID uint) (*models.ChannelSummary, error)
	// ChannelByName resolves a channel profile by case-insensitive
	// username or full-name match, annotated with subscriber totals and
	// the viewer's subscription flag.
	ChannelByName(ctx context.Context, name string, viewerID uint) (*models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyChannelDetails mirrors applyVideoDetails one level down: the same
// viewer-scoped join shape, keyed on the channel owner instead of the
// content target.
func (r *userRepository) applyChannelDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "users.*, " +
		"(SELECT COUNT(*) FROM subscriptions WHERE subscriptions.channel_id = users.id) as subscribers_count, " +
		"(SELECT COUNT(*) FROM subscriptions WHERE subscriptions.subscriber_id = users.id) as subscribed_to_count"

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM subscriptions WHERE subscriptions.channel_id = users.id AND subscriptions.subscriber_id = ?) as is_subscribed",
			viewerID)
	}
	return db.Select(selectQuery + ", false as is_subscribed")
}

func (r *userRepository) ChannelSummary(ctx context.Context, channelID, viewerID uint) (*models.ChannelSummary, error) {
	var user models.User
	err := r.applyChannelDetails(r.db.WithContext(ctx).Model(&models.User{}), viewerID).
		First(&user, channelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.ChannelSummary{
		ID:               user.ID,
		Username:         user.Username,
		FullName:         user.FullName,
		AvatarURL:        user.AvatarURL,
		SubscribersCount: user.SubscribersCount,
		IsSubscribed:     user.IsSubscribed,
	}, nil
}

func (r *userRepository) ChannelByName(ctx context.Context, name string, viewerID uint) (*models.User, error) {
	var user models.User
	// LOWER on both sides keeps the match case-insensitive on postgres,
	// where LIKE is case-sensitive, and is a no-op on sqlite.
	like := "%" + strings.ToLower(name) + "%"
	err := r.applyChannelDetails(r.db.WithContext(ctx).Model(&models.User{}), viewerID).
		Where("LOWER(username) LIKE ? OR LOWER(full_name) LIKE ?", like, like).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
