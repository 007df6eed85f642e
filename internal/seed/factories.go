// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"clipstream/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tune factory behavior.
type SeedOptions struct {
	// SkipBcrypt stores a plaintext marker password instead of hashing.
	// Dev fast mode only; never usable for login through the API.
	SkipBcrypt bool
	// MaxDays spreads created_at timestamps over this many days back.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// pastTime picks a timestamp spread over the configured window.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample channel account.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:    gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:       gofakeit.Email(),
		FullName:    gofakeit.Name(),
		Description: gofakeit.Sentence(10),
		AvatarURL:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// CreateVideo constructs and persists a sample video for the given owner.
func (f *Factory) CreateVideo(owner *models.User, overrides ...func(*models.Video)) (*models.Video, error) {
	seedID := gofakeit.UUID()
	video := &models.Video{
		Title:        gofakeit.Sentence(4),
		Description:  gofakeit.Paragraph(1, 3, 8, "\n"),
		VideoURL:     fmt.Sprintf("https://cdn.clipstream.dev/videos/%s.mp4", seedID),
		ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%s/1280/720", seedID),
		Duration:     float64(gofakeit.Number(30, 3600)),
		IsPublished:  gofakeit.Number(0, 9) > 0, // roughly one draft in ten
		OwnerID:      owner.ID,
		CreatedAt:    f.pastTime(),
	}

	for _, override := range overrides {
		override(video)
	}

	if err := f.db.Create(video).Error; err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	return video, nil
}

// CreateComment persists a sample comment on the given video.
func (f *Factory) CreateComment(video *models.Video, author *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   gofakeit.Sentence(gofakeit.Number(3, 20)),
		VideoID:   video.ID,
		OwnerID:   author.ID,
		CreatedAt: f.pastTime(),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// CreateTweet persists a sample channel post for the given author.
func (f *Factory) CreateTweet(author *models.User) (*models.Tweet, error) {
	tweet := &models.Tweet{
		Content:   gofakeit.Sentence(gofakeit.Number(3, 15)),
		OwnerID:   author.ID,
		CreatedAt: f.pastTime(),
	}
	if err := f.db.Create(tweet).Error; err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}
	return tweet, nil
}

// CreatePlaylist persists a sample playlist owned by the given user.
func (f *Factory) CreatePlaylist(owner *models.User) (*models.Playlist, error) {
	playlist := &models.Playlist{
		Name:        gofakeit.HipsterWord() + " " + gofakeit.NounCollectiveThing(),
		Description: gofakeit.Sentence(8),
		OwnerID:     owner.ID,
	}
	if err := f.db.Create(playlist).Error; err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}
	return playlist, nil
}
