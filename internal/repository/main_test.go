package repository

import (
	"fmt"
	"testing"

	"clipstream/internal/database"
	"clipstream/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema. Each test
// gets its own so unique-index state never leaks between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
		FullName: username + " name",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedVideo(t *testing.T, db *gorm.DB, ownerID uint, title string, published bool) *models.Video {
	t.Helper()
	video := &models.Video{
		Title:       title,
		VideoURL:    "https://cdn.example.com/" + title + ".mp4",
		OwnerID:     ownerID,
		IsPublished: published,
	}
	require.NoError(t, db.Create(video).Error)
	return video
}

func seedComment(t *testing.T, db *gorm.DB, videoID, ownerID uint, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Content: content,
		VideoID: videoID,
		OwnerID: ownerID,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
