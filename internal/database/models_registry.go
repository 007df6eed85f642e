package database

import "clipstream/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Video{},
		&models.Comment{},
		&models.Like{},
		&models.Dislike{},
		&models.Subscription{},
		&models.Tweet{},
		&models.Playlist{},
		&models.PlaylistVideo{},
		&models.WatchHistory{},
		&models.WatchLater{},
	}
}
