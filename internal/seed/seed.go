package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"clipstream/internal/models"

	"gorm.io/gorm"
)

// Options control how much demo data gets generated.
type Options struct {
	NumUsers    int
	NumVideos   int
	ShouldClean bool
	SkipBcrypt  bool
}

// Seed populates the database with a realistic social mesh: channels,
// videos, comments, tweets, subscriptions, reactions, watch rows and
// playlists. Every like/dislike pair it writes is mutually exclusive,
// and view counters match the watch-history rows behind them.
func Seed(db *gorm.DB, opts Options) error {
	start := time.Now()
	rng := rand.New(rand.NewSource(start.UnixNano()))

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
		slog.Info("cleared existing data")
	}

	factory := NewFactory(db, SeedOptions{SkipBcrypt: opts.SkipBcrypt})

	// Channels.
	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	slog.Info("seeded users", "count", len(users))

	// Videos, spread unevenly across channels.
	videos := make([]*models.Video, 0, opts.NumVideos)
	for i := 0; i < opts.NumVideos; i++ {
		owner := users[rng.Intn(len(users))]
		video, err := factory.CreateVideo(owner)
		if err != nil {
			return err
		}
		videos = append(videos, video)
	}
	slog.Info("seeded videos", "count", len(videos))

	// Subscriptions: each user follows a handful of other channels.
	subscriptions := 0
	for _, user := range users {
		for _, channel := range pickOthers(rng, users, user.ID, 1+rng.Intn(5)) {
			sub := models.Subscription{SubscriberID: user.ID, ChannelID: channel.ID}
			if err := db.Create(&sub).Error; err != nil {
				return fmt.Errorf("create subscription: %w", err)
			}
			subscriptions++
		}
	}
	slog.Info("seeded subscriptions", "count", subscriptions)

	// Watch history drives the view counters: one row per distinct
	// viewer, owner excluded, views equal to the row count.
	historyRows := 0
	for _, video := range videos {
		if !video.IsPublished {
			continue
		}
		viewers := pickOthers(rng, users, video.OwnerID, rng.Intn(len(users)))
		for _, viewer := range viewers {
			row := models.WatchHistory{UserID: viewer.ID, VideoID: video.ID}
			if err := db.Create(&row).Error; err != nil {
				return fmt.Errorf("create watch history: %w", err)
			}
			historyRows++
		}
		if err := db.Model(&models.Video{}).Where("id = ?", video.ID).
			Update("views", len(viewers)).Error; err != nil {
			return fmt.Errorf("set view count: %w", err)
		}
	}
	slog.Info("seeded watch history", "count", historyRows)

	// Comments and their authors.
	comments := make([]*models.Comment, 0)
	for _, video := range videos {
		if !video.IsPublished {
			continue
		}
		for i := 0; i < rng.Intn(6); i++ {
			author := users[rng.Intn(len(users))]
			comment, err := factory.CreateComment(video, author)
			if err != nil {
				return err
			}
			comments = append(comments, comment)
		}
	}
	slog.Info("seeded comments", "count", len(comments))

	// Channel tweets.
	tweets := make([]*models.Tweet, 0)
	for _, user := range users {
		for i := 0; i < rng.Intn(4); i++ {
			tweet, err := factory.CreateTweet(user)
			if err != nil {
				return err
			}
			tweets = append(tweets, tweet)
		}
	}
	slog.Info("seeded tweets", "count", len(tweets))

	// Reactions across all three target kinds. Each (user, target)
	// pair lands in exactly one of the two tables.
	reactions := 0
	for _, video := range videos {
		if !video.IsPublished {
			continue
		}
		for _, user := range pickOthers(rng, users, 0, rng.Intn(len(users))) {
			if err := createReaction(db, rng, user.ID, models.TargetVideo, video.ID); err != nil {
				return err
			}
			reactions++
		}
	}
	for _, comment := range comments {
		for _, user := range pickOthers(rng, users, 0, rng.Intn(3)) {
			if err := createReaction(db, rng, user.ID, models.TargetComment, comment.ID); err != nil {
				return err
			}
			reactions++
		}
	}
	for _, tweet := range tweets {
		for _, user := range pickOthers(rng, users, 0, rng.Intn(4)) {
			if err := createReaction(db, rng, user.ID, models.TargetTweet, tweet.ID); err != nil {
				return err
			}
			reactions++
		}
	}
	slog.Info("seeded reactions", "count", reactions)

	// Watch-later queues.
	laterRows := 0
	for _, user := range users {
		for _, video := range pickVideos(rng, videos, rng.Intn(4)) {
			row := models.WatchLater{UserID: user.ID, VideoID: video.ID}
			if err := db.Create(&row).Error; err != nil {
				return fmt.Errorf("create watch later: %w", err)
			}
			laterRows++
		}
	}
	slog.Info("seeded watch-later rows", "count", laterRows)

	// Playlists with a few published videos each.
	playlists := 0
	for _, user := range users {
		for i := 0; i < rng.Intn(3); i++ {
			playlist, err := factory.CreatePlaylist(user)
			if err != nil {
				return err
			}
			for _, video := range pickVideos(rng, videos, 1+rng.Intn(5)) {
				entry := models.PlaylistVideo{PlaylistID: playlist.ID, VideoID: video.ID}
				if err := db.Create(&entry).Error; err != nil {
					return fmt.Errorf("add playlist video: %w", err)
				}
			}
			playlists++
		}
	}
	slog.Info("seeded playlists", "count", playlists)

	slog.Info("seeding complete", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// createReaction writes a like or a dislike for the pair, never both.
// Likes outnumber dislikes roughly four to one.
func createReaction(db *gorm.DB, rng *rand.Rand, userID uint, kind models.TargetKind, targetID uint) error {
	if rng.Intn(5) == 0 {
		row := models.Dislike{UserID: userID, TargetKind: kind, TargetID: targetID}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("create dislike: %w", err)
		}
		return nil
	}
	row := models.Like{UserID: userID, TargetKind: kind, TargetID: targetID}
	if err := db.Create(&row).Error; err != nil {
		return fmt.Errorf("create like: %w", err)
	}
	return nil
}

// pickOthers returns up to n distinct users, excluding the given ID.
func pickOthers(rng *rand.Rand, users []*models.User, exclude uint, n int) []*models.User {
	shuffled := make([]*models.User, 0, len(users))
	for _, u := range users {
		if u.ID != exclude {
			shuffled = append(shuffled, u)
		}
	}
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// pickVideos returns up to n distinct published videos.
func pickVideos(rng *rand.Rand, videos []*models.Video, n int) []*models.Video {
	published := make([]*models.Video, 0, len(videos))
	for _, v := range videos {
		if v.IsPublished {
			published = append(published, v)
		}
	}
	rng.Shuffle(len(published), func(i, j int) {
		published[i], published[j] = published[j], published[i]
	})
	if n > len(published) {
		n = len(published)
	}
	return published[:n]
}

// clearData truncates every seeded table in dependency order.
func clearData(db *gorm.DB) error {
	tables := []any{
		&models.PlaylistVideo{},
		&models.Playlist{},
		&models.WatchLater{},
		&models.WatchHistory{},
		&models.Like{},
		&models.Dislike{},
		&models.Subscription{},
		&models.Comment{},
		&models.Tweet{},
		&models.Video{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
