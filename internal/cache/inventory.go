package cache

import (
	"context"
	"fmt"
	"time"
)

const VideoKeyPrefix = "video:%d"

// VideoTTL bounds staleness of the anonymous video detail projection.
// Viewer-scoped reads are never cached.
const VideoTTL = 5 * time.Minute

func VideoKey(videoID uint) string {
	return fmt.Sprintf(VideoKeyPrefix, videoID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateVideo(ctx context.Context, videoID uint) {
	Invalidate(ctx, VideoKey(videoID))
}
