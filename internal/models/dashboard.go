package models

// ChannelStats is the dashboard rollup for a channel: totals derived from
// the subscription, reaction and video tables at read time.
type ChannelStats struct {
	TotalSubscribers int64   `json:"total_subscribers"`
	TotalLikes       int64   `json:"total_likes"`
	TotalViews       int64   `json:"total_views"`
	TotalVideos      int64   `json:"total_videos"`
	LikePercentage   float64 `json:"like_percentage"`
}
