package models

import "time"

// Subscription is a follow edge from a subscriber to a channel. Unique per
// pair; self-subscription is not blocked, matching the platform's original
// behavior.
type Subscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubscriberID uint      `gorm:"not null;uniqueIndex:idx_subscriptions_pair" json:"subscriber_id"`
	ChannelID    uint      `gorm:"not null;uniqueIndex:idx_subscriptions_pair;index" json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`

	Subscriber User `gorm:"foreignKey:SubscriberID" json:"subscriber,omitempty"`
	Channel    User `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
}

// TableName specifies the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscriberInfo is one row of a channel's subscriber list: the subscriber's
// channel summary, their own subscriber count, and whether the channel being
// listed follows them back.
type SubscriberInfo struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	FullName         string `json:"full_name"`
	AvatarURL        string `json:"avatar_url"`
	SubscribersCount int64  `json:"subscribers_count"`
	SubscribedBack   bool   `json:"subscribed_back"`
}

// SubscribedChannel is one row of a user's subscription list: the channel
// plus its most recently published video, when one exists.
type SubscribedChannel struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	AvatarURL   string `json:"avatar_url"`
	LatestVideo *Video `json:"latest_video,omitempty"`
}
