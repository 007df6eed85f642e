package models

import "time"

// TargetKind identifies which entity kind a reaction points at. A reaction
// references exactly one target; the kind plus a single id column replaces
// the "three optional foreign keys" shape.
type TargetKind string

const (
	// TargetVideo marks a reaction on a video.
	TargetVideo TargetKind = "video"
	// TargetComment marks a reaction on a comment.
	TargetComment TargetKind = "comment"
	// TargetTweet marks a reaction on a tweet.
	TargetTweet TargetKind = "tweet"
)

// Valid reports whether the kind is one of the known target kinds.
func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}

// Target is the (kind, id) pair a reaction or count is about.
type Target struct {
	Kind TargetKind
	ID   uint
}

// Polarity is the direction of a reaction. Which table a record lives in is
// what stores the polarity; the column never exists.
type Polarity string

const (
	// PolarityLike marks a like reaction.
	PolarityLike Polarity = "like"
	// PolarityDislike marks a dislike reaction.
	PolarityDislike Polarity = "dislike"
)

// Opposite returns the other polarity.
func (p Polarity) Opposite() Polarity {
	if p == PolarityLike {
		return PolarityDislike
	}
	return PolarityLike
}

// Like records that a user likes a target. At most one of a Like or Dislike
// row may exist for a given (user, target) pair; the composite unique index
// is the sole concurrency guard for duplicate creation.
type Like struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_likes_user_target" json:"user_id"`
	TargetKind TargetKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_likes_user_target;index:idx_likes_target" json:"target_kind"`
	TargetID   uint       `gorm:"not null;uniqueIndex:idx_likes_user_target;index:idx_likes_target" json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Like) TableName() string {
	return "likes"
}

// Dislike records that a user dislikes a target. See Like for the mutual
// exclusion invariant.
type Dislike struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_dislikes_user_target" json:"user_id"`
	TargetKind TargetKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_dislikes_user_target;index:idx_dislikes_target" json:"target_kind"`
	TargetID   uint       `gorm:"not null;uniqueIndex:idx_dislikes_user_target;index:idx_dislikes_target" json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Dislike) TableName() string {
	return "dislikes"
}

// ReactionStatus is the result of a toggle or status read: the viewer's
// resulting reaction plus exact counts for the target.
type ReactionStatus struct {
	IsLiked      bool  `json:"is_liked"`
	IsDisliked   bool  `json:"is_disliked"`
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
}
