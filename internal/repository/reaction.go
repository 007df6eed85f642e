// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"clipstream/internal/cache"
	"clipstream/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository defines the primitive operations on the like and
// dislike stores. Polarity selects the table; the tables are otherwise
// identical, and the composite unique index on (user_id, target_kind,
// target_id) is the only guard against concurrent duplicate writes.
type ReactionRepository interface {
	// Insert creates a reaction row, absorbing duplicate-key races via
	// ON CONFLICT DO NOTHING. Returns whether a row was actually added.
	Insert(ctx context.Context, p models.Polarity, userID uint, target models.Target) (bool, error)
	// Remove hard-deletes the reaction row if present. Returns whether a
	// row was actually removed.
	Remove(ctx context.Context, p models.Polarity, userID uint, target models.Target) (bool, error)
	Exists(ctx context.Context, p models.Polarity, userID uint, target models.Target) (bool, error)
	// Counts returns the exact like and dislike counts for the target.
	Counts(ctx context.Context, target models.Target) (likes, dislikes int64, err error)
	// DeleteByTarget purges both polarities for one target.
	DeleteByTarget(ctx context.Context, target models.Target) error
	// DeleteByTargets purges both polarities for many targets of one kind.
	DeleteByTargets(ctx context.Context, kind models.TargetKind, ids []uint) error
	// TargetIDs lists the ids of a kind the user has reacted to with the
	// given polarity, newest reaction first.
	TargetIDs(ctx context.Context, p models.Polarity, userID uint, kind models.TargetKind) ([]uint, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func tableFor(p models.Polarity) string {
	if p == models.PolarityLike {
		return "likes"
	}
	return "dislikes"
}

func (r *reactionRepository) Insert(ctx context.Context, p models.Polarity, userID uint, target models.Target) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true})

	var result *gorm.DB
	if p == models.PolarityLike {
		result = tx.Create(&models.Like{UserID: userID, TargetKind: target.Kind, TargetID: target.ID})
	} else {
		result = tx.Create(&models.Dislike{UserID: userID, TargetKind: target.Kind, TargetID: target.ID})
	}
	if result.Error != nil {
		return false, result.Error
	}
	invalidateTarget(ctx, target)
	return result.RowsAffected > 0, nil
}

func (r *reactionRepository) Remove(ctx context.Context, p models.Polarity, userID uint, target models.Target) (bool, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, target.Kind, target.ID)

	var result *gorm.DB
	if p == models.PolarityLike {
		result = q.Delete(&models.Like{})
	} else {
		result = q.Delete(&models.Dislike{})
	}
	if result.Error != nil {
		return false, result.Error
	}
	invalidateTarget(ctx, target)
	return result.RowsAffected > 0, nil
}

// invalidateTarget drops the cached anonymous video projection after a
// reaction write so its derived counts never serve stale within the TTL.
// Comment and tweet counts are never cached, so other kinds are no-ops.
func invalidateTarget(ctx context.Context, target models.Target) {
	if target.Kind == models.TargetVideo {
		cache.InvalidateVideo(ctx, target.ID)
	}
}

func (r *reactionRepository) Exists(ctx context.Context, p models.Polarity, userID uint, target models.Target) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, target.Kind, target.ID)
	if p == models.PolarityLike {
		q = q.Model(&models.Like{})
	} else {
		q = q.Model(&models.Dislike{})
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reactionRepository) Counts(ctx context.Context, target models.Target) (int64, int64, error) {
	var likes, dislikes int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("target_kind = ? AND target_id = ?", target.Kind, target.ID).
		Count(&likes).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Dislike{}).
		Where("target_kind = ? AND target_id = ?", target.Kind, target.ID).
		Count(&dislikes).Error; err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}

func (r *reactionRepository) DeleteByTarget(ctx context.Context, target models.Target) error {
	return r.DeleteByTargets(ctx, target.Kind, []uint{target.ID})
}

func (r *reactionRepository) DeleteByTargets(ctx context.Context, kind models.TargetKind, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Where("target_kind = ? AND target_id IN ?", kind, ids).
		Delete(&models.Like{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("target_kind = ? AND target_id IN ?", kind, ids).
		Delete(&models.Dislike{}).Error
}

func (r *reactionRepository) TargetIDs(ctx context.Context, p models.Polarity, userID uint, kind models.TargetKind) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Table(tableFor(p)).
		Where("user_id = ? AND target_kind = ?", userID, kind).
		Order("created_at DESC").
		Pluck("target_id", &ids).Error
	return ids, err
}
