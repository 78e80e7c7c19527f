package repositories

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteRepository stores user/item likes. Add and Remove are idempotent.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, itemID uuid.UUID) error
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	Exists(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
}

// SubscriptionRepository stores follow edges. Follow and Unfollow are idempotent.
type SubscriptionRepository interface {
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
}
