package models

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Subscription struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FollowerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair"`
	FollowingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
