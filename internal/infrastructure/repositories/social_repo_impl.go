package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"rewear.backend/internal/infrastructure/models"
	"rewear.backend/pkg/utils"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, itemID uuid.UUID) error {
	m := &models.Favorite{ID: utils.GenerateUUIDv7(), UserID: userID, ItemID: itemID}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
			DoNothing: true,
		}).
		Create(m).Error
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.Favorite{}).Error
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	return count > 0, err
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	m := &models.Subscription{ID: utils.GenerateUUIDv7(), FollowerID: followerID, FollowingID: followingID}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).
		Create(m).Error
}

func (r *SubscriptionRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Subscription{}).Error
}

func (r *SubscriptionRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Subscription{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *SubscriptionRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Subscription{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Subscription{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}
