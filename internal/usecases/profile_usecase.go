package usecases

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/domain/repositories"
)

// ProfileUsecase builds public profiles and manages follow edges.
type ProfileUsecase struct {
	userRepo         repositories.UserRepository
	itemRepo         repositories.ItemRepository
	subscriptionRepo repositories.SubscriptionRepository
	assets           repositories.AssetStore
}

func NewProfileUsecase(
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	assets repositories.AssetStore,
) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:         userRepo,
		itemRepo:         itemRepo,
		subscriptionRepo: subscriptionRepo,
		assets:           assets,
	}
}

// Profile returns the public view of a user. viewerID is nil for anonymous
// visitors, in which case IsFollowing is always false.
func (u *ProfileUsecase) Profile(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entities.UserProfile, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "user not found")
	}

	followers, err := u.subscriptionRepo.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := u.subscriptionRepo.CountFollowing(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := u.itemRepo.ListBySeller(ctx, id)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*entities.Item{}
	}

	profile := &entities.UserProfile{
		ID:             user.ID,
		Name:           user.Name(),
		Status:         user.Status,
		FollowersCount: followers,
		FollowingCount: following,
		Items:          items,
		JoinedAt:       user.CreatedAt,
	}
	if user.ProfilePhoto.Valid {
		profile.ProfilePhotoURL = u.assets.URL(user.ProfilePhoto.String)
	}
	if viewerID != nil && *viewerID != id {
		profile.IsFollowing, err = u.subscriptionRepo.Exists(ctx, *viewerID, id)
		if err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// SetFollowing follows or unfollows a user. Repeating either call is a no-op.
func (u *ProfileUsecase) SetFollowing(ctx context.Context, followerID, targetID uuid.UUID, follow bool) error {
	if followerID == targetID {
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidInput, "You cannot follow yourself.", domainerrors.ErrSelfAction)
	}
	if _, err := u.userRepo.GetByID(ctx, targetID); err != nil {
		return notFoundAs(err, "user not found")
	}
	if follow {
		return u.subscriptionRepo.Follow(ctx, followerID, targetID)
	}
	return u.subscriptionRepo.Unfollow(ctx, followerID, targetID)
}

func (u *ProfileUsecase) IsFollowing(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
	return u.subscriptionRepo.Exists(ctx, followerID, targetID)
}
