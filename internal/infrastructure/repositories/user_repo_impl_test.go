package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/infrastructure/models"
	"rewear.backend/pkg/utils"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		FirstName:    "Alice",
		LastName:     "Martin",
		Email:        "  Alice@Rewear.io ",
		PasswordHash: "hash",
		Role:         entities.UserRoleUser,
		Status:       entities.UserStatusPending,
		ProfilePhoto: null.StringFrom("profiles/a.png"),
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEqual(t, uuid.Nil, u.ID)
	require.Equal(t, "alice@rewear.io", u.Email)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice Martin", byID.Name())
	require.Equal(t, "profiles/a.png", byID.ProfilePhoto.String)

	byEmail, err := repo.GetByEmail(ctx, "ALICE@rewear.io")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	dup := &entities.User{FirstName: "A", LastName: "B", Email: "alice@rewear.io", PasswordHash: "x", Role: entities.UserRoleUser, Status: entities.UserStatusPending}
	require.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrAlreadyExists)
}

func TestUserRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	m := seedUser(t, db, "bob@rewear.io", "pending")
	require.NoError(t, repo.UpdateStatus(ctx, m.ID, entities.UserStatusActive))
	require.NoError(t, repo.UpdatePasswordHash(ctx, m.ID, "hash2"))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, entities.UserStatusActive, got.Status)
	require.Equal(t, "hash2", got.PasswordHash)

	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.UserStatusActive), domainerrors.ErrNotFound)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@rewear.io")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.UpdatePasswordHash(ctx, uuid.New(), "x"), domainerrors.ErrNotFound)
}

func TestUserRepository_ListWithCounts(t *testing.T) {
	db := newTestDB(t)
	createMarketplaceTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@rewear.io", "active")
	buyer := seedUser(t, db, "buyer@rewear.io", "suspended")
	cat := seedCategory(t, db, "Jackets")
	i1 := seedItem(t, db, seller.ID, cat.ID, "Denim")
	seedItem(t, db, seller.ID, cat.ID, "Leather")
	require.NoError(t, db.Create(&models.Order{
		ID: uuid.New(), ItemID: i1.ID, BuyerID: buyer.ID, SellerID: seller.ID,
		Status: "completed", PaymentStatus: "paid", AmountPaid: 1000,
	}).Error)

	rows, total, err := repo.ListWithCounts(ctx, entities.UserFilter{}, utils.NewPaginationParams(1, 15))
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, rows, 2)

	byEmail := map[string]*entities.UserWithCounts{}
	for _, r := range rows {
		byEmail[r.Email] = r
	}
	require.Equal(t, int64(2), byEmail["seller@rewear.io"].ItemsCount)
	require.Equal(t, int64(1), byEmail["seller@rewear.io"].SellingOrdersCount)
	require.Equal(t, int64(0), byEmail["seller@rewear.io"].BuyingOrdersCount)
	require.Equal(t, int64(1), byEmail["buyer@rewear.io"].BuyingOrdersCount)
	require.Equal(t, "Test buyer@rewear.io", byEmail["buyer@rewear.io"].Name)

	suspended := entities.UserStatusSuspended
	rows, total, err = repo.ListWithCounts(ctx, entities.UserFilter{Status: &suspended}, utils.NewPaginationParams(1, 15))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	require.Equal(t, buyer.ID, rows[0].ID)
}

func TestUserRepository_ListWithCountsPagination(t *testing.T) {
	db := newTestDB(t)
	createMarketplaceTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		seedUser(t, db, fmt.Sprintf("user%02d@rewear.io", i), "active")
	}

	page2, total, err := repo.ListWithCounts(ctx, entities.UserFilter{}, utils.NewPaginationParams(2, 10))
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.Len(t, page2, 10)

	page3, _, err := repo.ListWithCounts(ctx, entities.UserFilter{}, utils.NewPaginationParams(3, 10))
	require.NoError(t, err)
	require.Len(t, page3, 5)

	seen := map[uuid.UUID]bool{}
	for _, u := range append(page2, page3...) {
		require.False(t, seen[u.ID], "pages must not overlap")
		seen[u.ID] = true
	}
}
