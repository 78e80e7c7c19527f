package repositories_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/infrastructure/models"
	"rewear.backend/internal/infrastructure/repositories"
	"rewear.backend/internal/infrastructure/storage"
	"rewear.backend/internal/usecases"
)

func newCategoryFlow(t *testing.T) (*usecases.CategoryUsecase, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	assets, err := storage.NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)

	uc := usecases.NewCategoryUsecase(
		repositories.NewCategoryRepository(db),
		repositories.NewItemRepository(db),
		repositories.NewUnitOfWork(db),
		assets,
		1<<20,
	)
	return uc, db
}

func TestCategoryDelete_ReassignsItemsOnRealStack(t *testing.T) {
	uc, db := newCategoryFlow(t)
	ctx := context.Background()

	seller := models.User{ID: uuid.New(), FirstName: "S", LastName: "L", Email: "seller@mail.test", PasswordHash: "x", Status: "approved"}
	require.NoError(t, db.Create(&seller).Error)
	coats := models.Category{ID: uuid.New(), Name: "Coats"}
	shoes := models.Category{ID: uuid.New(), Name: "Shoes"}
	require.NoError(t, db.Create(&coats).Error)
	require.NoError(t, db.Create(&shoes).Error)

	const n = 3
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&models.Item{
			ID: uuid.New(), SellerID: seller.ID, CategoryID: coats.ID,
			Title: fmt.Sprintf("coat %d", i), Price: 1000,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Item{
		ID: uuid.New(), SellerID: seller.ID, CategoryID: shoes.ID, Title: "boots", Price: 500,
	}).Error)

	result, err := uc.Delete(ctx, coats.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), result.ReassignedItems)

	var fallbacks []models.Category
	require.NoError(t, db.Where("name = ?", entities.UncategorizedName).Find(&fallbacks).Error)
	require.Len(t, fallbacks, 1)
	assert.Equal(t, fallbacks[0].ID, result.FallbackCategoryID)

	var moved int64
	require.NoError(t, db.Model(&models.Item{}).Where("category_id = ?", fallbacks[0].ID).Count(&moved).Error)
	assert.Equal(t, int64(n), moved)

	var left int64
	require.NoError(t, db.Model(&models.Item{}).Where("category_id = ?", coats.ID).Count(&left).Error)
	assert.Zero(t, left)
	require.NoError(t, db.Model(&models.Item{}).Where("category_id = ?", shoes.ID).Count(&left).Error)
	assert.Equal(t, int64(1), left)

	var gone int64
	require.NoError(t, db.Model(&models.Category{}).Where("id = ?", coats.ID).Count(&gone).Error)
	assert.Zero(t, gone)

	_, err = uc.Delete(ctx, coats.ID)
	var appErr *domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "%v", err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)

	// a second deletion reuses the existing fallback
	_, err = uc.Delete(ctx, shoes.ID)
	require.NoError(t, err)
	require.NoError(t, db.Where("name = ?", entities.UncategorizedName).Find(&fallbacks).Error)
	assert.Len(t, fallbacks, 1)
	require.NoError(t, db.Model(&models.Item{}).Where("category_id = ?", fallbacks[0].ID).Count(&moved).Error)
	assert.Equal(t, int64(n+1), moved)

	_, err = uc.Delete(ctx, fallbacks[0].ID)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
}
