package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"rewear.backend/internal/infrastructure/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		status TEXT NOT NULL DEFAULT 'pending',
		profile_photo TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCategoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		icon TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createItemTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE items (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		category_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price INTEGER NOT NULL,
		is_sold BOOLEAN NOT NULL DEFAULT false,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		item_id TEXT NOT NULL,
		buyer_id TEXT NOT NULL,
		seller_id TEXT NOT NULL,
		status TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		amount_paid INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCommentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSocialTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE favorites (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(user_id, item_id)
	);`)
	mustExec(t, db, `CREATE TABLE subscriptions (
		id TEXT PRIMARY KEY,
		follower_id TEXT NOT NULL,
		following_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(follower_id, following_id)
	);`)
}

func createMarketplaceTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	createUserTable(t, db)
	createCategoryTable(t, db)
	createItemTable(t, db)
	createOrderTable(t, db)
	createCommentTable(t, db)
	createSocialTables(t, db)
}

func seedUser(t *testing.T, db *gorm.DB, email, status string) *models.User {
	t.Helper()
	m := &models.User{
		ID:           uuid.New(),
		FirstName:    "Test",
		LastName:     email,
		Email:        email,
		PasswordHash: "hash",
		Role:         "user",
		Status:       status,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	m := &models.Category{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedItem(t *testing.T, db *gorm.DB, sellerID, categoryID uuid.UUID, title string) *models.Item {
	t.Helper()
	m := &models.Item{
		ID:         uuid.New(),
		SellerID:   sellerID,
		CategoryID: categoryID,
		Title:      title,
		Price:      1000,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}
