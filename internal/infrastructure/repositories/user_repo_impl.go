package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/infrastructure/models"
	"rewear.backend/pkg/utils"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = utils.GenerateUUIDv7()
	}
	m := &models.User{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        strings.ToLower(strings.TrimSpace(user.Email)),
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Status:       string(user.Status),
		ProfilePhoto: user.ProfilePhoto,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.Email = m.Email
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	return r.update(ctx, id, map[string]interface{}{"status": string(status)})
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.update(ctx, id, map[string]interface{}{"password_hash": hash})
}

func (r *UserRepository) update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

type userCountsRow struct {
	ID                 uuid.UUID
	FirstName          string
	LastName           string
	Email              string
	Role               string
	Status             string
	CreatedAt          time.Time
	ItemsCount         int64
	SellingOrdersCount int64
	BuyingOrdersCount  int64
}

// ListWithCounts returns one page of users with their listing and order counts.
func (r *UserRepository) ListWithCounts(ctx context.Context, filter entities.UserFilter, pagination utils.PaginationParams) ([]*entities.UserWithCounts, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	scope := func(q *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			q = q.Where("users.status = ?", string(*filter.Status))
		}
		return q
	}

	var total int64
	if err := scope(db.Model(&models.User{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []userCountsRow
	if err := scope(db.Model(&models.User{})).
		Select(`users.id, users.first_name, users.last_name, users.email, users.role, users.status, users.created_at,
			(SELECT COUNT(*) FROM items WHERE items.seller_id = users.id) AS items_count,
			(SELECT COUNT(*) FROM orders WHERE orders.seller_id = users.id) AS selling_orders_count,
			(SELECT COUNT(*) FROM orders WHERE orders.buyer_id = users.id) AS buying_orders_count`).
		Order("users.created_at DESC, users.id DESC").
		Limit(pagination.PerPage).
		Offset(pagination.Offset()).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.UserWithCounts, 0, len(rows))
	for _, row := range rows {
		users = append(users, &entities.UserWithCounts{
			ID:                 row.ID,
			Name:               strings.TrimSpace(row.FirstName + " " + row.LastName),
			Email:              row.Email,
			Role:               entities.UserRole(row.Role),
			Status:             entities.UserStatus(row.Status),
			ItemsCount:         row.ItemsCount,
			SellingOrdersCount: row.SellingOrdersCount,
			BuyingOrdersCount:  row.BuyingOrdersCount,
			CreatedAt:          row.CreatedAt,
		})
	}
	return users, total, nil
}
