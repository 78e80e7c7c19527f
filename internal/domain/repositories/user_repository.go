package repositories

import (
	"context"

	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
	"rewear.backend/pkg/utils"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	ListWithCounts(ctx context.Context, filter entities.UserFilter, pagination utils.PaginationParams) ([]*entities.UserWithCounts, int64, error)
}
