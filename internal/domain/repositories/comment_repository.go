package repositories

import (
	"context"

	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
	"rewear.backend/pkg/utils"
)

// CommentRepository defines comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error)
	ListWithRelations(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Comment, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
