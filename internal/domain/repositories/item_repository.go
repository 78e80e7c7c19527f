package repositories

import (
	"context"

	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
	"rewear.backend/pkg/utils"
)

// ItemRepository defines item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entities.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Item, error)
	// GetWithRelations loads seller, category and counts.
	GetWithRelations(ctx context.Context, id uuid.UUID) (*entities.Item, error)
	ListWithRelations(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Item, int64, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Item, error)
	MarkSold(ctx context.Context, id uuid.UUID) error
	// ReassignCategory moves every item of one category to another and returns how many moved.
	ReassignCategory(ctx context.Context, from, to uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
