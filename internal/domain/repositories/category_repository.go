package repositories

import (
	"context"

	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
)

// CategoryRepository defines category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	// GetWithItems loads the category with its items and each item's seller.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	NameTaken(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	ListWithCounts(ctx context.Context) ([]*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FirstOrCreateByName(ctx context.Context, name, description string) (*entities.Category, error)
}
