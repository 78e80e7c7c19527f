package repositories

import (
	"context"

	"rewear.backend/internal/domain/entities"
	"rewear.backend/pkg/utils"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	ListWithRelations(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Order, int64, error)
}
