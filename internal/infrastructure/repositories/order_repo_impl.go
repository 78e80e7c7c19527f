package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rewear.backend/internal/domain/entities"
	"rewear.backend/internal/infrastructure/models"
	"rewear.backend/pkg/utils"
)

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = utils.GenerateUUIDv7()
	}
	m := &models.Order{
		ID:            order.ID,
		ItemID:        order.ItemID,
		BuyerID:       order.BuyerID,
		SellerID:      order.SellerID,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		AmountPaid:    order.AmountPaid,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt
	return nil
}

// ListWithRelations returns the newest orders first with item, buyer and seller loaded.
func (r *OrderRepository) ListWithRelations(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Order, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Order
	if err := db.Preload("Item").Preload("Buyer").Preload("Seller").
		Order("orders.created_at DESC, orders.id DESC").
		Limit(pagination.PerPage).
		Offset(pagination.Offset()).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, orderToEntity(&ms[i]))
	}
	return orders, total, nil
}
