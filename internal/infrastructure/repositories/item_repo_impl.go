package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/infrastructure/models"
	"rewear.backend/pkg/utils"
)

// ItemRepository implements item data operations
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *entities.Item) error {
	if item.ID == uuid.Nil {
		item.ID = utils.GenerateUUIDv7()
	}
	m := &models.Item{
		ID:          item.ID,
		SellerID:    item.SellerID,
		CategoryID:  item.CategoryID,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		IsSold:      item.IsSold,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.CreatedAt = m.CreatedAt
	item.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Item, error) {
	var m models.Item
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return itemToEntity(&m), nil
}

func (r *ItemRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*entities.Item, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	var m models.Item
	if err := db.Preload("Seller").Preload("Category").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	items := []*entities.Item{itemToEntity(&m)}
	if err := attachItemCounts(db, items); err != nil {
		return nil, err
	}
	return items[0], nil
}

func (r *ItemRepository) ListWithRelations(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Item, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Item{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Item
	if err := db.Preload("Seller").Preload("Category").
		Order("items.created_at DESC, items.id DESC").
		Limit(pagination.PerPage).
		Offset(pagination.Offset()).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Item, 0, len(ms))
	for i := range ms {
		items = append(items, itemToEntity(&ms[i]))
	}
	if err := attachItemCounts(db, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ItemRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Item, error) {
	var ms []models.Item
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Category").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC, id DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Item, 0, len(ms))
	for i := range ms {
		items = append(items, itemToEntity(&ms[i]))
	}
	return items, nil
}

// MarkSold flips is_sold only when the item is still available.
func (r *ItemRepository) MarkSold(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ? AND is_sold = ?", id, false).
		Updates(map[string]interface{}{
			"is_sold":    true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemSold
	}
	return nil
}

func (r *ItemRepository) ReassignCategory(ctx context.Context, from, to uuid.UUID) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Item{}).
		Where("category_id = ?", from).
		Updates(map[string]interface{}{
			"category_id": to,
			"updated_at":  time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

type itemCountRow struct {
	ItemID uuid.UUID
	Total  int64
}

// attachItemCounts fills favorites and comments counts with one grouped query per table.
func attachItemCounts(db *gorm.DB, items []*entities.Item) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(items))
	byID := make(map[uuid.UUID]*entities.Item, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
		byID[item.ID] = item
	}

	var favorites []itemCountRow
	if err := db.Model(&models.Favorite{}).
		Select("item_id, COUNT(*) AS total").
		Where("item_id IN ?", ids).
		Group("item_id").
		Scan(&favorites).Error; err != nil {
		return err
	}
	for _, row := range favorites {
		if item, ok := byID[row.ItemID]; ok {
			item.FavoritesCount = row.Total
		}
	}

	var comments []itemCountRow
	if err := db.Model(&models.Comment{}).
		Select("item_id, COUNT(*) AS total").
		Where("item_id IN ?", ids).
		Group("item_id").
		Scan(&comments).Error; err != nil {
		return err
	}
	for _, row := range comments {
		if item, ok := byID[row.ItemID]; ok {
			item.CommentsCount = row.Total
		}
	}
	return nil
}
