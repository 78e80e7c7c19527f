package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/infrastructure/models"
	"rewear.backend/pkg/utils"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	if category.ID == uuid.Nil {
		category.ID = utils.GenerateUUIDv7()
	}
	m := &models.Category{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Icon:        category.Icon,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	category.CreatedAt = m.CreatedAt
	category.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var m models.Category
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return categoryToEntity(&m), nil
}

func (r *CategoryRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var m models.Category
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.created_at DESC, items.id DESC")
		}).
		Preload("Items.Seller").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	category := categoryToEntity(&m)
	category.Items = make([]*entities.Item, 0, len(m.Items))
	for i := range m.Items {
		item := itemToEntity(&m.Items[i])
		item.Category = &entities.CategorySummary{ID: m.ID, Name: m.Name}
		category.Items = append(category.Items, item)
	}
	category.ItemsCount = int64(len(category.Items))
	return category, nil
}

func (r *CategoryRepository) NameTaken(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Category{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type categoryCountRow struct {
	ID          uuid.UUID
	Name        string
	Description null.String
	Icon        null.String
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ItemsCount  int64
}

func (r *CategoryRepository) ListWithCounts(ctx context.Context) ([]*entities.Category, error) {
	var rows []categoryCountRow
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Category{}).
		Select(`categories.id, categories.name, categories.description, categories.icon,
			categories.created_at, categories.updated_at,
			(SELECT COUNT(*) FROM items WHERE items.category_id = categories.id) AS items_count`).
		Order("categories.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, &entities.Category{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Icon:        row.Icon,
			ItemsCount:  row.ItemsCount,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	updates := map[string]interface{}{
		"name":        category.Name,
		"description": category.Description,
		"icon":        category.Icon,
		"updated_at":  time.Now(),
	}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", category.ID).
		Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// FirstOrCreateByName returns the category with the given name, creating it if absent.
func (r *CategoryRepository) FirstOrCreateByName(ctx context.Context, name, description string) (*entities.Category, error) {
	var m models.Category
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where(models.Category{Name: name}).
		Attrs(models.Category{ID: utils.GenerateUUIDv7(), Description: null.StringFrom(description)}).
		FirstOrCreate(&m).Error
	if err != nil {
		return nil, err
	}
	return categoryToEntity(&m), nil
}
