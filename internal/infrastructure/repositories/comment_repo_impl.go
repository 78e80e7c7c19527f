package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/infrastructure/models"
	"rewear.backend/pkg/utils"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = utils.GenerateUUIDv7()
	}
	m := &models.Comment{
		ID:     comment.ID,
		UserID: comment.UserID,
		ItemID: comment.ItemID,
		Body:   comment.Body,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.CreatedAt = m.CreatedAt
	comment.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	var m models.Comment
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return commentToEntity(&m), nil
}

func (r *CommentRepository) ListWithRelations(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Comment, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Comment
	if err := db.Preload("User").Preload("Item").
		Order("comments.created_at DESC, comments.id DESC").
		Limit(pagination.PerPage).
		Offset(pagination.Offset()).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]*entities.Comment, 0, len(ms))
	for i := range ms {
		comments = append(comments, commentToEntity(&ms[i]))
	}
	return comments, total, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
