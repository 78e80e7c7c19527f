package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/domain/repositories"
	"rewear.backend/pkg/logger"
)

// CategoryDeletion reports what happened to the items of a deleted category.
type CategoryDeletion struct {
	FallbackCategoryID uuid.UUID `json:"fallback_category_id"`
	ReassignedItems    int64     `json:"reassigned_items"`
}

// CategoryUsecase manages categories and their icon assets.
type CategoryUsecase struct {
	categoryRepo   repositories.CategoryRepository
	itemRepo       repositories.ItemRepository
	uow            repositories.UnitOfWork
	assets         repositories.AssetStore
	maxUploadBytes int64
}

func NewCategoryUsecase(
	categoryRepo repositories.CategoryRepository,
	itemRepo repositories.ItemRepository,
	uow repositories.UnitOfWork,
	assets repositories.AssetStore,
	maxUploadBytes int64,
) *CategoryUsecase {
	return &CategoryUsecase{
		categoryRepo:   categoryRepo,
		itemRepo:       itemRepo,
		uow:            uow,
		assets:         assets,
		maxUploadBytes: maxUploadBytes,
	}
}

func (u *CategoryUsecase) List(ctx context.Context) ([]*entities.Category, error) {
	categories, err := u.categoryRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		u.withIconURL(c)
	}
	return categories, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	category, err := u.categoryRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "category not found")
	}
	return u.withIconURL(category), nil
}

// Create stores the icon first so the row never points at a missing asset.
func (u *CategoryUsecase) Create(ctx context.Context, input *entities.CreateCategoryInput, icon *entities.Upload) (*entities.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest("The name field is required.")
	}
	if err := u.ensureNameFree(ctx, name, nil); err != nil {
		return nil, err
	}

	category := &entities.Category{Name: name, Description: optionalText(input.Description)}
	if icon != nil {
		key, err := u.storeIcon(ctx, icon)
		if err != nil {
			return nil, err
		}
		category.Icon = null.StringFrom(key)
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		u.discardAsset(ctx, category.Icon)
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("The name has already been taken.")
		}
		return nil, err
	}
	return u.withIconURL(category), nil
}

// Update applies the present fields. A replaced icon is deleted only after the
// row update commits; if the update fails the freshly stored icon is removed.
func (u *CategoryUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateCategoryInput, icon *entities.Upload) (*entities.Category, error) {
	if _, err := u.categoryRepo.GetByID(ctx, id); err != nil {
		return nil, notFoundAs(err, "category not found")
	}

	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.BadRequest("The name field must not be empty.")
		}
		if err := u.ensureNameFree(ctx, name, &id); err != nil {
			return nil, err
		}
	}

	var newIcon null.String
	if icon != nil {
		key, err := u.storeIcon(ctx, icon)
		if err != nil {
			return nil, err
		}
		newIcon = null.StringFrom(key)
	}

	var updated *entities.Category
	var oldIcon null.String
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		category, err := u.categoryRepo.GetByID(u.uow.WithLock(txCtx), id)
		if err != nil {
			return notFoundAs(err, "category not found")
		}
		if input.Name != nil {
			category.Name = name
		}
		if input.Description != nil {
			category.Description = optionalText(input.Description)
		}
		if newIcon.Valid {
			oldIcon = category.Icon
			category.Icon = newIcon
		}
		if err := u.categoryRepo.Update(txCtx, category); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("The name has already been taken.")
			}
			return err
		}
		updated = category
		return nil
	})
	if err != nil {
		u.discardAsset(ctx, newIcon)
		return nil, err
	}

	if oldIcon.Valid && oldIcon.String != newIcon.String {
		u.discardAsset(ctx, oldIcon)
	}
	return u.withIconURL(updated), nil
}

// Delete moves the category's items to "Uncategorized" and removes the row in
// one transaction, then deletes the icon.
func (u *CategoryUsecase) Delete(ctx context.Context, id uuid.UUID) (*CategoryDeletion, error) {
	result := &CategoryDeletion{}
	var icon null.String

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		category, err := u.categoryRepo.GetByID(u.uow.WithLock(txCtx), id)
		if err != nil {
			return notFoundAs(err, "category not found")
		}
		if category.IsFallback() {
			return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "The Uncategorized category cannot be deleted.", domainerrors.ErrFallbackCategory)
		}

		fallback, err := u.categoryRepo.FirstOrCreateByName(txCtx, entities.UncategorizedName, entities.UncategorizedDescription)
		if err != nil {
			return err
		}

		moved, err := u.itemRepo.ReassignCategory(txCtx, id, fallback.ID)
		if err != nil {
			return err
		}
		if err := u.categoryRepo.Delete(txCtx, id); err != nil {
			return notFoundAs(err, "category not found")
		}

		icon = category.Icon
		result.FallbackCategoryID = fallback.ID
		result.ReassignedItems = moved
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.discardAsset(ctx, icon)
	logger.Info(ctx, "Category deleted",
		zap.String("category_id", id.String()),
		zap.Int64("reassigned_items", result.ReassignedItems),
	)
	return result, nil
}

func (u *CategoryUsecase) ensureNameFree(ctx context.Context, name string, excludeID *uuid.UUID) error {
	taken, err := u.categoryRepo.NameTaken(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domainerrors.Conflict("The name has already been taken.")
	}
	return nil
}

func (u *CategoryUsecase) storeIcon(ctx context.Context, icon *entities.Upload) (string, error) {
	if err := inspectImage("icon", icon, u.maxUploadBytes); err != nil {
		return "", err
	}
	key, err := u.assets.Put(ctx, categoryIconDir, icon)
	if err != nil {
		return "", domainerrors.InternalError(err)
	}
	return key, nil
}

// discardAsset removes a stored file. Failures are logged: the database is already consistent.
func (u *CategoryUsecase) discardAsset(ctx context.Context, key null.String) {
	if !key.Valid || key.String == "" {
		return
	}
	if err := u.assets.Delete(ctx, key.String); err != nil {
		logger.Warn(ctx, "Failed to delete category icon", zap.String("path", key.String), zap.Error(err))
	}
}

func (u *CategoryUsecase) withIconURL(c *entities.Category) *entities.Category {
	if c.Icon.Valid {
		c.IconURL = u.assets.URL(c.Icon.String)
	}
	return c
}

// optionalText maps a missing or blank form value to NULL.
func optionalText(v *string) null.String {
	if v == nil {
		return null.String{}
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return null.String{}
	}
	return null.StringFrom(trimmed)
}

// notFoundAs turns a repository ErrNotFound into a 404 with the given message.
func notFoundAs(err error, message string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		var appErr *domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return domainerrors.NotFound(message)
	}
	return err
}
