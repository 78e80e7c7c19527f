package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
	"rewear.backend/internal/interfaces/http/response"
	"rewear.backend/internal/usecases"
)

type categoryService interface {
	List(ctx context.Context) ([]*entities.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	Create(ctx context.Context, input *entities.CreateCategoryInput, icon *entities.Upload) (*entities.Category, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateCategoryInput, icon *entities.Upload) (*entities.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*usecases.CategoryDeletion, error)
}

type CategoryHandler struct {
	categories categoryService
}

func NewCategoryHandler(categories categoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": categories})
}

// Get handles GET /api/v1/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := pathID(c, "category")
	if err != nil {
		response.Error(c, err)
		return
	}
	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": category})
}

// Create handles POST /api/v1/categories (multipart, optional icon)
func (h *CategoryHandler) Create(c *gin.Context) {
	var input entities.CreateCategoryInput
	if err := c.ShouldBind(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	icon, closeIcon, err := formUpload(c, "icon")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeIcon()

	category, err := h.categories.Create(c.Request.Context(), &input, icon)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Category created successfully",
		"data":    category,
	})
}

// Update handles PATCH /api/v1/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := pathID(c, "category")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateCategoryInput
	if err := c.ShouldBind(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	icon, closeIcon, err := formUpload(c, "icon")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeIcon()

	category, err := h.categories.Update(c.Request.Context(), id, &input, icon)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Category updated successfully",
		"data":    category,
	})
}

// Delete handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "category")
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.categories.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":              "Category deleted successfully. Items moved to Uncategorized.",
		"fallback_category_id": result.FallbackCategoryID,
		"reassigned_items":     result.ReassignedItems,
	})
}
