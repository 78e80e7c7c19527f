package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
	"rewear.backend/internal/interfaces/http/response"
)

type marketplaceService interface {
	CreateItem(ctx context.Context, sellerID uuid.UUID, input *entities.CreateItemInput) (*entities.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*entities.Item, error)
	AddComment(ctx context.Context, userID, itemID uuid.UUID, input *entities.CreateCommentInput) (*entities.Comment, error)
	SetFavorite(ctx context.Context, userID, itemID uuid.UUID, liked bool) error
	Purchase(ctx context.Context, buyerID, itemID uuid.UUID) (*entities.Order, error)
}

type ItemHandler struct {
	market marketplaceService
}

func NewItemHandler(market marketplaceService) *ItemHandler {
	return &ItemHandler{market: market}
}

// Create handles POST /api/v1/items
func (h *ItemHandler) Create(c *gin.Context) {
	sellerID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.market.CreateItem(c.Request.Context(), sellerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"data": item})
}

// Get handles GET /api/v1/items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := pathID(c, "item")
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.market.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": item})
}

// AddComment handles POST /api/v1/items/:id/comments
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	itemID, err := pathID(c, "item")
	if err != nil {
		response.Error(c, err)
		return
	}
	var input entities.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	comment, err := h.market.AddComment(c.Request.Context(), userID, itemID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"data": comment})
}

// Favorite handles POST /api/v1/items/:id/favorite
func (h *ItemHandler) Favorite(c *gin.Context) {
	h.setFavorite(c, true)
}

// Unfavorite handles DELETE /api/v1/items/:id/favorite
func (h *ItemHandler) Unfavorite(c *gin.Context) {
	h.setFavorite(c, false)
}

func (h *ItemHandler) setFavorite(c *gin.Context, liked bool) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	itemID, err := pathID(c, "item")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.market.SetFavorite(c.Request.Context(), userID, itemID, liked); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"item_id": itemID, "liked": liked})
}

// Purchase handles POST /api/v1/items/:id/orders
func (h *ItemHandler) Purchase(c *gin.Context) {
	buyerID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	itemID, err := pathID(c, "item")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.market.Purchase(c.Request.Context(), buyerID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"data": order})
}
