package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/interfaces/http/response"
	"rewear.backend/pkg/utils"
)

type adminService interface {
	ListUsers(ctx context.Context, rawStatus string, page int) (utils.Page[*entities.UserWithCounts], error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*entities.User, error)
	ListItems(ctx context.Context, page int) (utils.Page[*entities.Item], error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListComments(ctx context.Context, page int) (utils.Page[*entities.Comment], error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
	ListOrders(ctx context.Context, page int) (utils.Page[*entities.Order], error)
	Statistics(ctx context.Context) (*entities.Statistics, error)
}

// AdminHandler serves the moderation API. Every route sits behind RequireAdmin.
type AdminHandler struct {
	admin adminService
}

func NewAdminHandler(admin adminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListUsers handles GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, err := h.admin.ListUsers(c.Request.Context(), c.Query("status"), utils.ParsePage(c.Query("page")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// UpdateUserStatus handles PATCH /api/v1/admin/users/:id/status
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	id, err := pathID(c, "user")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateUserStatusInput
	if err := c.ShouldBind(&input); err != nil {
		message := "The selected status is invalid."
		if input.Status == "" {
			message = "The status field is required."
		}
		response.ErrorWithError(c, http.StatusBadRequest, domainerrors.CodeInvalidInput, message)
		return
	}

	user, err := h.admin.UpdateUserStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "User status updated successfully",
		"user":    user,
	})
}

// ListItems handles GET /api/v1/admin/items
func (h *AdminHandler) ListItems(c *gin.Context) {
	page, err := h.admin.ListItems(c.Request.Context(), utils.ParsePage(c.Query("page")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// DeleteItem handles DELETE /api/v1/admin/items/:id
func (h *AdminHandler) DeleteItem(c *gin.Context) {
	id, err := pathID(c, "item")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.admin.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// ListComments handles GET /api/v1/admin/comments
func (h *AdminHandler) ListComments(c *gin.Context) {
	page, err := h.admin.ListComments(c.Request.Context(), utils.ParsePage(c.Query("page")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// DeleteComment handles DELETE /api/v1/admin/comments/:id
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	id, err := pathID(c, "comment")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.admin.DeleteComment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ListOrders handles GET /api/v1/admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	page, err := h.admin.ListOrders(c.Request.Context(), utils.ParsePage(c.Query("page")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// Statistics handles GET /api/v1/admin/statistics
func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := h.admin.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
