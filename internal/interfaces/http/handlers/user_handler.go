package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
	"rewear.backend/internal/interfaces/http/middleware"
	"rewear.backend/internal/interfaces/http/response"
)

type profileService interface {
	Profile(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entities.UserProfile, error)
	SetFollowing(ctx context.Context, followerID, targetID uuid.UUID, follow bool) error
}

type UserHandler struct {
	profiles profileService
}

func NewUserHandler(profiles profileService) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// Profile handles GET /api/v1/users/:id/profile. Authentication is optional.
func (h *UserHandler) Profile(c *gin.Context) {
	id, err := pathID(c, "user")
	if err != nil {
		response.Error(c, err)
		return
	}

	var viewer *uuid.UUID
	if viewerID, ok := middleware.GetUserID(c); ok {
		viewer = &viewerID
	}

	profile, err := h.profiles.Profile(c.Request.Context(), id, viewer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": profile})
}

// Follow handles POST /api/v1/users/:id/follow
func (h *UserHandler) Follow(c *gin.Context) {
	h.setFollowing(c, true)
}

// Unfollow handles DELETE /api/v1/users/:id/follow
func (h *UserHandler) Unfollow(c *gin.Context) {
	h.setFollowing(c, false)
}

func (h *UserHandler) setFollowing(c *gin.Context, follow bool) {
	followerID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	targetID, err := pathID(c, "user")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.profiles.SetFollowing(c.Request.Context(), followerID, targetID, follow); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user_id": targetID, "following": follow})
}
