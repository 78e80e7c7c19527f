package entities

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	ItemID    uuid.UUID    `json:"item_id"`
	Body      string       `json:"body"`
	User      *UserSummary `json:"user,omitempty"`
	Item      *ItemSummary `json:"item,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type CreateCommentInput struct {
	Body string `json:"body" binding:"required,max=2000"`
}
