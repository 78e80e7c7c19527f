package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

const (
	UncategorizedName        = "Uncategorized"
	UncategorizedDescription = "Items without a category"
)

// Category groups items; Icon is an asset store path.
type Category struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	Icon        null.String `json:"icon"`
	IconURL     string      `json:"icon_url,omitempty"`
	ItemsCount  int64       `json:"items_count"`
	Items       []*Item     `json:"items,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (c *Category) IsFallback() bool {
	return c.Name == UncategorizedName
}

// CategorySummary is the compact category shape embedded in items.
type CategorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CreateCategoryInput is bound from a multipart or urlencoded form.
type CreateCategoryInput struct {
	Name        string  `form:"name" json:"name" binding:"required,max=255"`
	Description *string `form:"description" json:"description"`
}

// UpdateCategoryInput only touches the fields that are present.
type UpdateCategoryInput struct {
	Name        *string `form:"name" json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `form:"description" json:"description"`
}
