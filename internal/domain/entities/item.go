package entities

import (
	"time"

	"github.com/google/uuid"
)

// Item is a listed piece of clothing. Price is in minor units.
type Item struct {
	ID             uuid.UUID        `json:"id"`
	SellerID       uuid.UUID        `json:"seller_id"`
	CategoryID     uuid.UUID        `json:"category_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Price          int64            `json:"price"`
	IsSold         bool             `json:"is_sold"`
	Seller         *UserSummary     `json:"seller,omitempty"`
	Category       *CategorySummary `json:"category,omitempty"`
	FavoritesCount int64            `json:"favorites_count"`
	CommentsCount  int64            `json:"comments_count"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (i *Item) Summary() *ItemSummary {
	return &ItemSummary{ID: i.ID, Title: i.Title, Price: i.Price, IsSold: i.IsSold}
}

// ItemSummary is the compact item shape embedded in orders and comments.
type ItemSummary struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Price  int64     `json:"price"`
	IsSold bool      `json:"is_sold"`
}

// CreateItemInput represents input for listing an item
type CreateItemInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=5000"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	CategoryID  string `json:"category_id" binding:"required,uuid"`
}
