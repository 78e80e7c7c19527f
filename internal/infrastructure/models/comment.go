package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Body      string    `gorm:"type:text;not null"`
	User      *User     `gorm:"foreignKey:UserID"`
	Item      *Item     `gorm:"foreignKey:ItemID"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
