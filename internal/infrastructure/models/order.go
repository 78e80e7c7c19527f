package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:'unpaid';index"`
	AmountPaid    int64     `gorm:"not null;default:0"`
	Item          *Item     `gorm:"foreignKey:ItemID"`
	Buyer         *User     `gorm:"foreignKey:BuyerID"`
	Seller        *User     `gorm:"foreignKey:SellerID"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}
