package entities

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfilment state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order records a purchase. AmountPaid is in minor units.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	ItemID        uuid.UUID     `json:"item_id"`
	BuyerID       uuid.UUID     `json:"buyer_id"`
	SellerID      uuid.UUID     `json:"seller_id"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	AmountPaid    int64         `json:"amount_paid"`
	Item          *ItemSummary  `json:"item,omitempty"`
	Buyer         *UserSummary  `json:"buyer,omitempty"`
	Seller        *UserSummary  `json:"seller,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
