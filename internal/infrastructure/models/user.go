package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	FirstName    string      `gorm:"type:varchar(100);not null"`
	LastName     string      `gorm:"type:varchar(100);not null"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	Role         string      `gorm:"type:varchar(20);not null;default:'user'"`
	Status       string      `gorm:"type:varchar(20);not null;default:'pending';index"`
	ProfilePhoto null.String `gorm:"type:varchar(255)"`
	CreatedAt    time.Time   `gorm:"index"`
	UpdatedAt    time.Time
}
