package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// UserStatus represents the moderation state of an account
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusPending   UserStatus = "pending"
	UserStatusSuspended UserStatus = "suspended"
)

// Valid reports whether s is one of the known account statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusPending, UserStatusSuspended:
		return true
	}
	return false
}

// ParseUserStatus converts raw input into a UserStatus.
func ParseUserStatus(raw string) (UserStatus, bool) {
	status := UserStatus(strings.TrimSpace(raw))
	return status, status.Valid()
}

// User represents a marketplace account
type User struct {
	ID           uuid.UUID   `json:"id"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	Status       UserStatus  `json:"status"`
	ProfilePhoto null.String `json:"profile_photo"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// ProfilePhotoURL is resolved by the asset store, never persisted.
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

// Name is the display name used in listings and emails.
func (u *User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Summary returns the embedded form used in item, order and comment payloads.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name(), Email: u.Email}
}

// UserSummary is the compact user shape embedded in other records.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// UserWithCounts is a row of the admin user listing.
type UserWithCounts struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Role               UserRole   `json:"role"`
	Status             UserStatus `json:"status"`
	ItemsCount         int64      `json:"items_count"`
	SellingOrdersCount int64      `json:"selling_orders_count"`
	BuyingOrdersCount  int64      `json:"buying_orders_count"`
	CreatedAt          time.Time  `json:"created_at"`
}

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Status *UserStatus
}

// RegisterInput represents the signup form.
type RegisterInput struct {
	FirstName string `form:"first_name" json:"first_name" binding:"required,max=100"`
	LastName  string `form:"last_name" json:"last_name" binding:"required,max=100"`
	Email     string `form:"email" json:"email" binding:"required,email,max=255"`
	Password  string `form:"password" json:"password" binding:"required,min=8"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// RefreshInput carries a refresh token.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         *User  `json:"user"`
}

// UpdateUserStatusInput is the admin status change payload.
type UpdateUserStatusInput struct {
	Status string `json:"status" form:"status" binding:"required,account_status"`
}

// CreateAdminInput is used by the operator CLI.
type CreateAdminInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserProfile is the public profile view.
type UserProfile struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Status          UserStatus `json:"status"`
	ProfilePhotoURL string     `json:"profile_photo_url,omitempty"`
	FollowersCount  int64      `json:"followers_count"`
	FollowingCount  int64      `json:"following_count"`
	IsFollowing     bool       `json:"is_following"`
	Items           []*Item    `json:"items"`
	JoinedAt        time.Time  `json:"joined_at"`
}
