package usecases

import (
	"context"
	"time"

	"rewear.backend/internal/domain/entities"
)

// AccountMailer notifies users about account changes.
type AccountMailer interface {
	SendAccountStatus(ctx context.Context, user *entities.User) error
}

// TokenRevoker tracks revoked JWT ids.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

var nowFunc = time.Now

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
