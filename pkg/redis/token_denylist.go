package redis

import (
	"context"
	"time"
)

const denylistPrefix = "revoked_token:"

var (
	setDenylistValue    = Set
	existsDenylistValue = Exists
)

// TokenDenylist remembers revoked JWT ids until the token would have expired anyway.
type TokenDenylist struct{}

// NewTokenDenylist creates a denylist backed by the package client
func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{}
}

// Revoke stores tokenID until expiresAt. Already-expired tokens are ignored.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return setDenylistValue(ctx, denylistPrefix+tokenID, "1", ttl)
}

// IsRevoked reports whether tokenID has been revoked
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return existsDenylistValue(ctx, denylistPrefix+tokenID)
}
