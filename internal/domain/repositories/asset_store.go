package repositories

import (
	"context"

	"rewear.backend/internal/domain/entities"
)

// AssetStore persists uploaded files such as category icons and profile photos.
type AssetStore interface {
	// Put stores the upload under dir and returns its relative path.
	Put(ctx context.Context, dir string, upload *entities.Upload) (string, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}
