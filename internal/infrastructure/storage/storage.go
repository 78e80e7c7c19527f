package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"rewear.backend/internal/config"
	"rewear.backend/internal/domain/repositories"
	"rewear.backend/pkg/utils"
)

var newObjectName = func() string { return utils.GenerateUUIDv7().String() }

// imageExtensions maps a sniffed content type to the stored file extension.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// objectKey builds a fresh "dir/<uuid><ext>" key. The extension comes from
// the sniffed content type, never from the client's filename.
func objectKey(dir, contentType string) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
	return path.Join(strings.Trim(dir, "/"), newObjectName()+ext), nil
}

func publicURL(base, key string) string {
	if key == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}

// New builds the asset store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (repositories.AssetStore, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "local":
		return NewLocalStore(cfg.LocalPath, cfg.PublicURL)
	case "s3":
		return NewS3Store(cfg.S3Region, cfg.S3Bucket, cfg.PublicURL)
	case "gcs":
		return NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile, cfg.PublicURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
