package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
	"rewear.backend/internal/domain/entities"
)

// GCSStore keeps assets in a Google Cloud Storage bucket.
type GCSStore struct {
	client     *storage.Client
	bucketName string
	publicURL  string
}

func NewGCSStore(ctx context.Context, bucketName, credentialsFile, publicURL string) (*GCSStore, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://storage.googleapis.com/%s", bucketName)
	}
	return &GCSStore{client: client, bucketName: bucketName, publicURL: publicURL}, nil
}

func (c *GCSStore) Put(ctx context.Context, dir string, upload *entities.Upload) (string, error) {
	key, err := objectKey(dir, upload.ContentType)
	if err != nil {
		return "", err
	}
	writer := c.client.Bucket(c.bucketName).Object(key).NewWriter(ctx)
	writer.ContentType = upload.ContentType

	if _, err := io.Copy(writer, upload.Content); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", key, err)
	}
	return key, nil
}

func (c *GCSStore) Delete(ctx context.Context, key string) error {
	err := c.client.Bucket(c.bucketName).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete %s: %w", key, err)
	}
	return nil
}

func (c *GCSStore) URL(key string) string {
	return publicURL(c.publicURL, key)
}

func (c *GCSStore) Close() error {
	return c.client.Close()
}
