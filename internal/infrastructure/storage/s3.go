package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"rewear.backend/internal/domain/entities"
)

// S3Store keeps assets in an S3 bucket.
type S3Store struct {
	s3        s3iface.S3API
	bucket    string
	publicURL string
}

func NewS3Store(region, bucket, publicURL string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	return newS3Store(s3.New(sess), bucket, publicURL), nil
}

func newS3Store(client s3iface.S3API, bucket, publicURL string) *S3Store {
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &S3Store{s3: client, bucket: bucket, publicURL: publicURL}
}

func (c *S3Store) Put(ctx context.Context, dir string, upload *entities.Upload) (string, error) {
	key, err := objectKey(dir, upload.ContentType)
	if err != nil {
		return "", err
	}
	body, err := io.ReadAll(upload.Content)
	if err != nil {
		return "", err
	}

	_, err = c.s3.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(upload.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return key, nil
}

// Delete is idempotent; S3 does not fail on missing keys.
func (c *S3Store) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

func (c *S3Store) URL(key string) string {
	return publicURL(c.publicURL, key)
}
