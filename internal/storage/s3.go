package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vortexsites/barbershop-backend/internal/config"
)

// S3Storage keeps gallery objects in an S3-compatible bucket and resolves
// their public URLs against a configured base.
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	if cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" {
		return nil, errors.New("storage credentials not configured")
	}
	if cfg.StoragePublicURL == "" {
		return nil, errors.New("storage public base URL not configured")
	}

	opts := s3.Options{
		Region: cfg.StorageRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		),
	}
	if cfg.StorageEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.StorageEndpoint)
		// Custom endpoints are usually minio-style and want path addressing.
		opts.UsePathStyle = true
	}

	return &S3Storage{
		client:  s3.New(opts),
		bucket:  cfg.StorageBucket,
		baseURL: strings.TrimSuffix(cfg.StoragePublicURL, "/"),
	}, nil
}

func (s *S3Storage) Upload(
	ctx context.Context,
	name string,
	content io.Reader,
	contentType string,
) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *S3Storage) PublicURL(name string) string {
	return s.baseURL + "/" + name
}
