package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"image-previewer/internal/domain/entities"
	"image-previewer/pkg/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

// S3Storage mirrors generated artifacts into a bucket under their
// base-relative path.
type S3Storage struct {
	client     *s3.Client
	bucketName string
	region     string
	prefix     string
}

func NewS3Storage(ctx context.Context, bucketName, region, prefix string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config yüklenemedi: %w", err)
	}
	return &S3Storage{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		region:     region,
		prefix:     prefix,
	}, nil
}

func (s *S3Storage) Publish(ctx context.Context, artifacts []entities.Artifact) error {
	var errs []error
	for _, a := range artifacts {
		if err := s.upload(ctx, a); err != nil {
			errs = append(errs, err)
			continue
		}
		log.Infow("artifact mirrored", "bucket", s.bucketName, "url", s.URL(a.RelativePath))
	}
	return errors.Join(errs...)
}

func (s *S3Storage) upload(ctx context.Context, a entities.Artifact) error {
	file, err := os.Open(a.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", a.Path, err)
	}
	defer file.Close()

	key := s.objectKey(a.RelativePath)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(constants.MimeJPEG),
		Metadata:    map[string]string{"artifact": a.Name},
	})
	if err != nil {
		return fmt.Errorf("S3 upload hatası %s: %w", key, err)
	}
	return nil
}

// URL returns the public object URL for a base-relative path.
func (s *S3Storage) URL(relativePath string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, s.objectKey(relativePath))
}

func (s *S3Storage) objectKey(relativePath string) string {
	key := strings.TrimLeft(relativePath, "/")
	if s.prefix == "" {
		return key
	}
	return path.Join(strings.Trim(s.prefix, "/"), key)
}

// NopPublisher yerel diske yazmanın ötesinde bir şey yapmaz
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, []entities.Artifact) error { return nil }
