package blobstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used by the store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store implements Uploader using AWS S3.
type S3Store struct {
	Client  S3API
	Bucket  string
	BaseURL string
}

// NewS3Store creates a new S3Store. baseURL overrides the default virtual-host
// URL, e.g. when a CDN fronts the bucket.
func NewS3Store(client S3API, bucket, baseURL string) *S3Store {
	return &S3Store{Client: client, Bucket: bucket, BaseURL: baseURL}
}

// Make sure we conform to the interface
var _ Uploader = (*S3Store)(nil)

// Upload stores the body in the bucket and returns a retrievable URL.
func (s *S3Store) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object to S3: %w", err)
	}

	if s.BaseURL != "" {
		return fmt.Sprintf("%s/%s", s.BaseURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.Bucket, key), nil
}
