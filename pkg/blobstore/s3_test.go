package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

type fakeS3 struct {
	err      error
	lastKey  string
	lastType string
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastKey = *params.Key
	f.lastType = *params.ContentType
	return &s3.PutObjectOutput{}, nil
}

func TestUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := &fakeS3{}
		store := NewS3Store(client, "clipframe-media", "")

		url, err := store.Upload(context.Background(), "frames/job-1.png", "image/png", []byte("fake-png"))

		assert.NoError(t, err)
		assert.Equal(t, "https://clipframe-media.s3.amazonaws.com/frames/job-1.png", url)
		assert.Equal(t, "frames/job-1.png", client.lastKey)
		assert.Equal(t, "image/png", client.lastType)
	})

	t.Run("Base URL Override", func(t *testing.T) {
		client := &fakeS3{}
		store := NewS3Store(client, "clipframe-media", "https://cdn.clipframe.dev")

		url, err := store.Upload(context.Background(), "frames/job-1.png", "image/png", []byte("fake-png"))

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.clipframe.dev/frames/job-1.png", url)
	})

	t.Run("Storage Error", func(t *testing.T) {
		client := &fakeS3{err: errors.New("access denied")}
		store := NewS3Store(client, "clipframe-media", "")

		_, err := store.Upload(context.Background(), "frames/job-1.png", "image/png", []byte("fake-png"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object to S3")
	})
}
