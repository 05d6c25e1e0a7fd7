package blobstore

import "context"

// Uploader defines the interface for persisting media blobs. Source frames and
// rendered screenshots are uploaded here before any credits are spent on them.
type Uploader interface {
	// Upload stores the body under the given key and returns a retrievable URL.
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}
