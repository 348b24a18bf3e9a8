package service

import "context"

// PhotoStorage defines blob storage for uploaded photos.
type PhotoStorage interface {
	// Upload writes the photo under the given key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, data []byte) (string, error)

	// Delete removes a previously uploaded photo by key.
	Delete(ctx context.Context, key string) error
}
