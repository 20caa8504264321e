package service

import (
	"context"
	"io"
)

// StorageService defines the interface for binary object storage, used for
// review photo uploads.
type StorageService interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket handle.
	Close() error
}
