package storage

import (
	"context"
	"io"
	"time"
)

type FileStorage interface {
	// Upload stores file under path and returns the storage key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file, missing files are not an error
	Delete(ctx context.Context, path string) error

	// GetURL returns a URL clients can fetch the file from
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	Exists(ctx context.Context, path string) (bool, error)
}
