package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded images live. The local filesystem
// implementation is the default; an S3-compatible bucket can be swapped in
// without touching the handlers.
type Storage interface {
	// Save stores the object and returns its public URL.
	// key is a unique path inside the store (e.g. "images/<uuid>.jpg").
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the object for key. A missing key is not an error.
	Delete(ctx context.Context, key string) error
}
