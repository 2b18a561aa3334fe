package service

import (
	"context"
	"io"
)

// PhotoStorage stores photo binaries by key.
type PhotoStorage interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (int64, error)

	// Open returns a reader for key. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	Delete(ctx context.Context, key string) error

	// URL returns the public path key is served from.
	URL(key string) string
}
