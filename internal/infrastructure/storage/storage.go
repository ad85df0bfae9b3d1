package storage

import (
	"context"
	"io"
	"time"
)

// BlobStorage is the durable object store holding uploaded résumés.
type BlobStorage interface {
	Upload(ctx context.Context, key string, data io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// SignedURL mints a time-limited read URL for the given blob.
	SignedURL(key string, expiry time.Duration) (string, error)
}
