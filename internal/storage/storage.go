package storage

import "context"

// ObjectStorage captures the minimal S3-compatible operations the expense
// receipt flow needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}
