package port

import (
	"context"
	"io"
	"time"
)

// PutObjectInput describes one object written to the configured bucket.
type PutObjectInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// ObjectStorage abstracts the bucket holding candidate images.
type ObjectStorage interface {
	Put(ctx context.Context, input PutObjectInput) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
