// Package storage is the blob side of the media pipeline: private buckets
// holding uploaded files, read through time-limited signed URLs.
package storage

import (
	"context"
	"io"
	"time"
)

// SignedURLTTL is how long a generated read URL stays valid.
const SignedURLTTL = 365 * 24 * time.Hour

type BlobStore interface {
	// EnsureBuckets creates any missing buckets. Called once at startup.
	EnsureBuckets(ctx context.Context, buckets []string) error

	Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string) error

	// SignedURL returns a capability-bearing read URL for a stored blob.
	SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)

	Remove(ctx context.Context, bucket, path string) error
}
