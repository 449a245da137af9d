// Package kv defines the key-value persistence contract for all record
// collections: string keys mapping to JSON-encoded values, with get, set,
// delete and prefix-scan.
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	// Get returns the raw JSON value at key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set marshals value as JSON and overwrites key.
	Set(ctx context.Context, key string, value any) error

	// Del removes key. Deleting an absent key is not an error.
	Del(ctx context.Context, key string) error

	// GetByPrefix returns the raw JSON values of every key starting with
	// prefix, in no particular order. An empty result is not an error.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
