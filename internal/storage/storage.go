package storage

import (
	"context"
	"errors"
)

// DocumentKey is the fixed key the serialized Document is stored under,
// regardless of backend. It matches the record name the web shell used.
const DocumentKey = "linolvt_portfolio_data"

// ErrNotFound is returned by Read when no record exists yet.
var ErrNotFound = errors.New("storage: record not found")

// Backend stores a single serialized Document blob under DocumentKey.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Read returns the stored blob, or ErrNotFound when absent.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored blob.
	Write(ctx context.Context, data []byte) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
	Name() string
}
