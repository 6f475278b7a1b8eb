package idempotency

import (
	"context"
	"time"
)

// Record stores the serialized outcome of a previously applied mutation so a
// retried request with the same key returns the original result instead of
// re-applying the mutation.
type Record struct {
	Key       string
	Operation string
	Response  []byte
	CreatedAt time.Time
}

// Table defines the idempotency-key storage operations.
//
//go:generate mockery --name Table --output mock_Table.go
type Table interface {
	// Find returns the record for key, or nil when the key is unseen.
	Find(ctx context.Context, key string) (*Record, error)
	Insert(ctx context.Context, record *Record) error
}
