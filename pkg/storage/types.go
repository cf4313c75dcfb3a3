package storage

import (
	"context"
	"time"
)

// Slot is a string value addressed by a fixed key.
type Slot interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SlotInfo describes one occupied slot.
type SlotInfo struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

var (
	_ Slot = (*DB)(nil)
	_ Slot = (*Memory)(nil)
)
