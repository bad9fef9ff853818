package repository

import "context"

// LedgerRepository defines the key-value storage of per-day send ledgers.
// A key maps to the rooms already notified on that day; a missing key is an empty list.
type LedgerRepository interface {
	Load(ctx context.Context, key string) ([]int, error)
	Save(ctx context.Context, key string, rooms []int) error
}
