package repository

import (
	"context"
	"sync"

	"guesthouse-ops-service/internal/domain/repository"
)

// MemoryLedgerRepository keeps send ledgers in process memory
type MemoryLedgerRepository struct {
	mu      sync.RWMutex
	entries map[string][]int
}

// NewMemoryLedgerRepository creates an empty in-memory ledger store
func NewMemoryLedgerRepository() repository.LedgerRepository {
	return &MemoryLedgerRepository{entries: make(map[string][]int)}
}

// Load returns a copy of the rooms stored under key
func (r *MemoryLedgerRepository) Load(_ context.Context, key string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]int(nil), r.entries[key]...), nil
}

// Save overwrites the rooms stored under key
func (r *MemoryLedgerRepository) Save(_ context.Context, key string, rooms []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = append([]int(nil), rooms...)
	return nil
}
