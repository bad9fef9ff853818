package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"guesthouse-ops-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// RedisLedgerRepository stores each day's ledger as a JSON array under its day key
type RedisLedgerRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLedgerRepository creates a Redis backed ledger store.
// Keys expire after ttl; zero keeps them forever.
func NewRedisLedgerRepository(client *redis.Client, ttl time.Duration) repository.LedgerRepository {
	return &RedisLedgerRepository{client: client, ttl: ttl}
}

// Load reads the rooms stored under key; a missing key is an empty ledger
func (r *RedisLedgerRepository) Load(ctx context.Context, key string) ([]int, error) {
	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET error: %w", err)
	}
	if data == "" {
		return nil, nil
	}

	var rooms []int
	if err := json.Unmarshal([]byte(data), &rooms); err != nil {
		return nil, fmt.Errorf("invalid ledger %s: %w", key, err)
	}
	return rooms, nil
}

// Save overwrites the ledger stored under key
func (r *RedisLedgerRepository) Save(ctx context.Context, key string, rooms []int) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis SET error: %w", err)
	}
	return nil
}
