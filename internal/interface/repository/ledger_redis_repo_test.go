package repository

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, client
}

func TestRedisLedgerRepository(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	repo := NewRedisLedgerRepository(client, 48*time.Hour)

	rooms, err := repo.Load(ctx, "checkin-sent-2024-09-07")
	if err != nil || len(rooms) != 0 {
		t.Fatalf("Load() on missing key = %v, %v; want empty", rooms, err)
	}

	if err := repo.Save(ctx, "checkin-sent-2024-09-07", []int{2, 4}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	stored, err := server.Get("checkin-sent-2024-09-07")
	if err != nil {
		t.Fatalf("stored key missing: %v", err)
	}
	if stored != "[2,4]" {
		t.Errorf("stored value = %q, want JSON array [2,4]", stored)
	}
	if ttl := server.TTL("checkin-sent-2024-09-07"); ttl != 48*time.Hour {
		t.Errorf("TTL = %v, want 48h", ttl)
	}

	rooms, err = repo.Load(ctx, "checkin-sent-2024-09-07")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(rooms, []int{2, 4}) {
		t.Errorf("Load() = %v, want [2 4]", rooms)
	}

	other, err := repo.Load(ctx, "checkin-sent-2024-09-08")
	if err != nil || len(other) != 0 {
		t.Errorf("other day = %v, %v; want empty", other, err)
	}
}

func TestRedisLedgerRepositoryErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(server *miniredis.Miniredis)
	}{
		{
			name: "corrupt value",
			setup: func(server *miniredis.Miniredis) {
				server.Set("checkin-sent-2024-09-07", "not json")
			},
		},
		{
			name: "server down",
			setup: func(server *miniredis.Miniredis) {
				server.Close()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, client := newTestRedis(t)
			tt.setup(server)

			rooms, err := NewRedisLedgerRepository(client, time.Hour).Load(context.Background(), "checkin-sent-2024-09-07")
			if err == nil {
				t.Errorf("Load() = %v, want error", rooms)
			}
		})
	}
}
