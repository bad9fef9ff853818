package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"guesthouse-ops-service/internal/domain/repository"
	"guesthouse-ops-service/pkg/utils"
)

// SendLedger records which rooms received their check-in message on each day
type SendLedger struct {
	repo repository.LedgerRepository
}

// NewSendLedger creates a ledger over the given store
func NewSendLedger(repo repository.LedgerRepository) *SendLedger {
	return &SendLedger{repo: repo}
}

// SentRooms returns the rooms already notified on the day of now, ascending
func (l *SendLedger) SentRooms(ctx context.Context, now time.Time) ([]int, error) {
	rooms, err := l.repo.Load(ctx, utils.TodayKey(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load send ledger: %w", err)
	}
	sorted := append([]int{}, rooms...)
	sort.Ints(sorted)
	return sorted, nil
}

// HasSent reports whether room was already notified on the day of now
func (l *SendLedger) HasSent(ctx context.Context, room int, now time.Time) (bool, error) {
	rooms, err := l.SentRooms(ctx, now)
	if err != nil {
		return false, err
	}
	for _, r := range rooms {
		if r == room {
			return true, nil
		}
	}
	return false, nil
}

// MarkSent adds room to the ledger of the day of now and overwrites the stored entry
func (l *SendLedger) MarkSent(ctx context.Context, room int, now time.Time) error {
	rooms, err := l.SentRooms(ctx, now)
	if err != nil {
		return err
	}
	for _, r := range rooms {
		if r == room {
			return nil
		}
	}

	rooms = append(rooms, room)
	sort.Ints(rooms)
	if err := l.repo.Save(ctx, utils.TodayKey(now), rooms); err != nil {
		return fmt.Errorf("failed to save send ledger: %w", err)
	}
	return nil
}
