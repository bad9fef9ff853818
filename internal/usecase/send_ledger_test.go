package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestSendLedger(t *testing.T) {
	ctx := context.Background()
	store := newFakeLedger()
	ledger := NewSendLedger(store)
	today := at("2024-09-07")

	for _, room := range []int{7, 4, 7} {
		if err := ledger.MarkSent(ctx, room, today); err != nil {
			t.Fatalf("MarkSent(%d) error: %v", room, err)
		}
	}

	got, err := ledger.SentRooms(ctx, today)
	if err != nil {
		t.Fatalf("SentRooms error: %v", err)
	}
	if want := []int{4, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("SentRooms = %v, want %v", got, want)
	}

	tests := []struct {
		name string
		room int
		day  string
		want bool
	}{
		{name: "sent today", room: 4, day: "2024-09-07", want: true},
		{name: "other room", room: 5, day: "2024-09-07", want: false},
		{name: "next day starts empty", room: 4, day: "2024-09-08", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sent, err := ledger.HasSent(ctx, tt.room, at(tt.day))
			if err != nil {
				t.Fatalf("HasSent error: %v", err)
			}
			if sent != tt.want {
				t.Errorf("HasSent(%d, %s) = %v, want %v", tt.room, tt.day, sent, tt.want)
			}
		})
	}
}

func TestSendLedgerStoreErrors(t *testing.T) {
	ctx := context.Background()

	store := newFakeLedger()
	store.loadErr = errBoom
	if _, err := NewSendLedger(store).HasSent(ctx, 1, at("2024-09-07")); !errors.Is(err, errBoom) {
		t.Errorf("HasSent error = %v, want wrapped %v", err, errBoom)
	}

	store = newFakeLedger()
	store.saveErr = errBoom
	if err := NewSendLedger(store).MarkSent(ctx, 1, at("2024-09-07")); !errors.Is(err, errBoom) {
		t.Errorf("MarkSent error = %v, want wrapped %v", err, errBoom)
	}
}
