package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/logger"
)

func TestWebhookMessageRepository_Send(t *testing.T) {
	var got webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-make-apikey") != "make-key" {
			t.Errorf("x-make-apikey = %q", r.Header.Get("x-make-apikey"))
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := NewWebhookMessageRepository(server.URL, "make-key", time.Second, logger.NewNopLogger())
	room := &entity.Room{ID: 2, Name: "stone", Type: "단층"}

	result, err := repo.Send(context.Background(), []entity.Message{{To: "010", From: "02", Text: "hello", Room: room}})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !result.Success {
		t.Errorf("Send() = %+v", result)
	}
	if got.Event != EventCheckInMessage || got.Room == nil || got.Room.ID != 2 {
		t.Errorf("payload = %+v", got)
	}
	if got.Message != "stone (단층) 객실의 체크인 메시지가 발송되었습니다." {
		t.Errorf("message = %q", got.Message)
	}
}

func TestWebhookMessageRepository_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	repo := NewWebhookMessageRepository(server.URL, "", time.Second, logger.NewNopLogger())
	result, err := repo.Send(context.Background(), []entity.Message{{To: "010", From: "02", Text: "hello"}})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if result.Success || result.Error != "HTTP 401: Unauthorized" {
		t.Errorf("Send() = %+v", result)
	}
}

func TestWebhookMessageRepository_Ping(t *testing.T) {
	var event string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p webhookPayload
		json.NewDecoder(r.Body).Decode(&p)
		event = p.Event
	}))
	defer server.Close()

	repo := NewWebhookMessageRepository(server.URL, "", time.Second, logger.NewNopLogger())
	result, err := repo.Ping(context.Background())
	if err != nil || !result.Success {
		t.Fatalf("Ping() = %+v, %v", result, err)
	}
	if event != EventWebhookTest {
		t.Errorf("event = %q, want %q", event, EventWebhookTest)
	}

	unset := NewWebhookMessageRepository("", "", time.Second, logger.NewNopLogger())
	if result, _ := unset.Ping(context.Background()); result.Success {
		t.Error("Ping() without URL should fail")
	}
}
