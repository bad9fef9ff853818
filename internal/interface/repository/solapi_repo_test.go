package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/logger"
)

var authHeaderRe = regexp.MustCompile(`^HMAC-SHA256 apiKey=key, date=(\S+), salt=([0-9a-f]{32}), signature=([0-9a-f]{64})$`)

func TestSignature(t *testing.T) {
	a := Signature("secret", "2024-09-07T00:00:00.000Z", "salt")
	b := Signature("secret", "2024-09-07T00:00:00.000Z", "salt")
	c := Signature("other", "2024-09-07T00:00:00.000Z", "salt")

	if a != b {
		t.Error("signature must be deterministic")
	}
	if a == c {
		t.Error("signature must depend on the secret")
	}
	if len(a) != 64 {
		t.Errorf("signature length = %d, want 64 hex chars", len(a))
	}
}

func TestSolapiMessageRepository_Send(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantSuccess bool
		wantError   string
	}{
		{"accepted", http.StatusOK, `{"groupId":"g1"}`, true, ""},
		{"rejected with message", http.StatusBadRequest, `{"errorCode":"ValidationError","errorMessage":"invalid from"}`, false, "invalid from"},
		{"rejected without body", http.StatusInternalServerError, ``, false, "HTTP Error: 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				match := authHeaderRe.FindStringSubmatch(r.Header.Get("Authorization"))
				if match == nil {
					t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
				} else if match[3] != Signature("secret", match[1], match[2]) {
					t.Error("signature does not verify")
				}

				var body struct {
					Messages []map[string]string `json:"messages"`
				}
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("decode body: %v", err)
				}
				if len(body.Messages) != 1 || body.Messages[0]["to"] != "01012345678" {
					t.Errorf("messages = %v", body.Messages)
				}

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			repo := NewSolapiMessageRepository(server.URL, "key", "secret", time.Second, logger.NewNopLogger())
			result, err := repo.Send(context.Background(), []entity.Message{{To: "01012345678", From: "0212345678", Text: "hi"}})
			if err != nil {
				t.Fatalf("Send() error = %v", err)
			}
			if result.Success != tt.wantSuccess || result.Error != tt.wantError {
				t.Errorf("Send() = %+v", result)
			}
		})
	}
}

func TestSolapiMessageRepository_Validation(t *testing.T) {
	repo := NewSolapiMessageRepository("http://127.0.0.1:0", "", "", time.Second, logger.NewNopLogger())
	_, err := repo.Send(context.Background(), []entity.Message{{To: "1", From: "2", Text: "x"}})
	var configErr *entity.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("error = %v, want *entity.ConfigError", err)
	}

	repo = NewSolapiMessageRepository("http://127.0.0.1:0", "key", "secret", time.Second, logger.NewNopLogger())
	if _, err := repo.Send(context.Background(), []entity.Message{{To: "1", Text: "x"}}); err == nil {
		t.Error("expected validation error for a message without sender")
	}
}
