package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/logger"
	"guesthouse-ops-service/templates"
)

const (
	EventCheckInMessage = "check_in_message"
	EventMessage        = "message"
	EventWebhookTest    = "webhook_test"
)

type webhookRoom struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type webhookPayload struct {
	Event     string       `json:"event"`
	Timestamp string       `json:"timestamp"`
	Room      *webhookRoom `json:"room,omitempty"`
	To        string       `json:"to,omitempty"`
	Text      string       `json:"text,omitempty"`
	Message   string       `json:"message"`
}

// WebhookMessageRepository relays messages to a generic automation webhook
type WebhookMessageRepository struct {
	logger logger.Logger
	client *http.Client
	url    string
	apiKey string
	now    func() time.Time
}

// NewWebhookMessageRepository creates a new webhook message repository
func NewWebhookMessageRepository(url, apiKey string, timeout time.Duration, logger logger.Logger) *WebhookMessageRepository {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WebhookMessageRepository{
		logger: logger,
		client: &http.Client{Timeout: timeout},
		url:    url,
		apiKey: apiKey,
		now:    time.Now,
	}
}

// Send posts one event per message; check-in messages carry their room
func (r *WebhookMessageRepository) Send(ctx context.Context, messages []entity.Message) (*entity.SendResult, error) {
	if r.url == "" {
		return nil, &entity.ConfigError{Keys: []string{"WEBHOOK_URL"}}
	}

	for _, m := range messages {
		payload := webhookPayload{
			Event:     EventMessage,
			Timestamp: r.now().UTC().Format(isoMillisLayout),
			To:        m.To,
			Text:      m.Text,
			Message:   m.Text,
		}
		if m.Room != nil {
			payload.Event = EventCheckInMessage
			payload.Room = &webhookRoom{ID: m.Room.ID, Name: m.Room.Name, Type: m.Room.Type}
			payload.Message = templates.CheckInRelayNote(*m.Room)
		}

		if result, err := r.post(ctx, payload); err != nil || !result.Success {
			return result, err
		}
	}

	return &entity.SendResult{Success: true, Message: "웹훅 전송이 완료되었습니다."}, nil
}

// Ping sends a test event to check the webhook is reachable
func (r *WebhookMessageRepository) Ping(ctx context.Context) (*entity.SendResult, error) {
	if r.url == "" {
		return &entity.SendResult{Success: false, Error: "웹훅 URL이 설정되지 않았습니다."}, nil
	}
	result, err := r.post(ctx, webhookPayload{
		Event:     EventWebhookTest,
		Timestamp: r.now().UTC().Format(isoMillisLayout),
		Message:   "웹훅 연결 테스트입니다.",
	})
	if err != nil || !result.Success {
		return result, err
	}
	return &entity.SendResult{Success: true, Message: "웹훅 연결이 정상적으로 작동합니다."}, nil
}

func (r *WebhookMessageRepository) post(ctx context.Context, payload webhookPayload) (*entity.SendResult, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.apiKey != "" {
		req.Header.Set("x-make-apikey", r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Warn("Webhook returned error status", "status", resp.StatusCode, "event", payload.Event)
		return &entity.SendResult{Success: false, Error: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))}, nil
	}

	r.logger.Info("Webhook event delivered", "event", payload.Event)
	return &entity.SendResult{Success: true}, nil
}
