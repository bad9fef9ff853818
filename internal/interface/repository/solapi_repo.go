package repository

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/domain/repository"
	"guesthouse-ops-service/pkg/logger"
)

const (
	DefaultSolapiURL = "https://api.solapi.com/messages/v4/send-many/detail"
	isoMillisLayout  = "2006-01-02T15:04:05.000Z"
)

// SolapiMessageRepository sends text messages through the Solapi API
type SolapiMessageRepository struct {
	logger    logger.Logger
	client    *http.Client
	url       string
	apiKey    string
	apiSecret string
	now       func() time.Time
}

// NewSolapiMessageRepository creates a new Solapi message repository
func NewSolapiMessageRepository(url, apiKey, apiSecret string, timeout time.Duration, logger logger.Logger) repository.MessageRepository {
	if url == "" {
		url = DefaultSolapiURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SolapiMessageRepository{
		logger:    logger,
		client:    &http.Client{Timeout: timeout},
		url:       url,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

// Send posts the messages in one request. A rejected request is reported in the result, not as an error.
func (r *SolapiMessageRepository) Send(ctx context.Context, messages []entity.Message) (*entity.SendResult, error) {
	if r.apiKey == "" || r.apiSecret == "" {
		return nil, &entity.ConfigError{Keys: []string{"SOLAPI_API_KEY", "SOLAPI_API_SECRET"}}
	}

	type solapiMessage struct {
		To   string `json:"to"`
		From string `json:"from"`
		Text string `json:"text"`
	}
	body := struct {
		Messages []solapiMessage `json:"messages"`
	}{Messages: make([]solapiMessage, 0, len(messages))}
	for _, m := range messages {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("invalid message: %w", err)
		}
		body.Messages = append(body.Messages, solapiMessage{To: m.To, From: m.From, Text: m.Text})
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal messages: %w", err)
	}

	auth, err := r.authorization()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response struct {
		ErrorCode    string `json:"errorCode"`
		ErrorMessage string `json:"errorMessage"`
	}
	// Success bodies are not inspected; the status code decides
	_ = json.NewDecoder(resp.Body).Decode(&response)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := response.ErrorMessage
		if reason == "" {
			reason = fmt.Sprintf("HTTP Error: %d", resp.StatusCode)
		}
		r.logger.Warn("Solapi rejected messages", "status", resp.StatusCode, "errorCode", response.ErrorCode, "error", reason)
		return &entity.SendResult{Success: false, Error: reason}, nil
	}

	r.logger.Info("Messages sent", "count", len(messages))
	return &entity.SendResult{Success: true, Message: "Message sent successfully."}, nil
}

// authorization builds the HMAC-SHA256 header over date+salt
func (r *SolapiMessageRepository) authorization() (string, error) {
	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(saltBytes)
	date := r.now().UTC().Format(isoMillisLayout)

	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s",
		r.apiKey, date, salt, Signature(r.apiSecret, date, salt)), nil
}

// Signature is the hex HMAC-SHA256 of date+salt keyed by secret
func Signature(secret, date, salt string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(date + salt))
	return hex.EncodeToString(mac.Sum(nil))
}
