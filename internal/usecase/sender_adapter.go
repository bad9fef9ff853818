package usecase

import (
	"context"
	"strings"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/domain/repository"
)

// Notification channels
const (
	ChannelSMS     = "sms"
	ChannelWebhook = "webhook"
)

// SenderAdapter adapts a MessageRepository to the SenderHandler interface
type SenderAdapter struct {
	repo     repository.MessageRepository
	name     string
	channels []string
}

// NewSenderAdapter creates a handler named name serving channels
func NewSenderAdapter(repo repository.MessageRepository, name string, channels []string) *SenderAdapter {
	return &SenderAdapter{
		repo:     repo,
		name:     name,
		channels: channels,
	}
}

// CanHandle checks if this handler serves the channel
func (a *SenderAdapter) CanHandle(channel string) bool {
	for _, c := range a.channels {
		if strings.EqualFold(strings.TrimSpace(channel), c) {
			return true
		}
	}
	return false
}

// Send delivers the messages through the wrapped repository
func (a *SenderAdapter) Send(ctx context.Context, messages []entity.Message) (*entity.SendResult, error) {
	return a.repo.Send(ctx, messages)
}

// String names the handler in logs
func (a *SenderAdapter) String() string {
	return a.name
}
