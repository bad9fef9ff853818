package usecase

import (
	"context"
	"errors"
	"fmt"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/pkg/logger"
)

// MessageService relays already composed messages through a channel
type MessageService struct {
	senders SenderRouter
	channel string
	logger  logger.Logger
}

// NewMessageService creates a pass-through message service
func NewMessageService(senders SenderRouter, channel string, logger logger.Logger) *MessageService {
	if channel == "" {
		channel = ChannelSMS
	}
	return &MessageService{senders: senders, channel: channel, logger: logger}
}

// Send delivers the messages and returns the provider outcome.
// Transport errors are folded into an unsuccessful result.
func (s *MessageService) Send(ctx context.Context, messages []entity.Message) (*entity.SendResult, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages to send")
	}
	for i, m := range messages {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}

	handler := s.senders.GetHandler(s.channel)
	if handler == nil {
		return nil, &entity.ConfigError{Keys: []string{"NOTIFY_CHANNEL"}}
	}

	result, err := handler.Send(ctx, messages)
	if err != nil {
		var configErr *entity.ConfigError
		if errors.As(err, &configErr) {
			return nil, err
		}
		s.logger.Error("Message relay failed", "channel", s.channel, "error", err)
		return &entity.SendResult{Success: false, Error: err.Error()}, nil
	}
	return result, nil
}
