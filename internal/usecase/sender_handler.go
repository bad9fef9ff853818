package usecase

import (
	"context"

	"guesthouse-ops-service/internal/domain/entity"
)

// SenderHandler defines the interface for notification channel handlers
type SenderHandler interface {
	// CanHandle determines if this handler delivers the given channel
	CanHandle(channel string) bool

	// Send delivers the messages and reports the provider outcome
	Send(ctx context.Context, messages []entity.Message) (*entity.SendResult, error)
}

// SenderRouter routes messages to the handler of a channel
type SenderRouter interface {
	// Register registers a handler for its channels
	Register(handler SenderHandler)

	// GetHandler returns the handler for a given channel
	GetHandler(channel string) SenderHandler
}
