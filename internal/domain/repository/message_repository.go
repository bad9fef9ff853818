package repository

import (
	"context"
	"guesthouse-ops-service/internal/domain/entity"
)

// MessageRepository defines the interface for an outbound notification transport
type MessageRepository interface {
	Send(ctx context.Context, messages []entity.Message) (*entity.SendResult, error)
}
