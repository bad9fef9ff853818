package repository

import (
	"context"
	"guesthouse-ops-service/internal/domain/entity"
)

// SendLogRepository defines the interface for the check-in send audit log
type SendLogRepository interface {
	Create(ctx context.Context, log *entity.SendLog) error
	FindByDay(ctx context.Context, dayKey string) ([]entity.SendLog, error)
}
