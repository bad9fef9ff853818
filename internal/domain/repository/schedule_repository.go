package repository

import (
	"context"
	"guesthouse-ops-service/internal/domain/entity"
)

// ScheduleRepository defines the interface for reading the PMS schedule feed
type ScheduleRepository interface {
	// FetchSchedule returns the feed for [startDate, endDate), both YYYY-MM-DD
	FetchSchedule(ctx context.Context, startDate, endDate string) (*entity.ScheduleFeed, error)
}
