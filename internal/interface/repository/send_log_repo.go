package repository

import (
	"context"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormSendLogRepository implements the SendLogRepository interface
type GormSendLogRepository struct {
	db *gorm.DB
}

// NewGormSendLogRepository creates a new GORM send log repository
func NewGormSendLogRepository(db *gorm.DB) repository.SendLogRepository {
	return &GormSendLogRepository{
		db: db,
	}
}

// SendLogs GORM model for database mapping
type SendLogs struct {
	gorm.Model
	RequestID  string `gorm:"column:request_id;index"`
	RoomNumber int    `gorm:"column:room_number"`
	DayKey     string `gorm:"column:day_key;index"`
	Phone      string `gorm:"column:phone"`
	Channel    string `gorm:"column:channel"`
	Status     string `gorm:"column:status"`
	Error      string `gorm:"column:error"`
}

// TableName overrides the default table name
func (SendLogs) TableName() string {
	return "checkin_send_logs"
}

// Create inserts a new send log into the database
func (r *GormSendLogRepository) Create(ctx context.Context, log *entity.SendLog) error {
	model := SendLogs{
		RequestID:  log.RequestID,
		RoomNumber: log.RoomNumber,
		DayKey:     log.DayKey,
		Phone:      log.Phone,
		Channel:    log.Channel,
		Status:     log.Status,
		Error:      log.Error,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	// Update the entity with the generated ID
	log.ID = model.ID
	log.CreatedAt = model.CreatedAt

	return nil
}

// FindByDay returns the send logs of one day key, oldest first
func (r *GormSendLogRepository) FindByDay(ctx context.Context, dayKey string) ([]entity.SendLog, error) {
	var logs []SendLogs
	result := r.db.WithContext(ctx).Where("day_key = ?", dayKey).Order("created_at").Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]entity.SendLog, 0, len(logs))
	for _, l := range logs {
		entities = append(entities, entity.SendLog{
			ID:         l.ID,
			RequestID:  l.RequestID,
			RoomNumber: l.RoomNumber,
			DayKey:     l.DayKey,
			Phone:      l.Phone,
			Channel:    l.Channel,
			Status:     l.Status,
			Error:      l.Error,
			CreatedAt:  l.CreatedAt,
		})
	}
	return entities, nil
}
