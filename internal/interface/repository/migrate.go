package repository

import (
	"context"
	"fmt"

	"guesthouse-ops-service/internal/domain/entity"

	"gorm.io/gorm"
)

// Migrate creates the room catalog and send log tables and seeds the catalog when empty
func Migrate(ctx context.Context, db *gorm.DB, rooms []entity.Room) error {
	if err := db.WithContext(ctx).AutoMigrate(&Rooms{}, &SendLogs{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	seeder := &GormRoomRepository{db: db}
	if err := seeder.Seed(ctx, rooms); err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}
	return nil
}
