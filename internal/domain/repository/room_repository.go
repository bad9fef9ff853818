package repository

import (
	"context"
	"guesthouse-ops-service/internal/domain/entity"
)

// RoomRepository defines the interface for the room catalog
type RoomRepository interface {
	FindByNumber(ctx context.Context, number int) (*entity.Room, error)
	List(ctx context.Context) ([]entity.Room, error)
}
