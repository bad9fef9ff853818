package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormRoomRepository implements the RoomRepository interface
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GORM room repository
func NewGormRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &GormRoomRepository{
		db: db,
	}
}

// Rooms GORM model for database mapping
type Rooms struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"column:name"`
	Type      string `gorm:"column:room_type"`
	Special   string `gorm:"column:special"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Rooms) TableName() string {
	return "m_rooms"
}

func (m Rooms) toEntity() entity.Room {
	return entity.Room{
		ID:        m.ID,
		Name:      m.Name,
		Type:      m.Type,
		Special:   m.Special,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FindByNumber finds a room by its number
func (r *GormRoomRepository) FindByNumber(ctx context.Context, number int) (*entity.Room, error) {
	var room Rooms
	result := r.db.WithContext(ctx).Where("id = ?", number).First(&room)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrUnknownRoom
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find room %d: %w", number, result.Error)
	}

	found := room.toEntity()
	return &found, nil
}

// List returns every room ordered by number
func (r *GormRoomRepository) List(ctx context.Context) ([]entity.Room, error) {
	var rooms []Rooms
	result := r.db.WithContext(ctx).Order("id").Find(&rooms)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]entity.Room, 0, len(rooms))
	for _, room := range rooms {
		entities = append(entities, room.toEntity())
	}
	return entities, nil
}

// Seed inserts the given rooms when the table is empty
func (r *GormRoomRepository) Seed(ctx context.Context, rooms []entity.Room) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Rooms{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	models := make([]Rooms, 0, len(rooms))
	for _, room := range rooms {
		models = append(models, Rooms{ID: room.ID, Name: room.Name, Type: room.Type, Special: room.Special})
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

// StaticRoomRepository serves a fixed room catalog
type StaticRoomRepository struct {
	rooms []entity.Room
}

// NewStaticRoomRepository creates a room repository over rooms
func NewStaticRoomRepository(rooms []entity.Room) repository.RoomRepository {
	return &StaticRoomRepository{rooms: rooms}
}

// FindByNumber finds a room by its number
func (r *StaticRoomRepository) FindByNumber(_ context.Context, number int) (*entity.Room, error) {
	for i := range r.rooms {
		if int(r.rooms[i].ID) == number {
			room := r.rooms[i]
			return &room, nil
		}
	}
	return nil, entity.ErrUnknownRoom
}

// List returns the catalog
func (r *StaticRoomRepository) List(_ context.Context) ([]entity.Room, error) {
	return append([]entity.Room(nil), r.rooms...), nil
}
