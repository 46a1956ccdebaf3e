package roomRepo

import (
	"context"
	"fmt"
	"slices"

	"github.com/komo3344/airbnb-backend/database/memory"
	"github.com/komo3344/airbnb-backend/models"
)

// MemoryRoomRepo keeps rooms in process memory.
type MemoryRoomRepo struct {
	rooms *memory.Table[models.Room]
}

func NewMemoryRoomRepo() *MemoryRoomRepo {
	return &MemoryRoomRepo{rooms: memory.NewTable[models.Room]()}
}

func (m *MemoryRoomRepo) Create(_ context.Context, room *models.Room) error {
	if !m.rooms.Insert(room.ID, *room, nil) {
		return fmt.Errorf("room %s already exists", room.ID)
	}
	return nil
}

func (m *MemoryRoomRepo) GetByID(_ context.Context, id string) (*models.Room, error) {
	room, ok := m.rooms.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (m *MemoryRoomRepo) GetAll(_ context.Context) ([]models.Room, error) {
	rooms := m.rooms.All()
	slices.Reverse(rooms)
	return rooms, nil
}

func (m *MemoryRoomRepo) Update(_ context.Context, room *models.Room) error {
	if !m.rooms.Replace(room.ID, *room) {
		return ErrNotFound
	}
	return nil
}

func (m *MemoryRoomRepo) Delete(_ context.Context, id string) error {
	if !m.rooms.Delete(id) {
		return ErrNotFound
	}
	return nil
}
