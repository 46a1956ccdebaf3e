package catalogRepo

import (
	"context"
	"fmt"

	"github.com/komo3344/airbnb-backend/database/memory"
	"github.com/komo3344/airbnb-backend/models"
)

// MemoryRepo keeps catalog entries in process memory.
type MemoryRepo[T Entry] struct {
	rows *memory.Table[T]
}

func NewMemoryRepo[T Entry]() *MemoryRepo[T] {
	return &MemoryRepo[T]{rows: memory.NewTable[T]()}
}

func NewMemoryAmenityRepo() AmenityRepository { return NewMemoryRepo[models.Amenity]() }

func NewMemoryPerkRepo() PerkRepository { return NewMemoryRepo[models.Perk]() }

func (m *MemoryRepo[T]) Create(_ context.Context, entry *T) error {
	id := idOf(*entry)
	if !m.rows.Insert(id, *entry, nil) {
		return fmt.Errorf("catalog entry %s already exists", id)
	}
	return nil
}

func (m *MemoryRepo[T]) GetByID(_ context.Context, id string) (*T, error) {
	entry, ok := m.rows.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

func (m *MemoryRepo[T]) GetAll(_ context.Context) ([]T, error) {
	return m.rows.All(), nil
}

func (m *MemoryRepo[T]) GetMany(_ context.Context, ids []string) ([]T, error) {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if entry, ok := m.rows.Get(id); ok {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (m *MemoryRepo[T]) Update(_ context.Context, entry *T) error {
	if !m.rows.Replace(idOf(*entry), *entry) {
		return ErrNotFound
	}
	return nil
}

func (m *MemoryRepo[T]) Delete(_ context.Context, id string) error {
	if !m.rows.Delete(id) {
		return ErrNotFound
	}
	return nil
}
