package userRepo

import (
	"context"
	"strings"
	"time"

	"github.com/komo3344/airbnb-backend/database/memory"
	"github.com/komo3344/airbnb-backend/models"
)

// MemoryUserRepo keeps users in process memory.
type MemoryUserRepo struct {
	users *memory.Table[models.User]
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: memory.NewTable[models.User]()}
}

func (m *MemoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m.users.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := m.users.Find(func(u models.User) bool { return u.Username == username })
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryUserRepo) Create(_ context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	ok := m.users.Insert(user.ID, *user, func(existing models.User) bool {
		return existing.Username == user.Username || strings.EqualFold(existing.Email, user.Email)
	})
	if !ok {
		return ErrDuplicate
	}
	return nil
}

func (m *MemoryUserRepo) Update(_ context.Context, user *models.User) error {
	_, clash := m.users.Find(func(existing models.User) bool {
		return existing.ID != user.ID &&
			(existing.Username == user.Username || strings.EqualFold(existing.Email, user.Email))
	})
	if clash {
		return ErrDuplicate
	}
	user.UpdatedAt = time.Now().UTC()
	if !m.users.Replace(user.ID, *user) {
		return ErrNotFound
	}
	return nil
}

func (m *MemoryUserRepo) UpdateTokenHash(_ context.Context, id, tokenHash string) error {
	u, ok := m.users.Get(id)
	if !ok {
		return ErrNotFound
	}
	u.TokenHash = tokenHash
	u.UpdatedAt = time.Now().UTC()
	m.users.Replace(id, u)
	return nil
}
