package experienceRepo

import (
	"context"
	"fmt"
	"slices"

	"github.com/komo3344/airbnb-backend/database/memory"
	"github.com/komo3344/airbnb-backend/models"
)

// MemoryExperienceRepo keeps experiences in process memory.
type MemoryExperienceRepo struct {
	experiences *memory.Table[models.Experience]
}

func NewMemoryExperienceRepo() *MemoryExperienceRepo {
	return &MemoryExperienceRepo{experiences: memory.NewTable[models.Experience]()}
}

func (m *MemoryExperienceRepo) Create(_ context.Context, experience *models.Experience) error {
	if !m.experiences.Insert(experience.ID, *experience, nil) {
		return fmt.Errorf("experience %s already exists", experience.ID)
	}
	return nil
}

func (m *MemoryExperienceRepo) GetByID(_ context.Context, id string) (*models.Experience, error) {
	experience, ok := m.experiences.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &experience, nil
}

func (m *MemoryExperienceRepo) GetAll(_ context.Context) ([]models.Experience, error) {
	experiences := m.experiences.All()
	slices.Reverse(experiences)
	return experiences, nil
}

func (m *MemoryExperienceRepo) Update(_ context.Context, experience *models.Experience) error {
	if !m.experiences.Replace(experience.ID, *experience) {
		return ErrNotFound
	}
	return nil
}

func (m *MemoryExperienceRepo) Delete(_ context.Context, id string) error {
	if !m.experiences.Delete(id) {
		return ErrNotFound
	}
	return nil
}
