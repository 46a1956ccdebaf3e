package reservationRepo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/availability"

	"github.com/google/uuid"
)

// MemoryReservationRepo keeps reservations in process memory. It applies the
// same overlap guard the postgres exclusion constraint does.
type MemoryReservationRepo struct {
	mu   sync.Mutex
	rows map[string]models.Reservation
}

// NewMemoryReservationRepo creates an empty in-memory store.
func NewMemoryReservationRepo() *MemoryReservationRepo {
	return &MemoryReservationRepo{rows: make(map[string]models.Reservation)}
}

func (m *MemoryReservationRepo) FetchReservations(ctx context.Context, subject models.Subject) ([]models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchLocked(subject), nil
}

func (m *MemoryReservationRepo) InsertReservation(ctx context.Context, r *models.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(r)
}

func (m *MemoryReservationRepo) Reserve(ctx context.Context, r *models.Reservation, check CheckFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := check(m.fetchLocked(r.Subject())); err != nil {
		return err
	}
	return m.insertLocked(r)
}

func (m *MemoryReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *MemoryReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Reservation{}
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b models.Reservation) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (m *MemoryReservationRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *MemoryReservationRepo) fetchLocked(subject models.Subject) []models.Reservation {
	out := []models.Reservation{}
	for _, r := range m.rows {
		if r.Subject() == subject {
			out = append(out, r)
		}
	}
	return out
}

func (m *MemoryReservationRepo) insertLocked(r *models.Reservation) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if _, dup := m.rows[r.ID]; dup {
		return fmt.Errorf("%w: duplicate id %s", availability.ErrConstraintViolation, r.ID)
	}
	span, ok := r.Span()
	if !ok {
		return fmt.Errorf("reservation %s has no dates for kind %q", r.ID, r.Kind)
	}
	for _, other := range m.fetchLocked(r.Subject()) {
		if taken, ok := other.Span(); ok && availability.Overlaps(taken, span) {
			return fmt.Errorf("%w: overlaps reservation %s", availability.ErrConstraintViolation, other.ID)
		}
	}
	m.rows[r.ID] = *r
	return nil
}
