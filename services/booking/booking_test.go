package booking

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	reservationRepo "github.com/komo3344/airbnb-backend/database/repository/reservation"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/availability"

	"go.uber.org/zap"
)

func day(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func datePtr(t *testing.T, s string) *models.Date {
	d := day(t, s)
	return &d
}

type recordingReminders struct {
	mu  sync.Mutex
	ids []string
	err error
}

func (r *recordingReminders) ScheduleReminder(_ context.Context, res models.Reservation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, res.ID)
	return r.err == nil, r.err
}

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type fixture struct {
	svc       *DefaultBookingService
	reminders *recordingReminders
	events    *recordingPublisher
	roomID    string
	expID     string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	rooms := roomRepo.NewMemoryRoomRepo()
	experiences := experienceRepo.NewMemoryExperienceRepo()
	if err := rooms.Create(ctx, &models.Room{ID: "room-1", OwnerID: "host", Name: "Loft"}); err != nil {
		t.Fatalf("create room: %v", err)
	}
	if err := experiences.Create(ctx, &models.Experience{
		ID:     "exp-1",
		HostID: "host",
		Name:   "Tea ceremony",
		Start:  day(t, "2030-03-01"),
		End:    day(t, "2030-03-10"),
	}); err != nil {
		t.Fatalf("create experience: %v", err)
	}
	f := fixture{
		reminders: &recordingReminders{},
		events:    &recordingPublisher{},
		roomID:    "room-1",
		expID:     "exp-1",
	}
	f.svc = &DefaultBookingService{
		Reservations: reservationRepo.NewMemoryReservationRepo(),
		Rooms:        rooms,
		Experiences:  experiences,
		Reminders:    f.reminders,
		Events:       f.events,
		PageSize:     10,
		Logger:       zap.NewNop(),
	}
	return f
}

func roomInput(t *testing.T, in, out string) RoomBookingInput {
	return RoomBookingInput{CheckIn: datePtr(t, in), CheckOut: datePtr(t, out), Guests: 2}
}

func TestEvaluateRoomBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(t, "2030-01-10")

	first, err := f.svc.EvaluateRoomBooking(ctx, f.roomID, "guest-1", roomInput(t, "2030-02-01", "2030-02-05"), today)
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if first.Kind != models.KindRoom || first.RoomID != f.roomID || first.UserID != "guest-1" {
		t.Fatalf("unexpected reservation %+v", first)
	}

	tests := []struct {
		name   string
		input  RoomBookingInput
		reason availability.Reason
	}{
		{"same-day handoff", roomInput(t, "2030-02-05", "2030-02-07"), availability.ReasonOverlap},
		{"enclosing", roomInput(t, "2030-01-30", "2030-02-10"), availability.ReasonOverlap},
		{"past check in", roomInput(t, "2030-01-09", "2030-01-12"), availability.ReasonPastDate},
		{"past check out before ordering", roomInput(t, "2030-01-11", "2030-01-09"), availability.ReasonPastDate},
		{"reversed", roomInput(t, "2030-04-05", "2030-04-01"), availability.ReasonBadOrdering},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.EvaluateRoomBooking(ctx, f.roomID, "guest-2", tt.input, today)
			reason, ok := availability.ReasonOf(err)
			if !ok || reason != tt.reason {
				t.Fatalf("expected %s, got %v", tt.reason, err)
			}
			if !IsRejection(err) {
				t.Fatalf("expected IsRejection for %v", err)
			}
		})
	}

	if _, err := f.svc.EvaluateRoomBooking(ctx, f.roomID, "guest-3", roomInput(t, "2030-02-06", "2030-02-06"), today); err != nil {
		t.Fatalf("single night after the stay should be free: %v", err)
	}
	if _, err := f.svc.EvaluateRoomBooking(ctx, f.roomID, "guest-3", roomInput(t, "2030-01-10", "2030-01-10"), today); err != nil {
		t.Fatalf("today is bookable: %v", err)
	}
}

func TestEvaluateRoomBookingInputErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(t, "2030-01-10")

	if _, err := f.svc.EvaluateRoomBooking(ctx, "missing", "guest", roomInput(t, "2030-02-01", "2030-02-02"), today); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	in := roomInput(t, "2030-02-01", "2030-02-02")
	in.Guests = 0
	if _, err := f.svc.EvaluateRoomBooking(ctx, f.roomID, "guest", in, today); !errors.Is(err, ErrInvalidGuests) {
		t.Fatalf("expected ErrInvalidGuests, got %v", err)
	}
	if _, err := f.svc.EvaluateRoomBooking(ctx, f.roomID, "guest", RoomBookingInput{Guests: 1}, today); !errors.Is(err, ErrMissingDates) {
		t.Fatalf("expected ErrMissingDates, got %v", err)
	}
}

func TestAcceptanceSurvivesSideEffectFailures(t *testing.T) {
	f := newFixture(t)
	f.reminders.err = errors.New("queue down")
	f.events.err = errors.New("broker down")

	r, err := f.svc.EvaluateRoomBooking(context.Background(), f.roomID, "guest", roomInput(t, "2030-02-01", "2030-02-02"), day(t, "2030-01-10"))
	if err != nil {
		t.Fatalf("booking should be accepted: %v", err)
	}
	if len(f.reminders.ids) != 1 || f.reminders.ids[0] != r.ID {
		t.Fatalf("reminder not attempted: %v", f.reminders.ids)
	}
	if len(f.events.keys) != 1 || f.events.keys[0] != "booking.accepted" {
		t.Fatalf("event not attempted: %v", f.events.keys)
	}
	if _, err := f.svc.GetBooking(context.Background(), r.ID); err != nil {
		t.Fatalf("accepted booking not stored: %v", err)
	}
}

func TestConcurrentRoomBookingsAcceptOne(t *testing.T) {
	f := newFixture(t)
	today := day(t, "2030-01-10")

	input := roomInput(t, "2030-05-01", "2030-05-03")

	const workers = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		overlaps int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.EvaluateRoomBooking(context.Background(), f.roomID, "guest", input, today)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, availability.ErrOverlap):
				overlaps++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if accepted != 1 || overlaps != workers-1 {
		t.Fatalf("accepted=%d overlaps=%d", accepted, overlaps)
	}
}

// raceLosingRepo reports every write as refused by the store itself.
type raceLosingRepo struct {
	reservationRepo.ReservationRepository
}

func (raceLosingRepo) Reserve(context.Context, *models.Reservation, reservationRepo.CheckFunc) error {
	return availability.ErrConstraintViolation
}

func TestStoreConstraintSurfacesAsOverlap(t *testing.T) {
	f := newFixture(t)
	f.svc.Reservations = raceLosingRepo{}

	_, err := f.svc.EvaluateRoomBooking(context.Background(), f.roomID, "guest", roomInput(t, "2030-02-01", "2030-02-02"), day(t, "2030-01-10"))
	if reason, _ := availability.ReasonOf(err); reason != availability.ReasonOverlap {
		t.Fatalf("expected overlap, got %v", err)
	}
	if !errors.Is(err, availability.ErrConstraintViolation) || !errors.Is(err, availability.ErrOverlap) {
		t.Fatalf("expected both sentinels in chain, got %v", err)
	}
	if len(f.reminders.ids) != 0 || len(f.events.keys) != 0 {
		t.Fatal("side effects ran for a refused booking")
	}
}

func TestEvaluateExperienceBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := func(s string) ExperienceBookingInput {
		return ExperienceBookingInput{ExperienceTime: datePtr(t, s), Guests: 1}
	}
	if _, err := f.svc.EvaluateExperienceBooking(ctx, f.expID, "guest-1", in("2030-03-01")); err != nil {
		t.Fatalf("first day of window: %v", err)
	}
	if _, err := f.svc.EvaluateExperienceBooking(ctx, f.expID, "guest-1", in("2030-03-10")); err != nil {
		t.Fatalf("last day of window: %v", err)
	}

	tests := []struct {
		name   string
		day    string
		reason availability.Reason
	}{
		{"before window", "2030-02-28", availability.ReasonOutOfWindow},
		{"after window", "2030-03-11", availability.ReasonOutOfWindow},
		{"taken day", "2030-03-01", availability.ReasonOverlap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.EvaluateExperienceBooking(ctx, f.expID, "guest-2", in(tt.day))
			if reason, _ := availability.ReasonOf(err); reason != tt.reason {
				t.Fatalf("expected %s, got %v", tt.reason, err)
			}
		})
	}

	if _, err := f.svc.EvaluateExperienceBooking(ctx, "missing", "guest", in("2030-03-02")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQueryRoomBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bookedOn := day(t, "2030-01-01")
	for _, iv := range [][2]string{
		{"2030-03-01", "2030-03-02"},
		{"2030-02-10", "2030-02-12"},
		{"2030-02-01", "2030-02-03"},
	} {
		if _, err := f.svc.EvaluateRoomBooking(ctx, f.roomID, "guest", roomInput(t, iv[0], iv[1]), bookedOn); err != nil {
			t.Fatalf("seed %v: %v", iv, err)
		}
	}
	today := day(t, "2030-01-15")

	page, err := f.svc.QueryRoomBookings(ctx, f.roomID, availability.ChainFromQuery(lookup(url.Values{"month": {"2030-02"}})), today, 1)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if page.Count != 2 || len(page.Results) != 2 {
		t.Fatalf("expected the two February stays, got %+v", page)
	}
	if *page.Results[0].CheckIn != day(t, "2030-02-01") || *page.Results[1].CheckIn != day(t, "2030-02-10") {
		t.Fatalf("results not ordered by check in: %+v", page.Results)
	}

	page, err = f.svc.QueryRoomBookings(ctx, f.roomID, availability.ChainFromQuery(lookup(url.Values{})), today, 1)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if page.Count != 3 {
		t.Fatalf("absent filters should keep future stays, got %d", page.Count)
	}

	page, err = f.svc.QueryRoomBookings(ctx, f.roomID, availability.ChainFromQuery(lookup(url.Values{})), today, 5)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if page.Count != 3 || len(page.Results) != 0 {
		t.Fatalf("page past the end should be empty, got %+v", page)
	}

	if _, err := f.svc.QueryRoomBookings(ctx, "missing", nil, today, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func lookup(v url.Values) func(string) (string, bool) {
	return func(key string) (string, bool) {
		vals, ok := v[key]
		if !ok || len(vals) == 0 {
			return "", false
		}
		return vals[0], true
	}
}

func TestListExperienceBookingsUpcoming(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, d := range []string{"2030-03-05", "2030-03-02", "2030-03-04"} {
		if _, err := f.svc.EvaluateExperienceBooking(ctx, f.expID, "guest", ExperienceBookingInput{ExperienceTime: datePtr(t, d), Guests: 1}); err != nil {
			t.Fatalf("seed %s: %v", d, err)
		}
	}

	page, err := f.svc.ListExperienceBookings(ctx, f.expID, day(t, "2030-03-04"), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Count != 2 || *page.Results[0].ExperienceTime != day(t, "2030-03-04") || *page.Results[1].ExperienceTime != day(t, "2030-03-05") {
		t.Fatalf("unexpected upcoming list %+v", page.Results)
	}
}

func TestCancelBookingIsNotImplemented(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r, err := f.svc.EvaluateRoomBooking(ctx, f.roomID, "guest", roomInput(t, "2030-02-01", "2030-02-02"), day(t, "2030-01-10"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if err := f.svc.CancelBooking(ctx, r.ID, "guest"); !errors.Is(err, ErrCancellationNotImplemented) {
		t.Fatalf("expected ErrCancellationNotImplemented, got %v", err)
	}
	if _, err := f.svc.GetBooking(ctx, r.ID); err != nil {
		t.Fatalf("booking should survive a cancel request: %v", err)
	}
	if err := f.svc.CancelBooking(ctx, "missing", "guest"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	mine, err := f.svc.ListMyBookings(ctx, "guest")
	if err != nil || len(mine) != 1 {
		t.Fatalf("ListMyBookings = %v, %v", mine, err)
	}
	none, err := f.svc.ListMyBookings(ctx, "nobody")
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %v, %v", none, err)
	}
}
