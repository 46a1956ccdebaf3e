package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/komo3344/airbnb-backend/config"
	"github.com/komo3344/airbnb-backend/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// ReminderPayload is the body of a booking reminder task.
type ReminderPayload struct {
	ReservationID string      `json:"reservation_id"`
	UserID        string      `json:"user_id"`
	Kind          models.Kind `json:"kind"`
	SubjectID     string      `json:"subject_id"`
	StartDay      models.Date `json:"start_day"`
}

// RedisOpt is the asynq connection built from REDIS_* settings.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ReminderTime is midnight of start in loc, moved back by lead.
func ReminderTime(start models.Date, loc *time.Location, lead time.Duration) time.Time {
	return start.In(loc).Add(-lead)
}

func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + payload.ReservationID),
		asynq.MaxRetry(5),
	}

	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderScheduler enqueues a reminder ahead of each accepted stay or experience.
type ReminderScheduler struct {
	Queue    Enqueuer
	Location *time.Location
	Lead     time.Duration
	Now      func() time.Time
}

// ScheduleReminder enqueues the reminder for r. It reports false without
// enqueuing when the fire time has already passed.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, r models.Reservation) (bool, error) {
	span, ok := r.Span()
	if !ok {
		return false, nil
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	fireAt := ReminderTime(span.Start, s.Location, s.Lead)
	if !fireAt.After(now()) {
		return false, nil
	}

	task, opts, err := NewReminderTask(ReminderPayload{
		ReservationID: r.ID,
		UserID:        r.UserID,
		Kind:          r.Kind,
		SubjectID:     r.Subject().ID,
		StartDay:      span.Start,
	}, fireAt)
	if err != nil {
		return false, err
	}
	if _, err := s.Queue.EnqueueContext(ctx, task, opts...); err != nil {
		return false, err
	}
	return true, nil
}
