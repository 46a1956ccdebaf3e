package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/komo3344/airbnb-backend/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewServeMux routes reminder tasks to their handler.
func NewServeMux(logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, HandleReminderTask(logger))
	return mux
}

// RunReminderWorker processes reminder tasks until ctx is cancelled. Startup
// is retried with a growing backoff.
func RunReminderWorker(ctx context.Context, redisOpt asynq.RedisClientOpt, logger *zap.Logger) error {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
	mux := NewServeMux(logger)

	const maxAttempts = 5
	for attempts := 1; ; attempts++ {
		err := srv.Start(mux)
		if err == nil {
			break
		}
		logger.Warn("Reminder worker failed to start", zap.Int("attempt", attempts), zap.Error(err))
		if attempts == maxAttempts {
			return fmt.Errorf("reminder worker: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempts*2) * time.Second):
		}
	}
	logger.Info("Reminder worker started")

	<-ctx.Done()
	srv.Shutdown()
	logger.Info("Reminder worker stopped")
	return nil
}

// HandleReminderTask logs the reminder for the guest. Delivery channels hang
// off this handler.
func HandleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("decode reminder: %v: %w", err, asynq.SkipRetry)
		}

		logger.Info("Booking reminder due",
			zap.String("reservationID", p.ReservationID),
			zap.String("userID", p.UserID),
			zap.String("kind", string(p.Kind)),
			zap.String("subjectID", p.SubjectID),
			zap.String("startDay", p.StartDay.String()),
		)
		return nil
	}
}
