package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandleReminderTask(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := HandleReminderTask(zap.New(core))

	day, _ := models.ParseDate("2030-06-10")
	b, _ := json.Marshal(tasks.ReminderPayload{ReservationID: "r-1", UserID: "u-1", Kind: models.KindRoom, SubjectID: "room-1", StartDay: day})
	if err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingReminder, b)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	entries := logs.FilterMessage("Booking reminder due").All()
	if len(entries) != 1 || entries[0].ContextMap()["startDay"] != "2030-06-10" {
		t.Fatalf("unexpected log entries %+v", entries)
	}

	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingReminder, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry for bad payload, got %v", err)
	}
}
