package get_booking_slots

import (
	"context"

	"github.com/m04kA/CWT-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	BookableSlots(ctx context.Context, rawDate string) ([]models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
