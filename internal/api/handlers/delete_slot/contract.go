package delete_slot

import (
	"context"
)

type ScheduleService interface {
	DeleteSlot(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
