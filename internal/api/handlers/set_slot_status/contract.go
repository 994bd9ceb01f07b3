package set_slot_status

import (
	"context"

	"github.com/m04kA/CWT-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	SetSlotStatus(ctx context.Context, req *models.SetSlotStatusRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
