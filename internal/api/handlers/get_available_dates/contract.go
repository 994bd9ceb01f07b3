package get_available_dates

import (
	"context"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

type ScheduleService interface {
	AvailableDates(ctx context.Context, ref domain.MonthRef) ([]types.DateString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
