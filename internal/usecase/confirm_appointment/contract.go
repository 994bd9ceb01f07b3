package confirm_appointment

import (
	"context"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetForPeriod(ctx context.Context, date types.DateString, period domain.Period) (*domain.TimeSlot, error)
	Upsert(ctx context.Context, date types.DateString, period domain.Period, status domain.SlotStatus) (*domain.TimeSlot, error)
}

// QuoteRepository интерфейс репозитория заявок
type QuoteRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	SetConfirmed(ctx context.Context, id string) (*domain.Quote, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
