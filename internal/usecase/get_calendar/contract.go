package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListForMonth(ctx context.Context, year int, month time.Month) ([]*domain.TimeSlot, error)
}

// QuoteRepository интерфейс репозитория заявок
type QuoteRepository interface {
	FindForMonth(ctx context.Context, year int, month time.Month) ([]*domain.Quote, error)
}

// UserRepository интерфейс репозитория пользователей (только чтение)
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
