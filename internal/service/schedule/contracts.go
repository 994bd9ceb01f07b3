package schedule

import (
	"context"
	"time"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListForDate(ctx context.Context, date types.DateString) ([]*domain.TimeSlot, error)
	ListForMonth(ctx context.Context, year int, month time.Month) ([]*domain.TimeSlot, error)
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	Upsert(ctx context.Context, date types.DateString, period domain.Period, status domain.SlotStatus) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id string) error
}

// QuoteRepository интерфейс репозитория заявок
type QuoteRepository interface {
	FindByDate(ctx context.Context, date types.DateString) ([]*domain.Quote, error)
	FindForPeriod(ctx context.Context, date types.DateString, period domain.Period) (*domain.Quote, error)
}

// UserRepository интерфейс репозитория пользователей (только чтение)
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
