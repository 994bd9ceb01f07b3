package appointments

import (
	"context"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
)

// QuoteRepository интерфейс репозитория заявок
type QuoteRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	FindByUser(ctx context.Context, ref string) ([]*domain.Quote, error)
	Delete(ctx context.Context, id string) error
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
