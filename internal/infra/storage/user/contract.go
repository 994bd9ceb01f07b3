package user

import (
	"context"
	"encoding/json"
)

// RecordStore интерфейс хранилища коллекций записей
// Коллекция users этим сервисом только читается
type RecordStore interface {
	ReadCollection(ctx context.Context, name string) ([]json.RawMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
