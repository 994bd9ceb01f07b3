package quote

import (
	"context"
	"encoding/json"
)

// RecordStore интерфейс хранилища коллекций записей
type RecordStore interface {
	ReadCollection(ctx context.Context, name string) ([]json.RawMessage, error)
	WriteCollection(ctx context.Context, name string, recs []json.RawMessage) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
