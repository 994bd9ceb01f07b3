package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CWT-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/CWT-SchedulingService/pkg/psqlbuilder"
)

// Store хранилище именованных коллекций записей
// Каждая коллекция лежит одной строкой в таблице record_collections как JSONB
// документ и читается/перезаписывается целиком - то же зерно доступа, что у
// исходного хранилища. Две параллельные перезаписи одной коллекции вне
// транзакции по-прежнему дают lost update; критичные пути оборачиваются в
// сериализуемую транзакцию менеджером транзакций.
type Store struct {
	db  DBExecutor
	log Logger
}

// NewStore создает хранилище коллекций
func NewStore(db DBExecutor, log Logger) *Store {
	return &Store{db: db, log: log}
}

// ReadCollection читает коллекцию целиком
// Отсутствующая или нечитаемая коллекция трактуется как пустая
func (s *Store) ReadCollection(ctx context.Context, name string) ([]json.RawMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Select("records").
		From("record_collections").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReadCollection - build select query: %v", ErrBuildQuery, err)
	}

	var doc []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&doc)
	if err == sql.ErrNoRows {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ReadCollection - scan document: %v", ErrScanRow, err)
	}

	var recs []json.RawMessage
	if err := json.Unmarshal(doc, &recs); err != nil {
		// Поврежденный документ не валит чтение - коллекция считается пустой
		s.log.Error("ReadCollection: collection %q holds malformed document, treating as empty: %v", name, err)
		return []json.RawMessage{}, nil
	}

	return recs, nil
}

// WriteCollection перезаписывает коллекцию целиком
func (s *Store) WriteCollection(ctx context.Context, name string, recs []json.RawMessage) error {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	if recs == nil {
		recs = []json.RawMessage{}
	}

	doc, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("%w: WriteCollection - marshal collection %q: %v", ErrEncode, name, err)
	}

	query, args, err := psqlbuilder.Insert("record_collections").
		Columns("name", "records").
		Values(name, doc).
		Suffix("ON CONFLICT (name) DO UPDATE SET records = EXCLUDED.records, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: WriteCollection - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: WriteCollection - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
