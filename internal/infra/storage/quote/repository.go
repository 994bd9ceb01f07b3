package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// Repository репозиторий заявок поверх коллекции quotes
// В коллекции соседствуют заявки всех типов; операции реестра встреч
// фильтруют type == onsite, остальные записи переносятся при перезаписи
// нетронутыми.
type Repository struct {
	store RecordStore
	log   Logger
}

// NewRepository создает репозиторий заявок
func NewRepository(store RecordStore, log Logger) *Repository {
	return &Repository{store: store, log: log}
}

// storedQuote запись коллекции: разобранная заявка либо сырой JSON
type storedQuote struct {
	quote *domain.Quote
	raw   json.RawMessage
}

// Create добавляет новую заявку в коллекцию
// Идентификатор и время создания проставляются здесь
func (r *Repository) Create(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	q.ID = uuid.NewString()
	q.CreatedAt = time.Now()

	stored = append(stored, storedQuote{quote: q})

	if err := r.save(ctx, stored); err != nil {
		return nil, err
	}
	return q, nil
}

// GetByID возвращает заявку по идентификатору (любого типа)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range stored {
		if rec.quote != nil && rec.quote.ID == id {
			return rec.quote, nil
		}
	}
	return nil, ErrQuoteNotFound
}

// FindByDate возвращает все onsite заявки на дату
func (r *Repository) FindByDate(ctx context.Context, date types.DateString) ([]*domain.Quote, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]*domain.Quote, 0)
	for _, rec := range stored {
		if rec.quote != nil && rec.quote.IsAppointment() && rec.quote.PreferredDate == date {
			quotes = append(quotes, rec.quote)
		}
	}
	return quotes, nil
}

// FindForMonth возвращает все onsite заявки месяца
func (r *Repository) FindForMonth(ctx context.Context, year int, month time.Month) ([]*domain.Quote, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]*domain.Quote, 0)
	for _, rec := range stored {
		if rec.quote != nil && rec.quote.IsAppointment() && rec.quote.PreferredDate.InMonth(year, month) {
			quotes = append(quotes, rec.quote)
		}
	}
	return quotes, nil
}

// FindForPeriod возвращает onsite заявку на (дату, период)
// Хранилище не гарантирует единственность: среди легаси-дубликатов
// предпочитается подтвержденная заявка, иначе первая по порядку вставки
func (r *Repository) FindForPeriod(ctx context.Context, date types.DateString, period domain.Period) (*domain.Quote, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var first *domain.Quote
	for _, rec := range stored {
		if rec.quote == nil || !rec.quote.IsAppointment() || !rec.quote.MatchesPeriod(date, period) {
			continue
		}
		if rec.quote.Confirmed {
			return rec.quote, nil
		}
		if first == nil {
			first = rec.quote
		}
	}

	if first == nil {
		return nil, ErrQuoteNotFound
	}
	return first, nil
}

// FindByUser возвращает onsite заявки клиента
// ref сопоставляется сначала с userId, затем с email (легаси-записи)
func (r *Repository) FindByUser(ctx context.Context, ref string) ([]*domain.Quote, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]*domain.Quote, 0)
	for _, rec := range stored {
		if rec.quote != nil && rec.quote.IsAppointment() && rec.quote.MatchesUser(ref) {
			quotes = append(quotes, rec.quote)
		}
	}
	return quotes, nil
}

// SetConfirmed помечает заявку подтвержденной и проставляет confirmedAt
func (r *Repository) SetConfirmed(ctx context.Context, id string) (*domain.Quote, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var updated *domain.Quote
	for _, rec := range stored {
		if rec.quote != nil && rec.quote.ID == id {
			now := time.Now()
			rec.quote.Confirmed = true
			rec.quote.ConfirmedAt = &now
			updated = rec.quote
			break
		}
	}

	if updated == nil {
		return nil, ErrQuoteNotFound
	}

	if err := r.save(ctx, stored); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete удаляет заявку целиком (отмена клиентом или админом)
func (r *Repository) Delete(ctx context.Context, id string) error {
	stored, err := r.load(ctx)
	if err != nil {
		return err
	}

	found := false
	kept := make([]storedQuote, 0, len(stored))
	for _, rec := range stored {
		if rec.quote != nil && rec.quote.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}

	if !found {
		return ErrQuoteNotFound
	}

	return r.save(ctx, kept)
}

// load читает коллекцию quotes
func (r *Repository) load(ctx context.Context) ([]storedQuote, error) {
	recs, err := r.store.ReadCollection(ctx, domain.CollectionQuotes)
	if err != nil {
		return nil, fmt.Errorf("%w: load - read collection: %v", ErrStorage, err)
	}

	stored := make([]storedQuote, 0, len(recs))
	for _, raw := range recs {
		var q domain.Quote
		if err := json.Unmarshal(raw, &q); err != nil {
			r.log.Warn("load: skipping malformed quote record: %v", err)
			stored = append(stored, storedQuote{raw: raw})
			continue
		}
		stored = append(stored, storedQuote{quote: &q})
	}

	return stored, nil
}

// save перезаписывает коллекцию quotes целиком
func (r *Repository) save(ctx context.Context, stored []storedQuote) error {
	recs := make([]json.RawMessage, 0, len(stored))
	for _, rec := range stored {
		if rec.quote == nil {
			recs = append(recs, rec.raw)
			continue
		}
		raw, err := json.Marshal(rec.quote)
		if err != nil {
			return fmt.Errorf("%w: save - marshal quote id=%s: %v", ErrStorage, rec.quote.ID, err)
		}
		recs = append(recs, raw)
	}

	if err := r.store.WriteCollection(ctx, domain.CollectionQuotes, recs); err != nil {
		return fmt.Errorf("%w: save - write collection: %v", ErrStorage, err)
	}
	return nil
}
