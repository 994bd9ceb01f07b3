package timeslot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// Repository репозиторий слотов поверх коллекции timeSlots
// Каждая операция читает коллекцию целиком, меняет копию в памяти и
// перезаписывает коллекцию обратно.
type Repository struct {
	store RecordStore
	log   Logger
}

// NewRepository создает репозиторий слотов
func NewRepository(store RecordStore, log Logger) *Repository {
	return &Repository{store: store, log: log}
}

// storedSlot запись коллекции: разобранный слот либо сырой JSON,
// если запись не разобралась. Нечитаемые записи пропускаются при выборках,
// но переносятся при перезаписи как есть, чтобы не терять чужие данные.
type storedSlot struct {
	slot *domain.TimeSlot
	raw  json.RawMessage
}

// ListForDate возвращает все слоты на дату
func (r *Repository) ListForDate(ctx context.Context, date types.DateString) ([]*domain.TimeSlot, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	slots := make([]*domain.TimeSlot, 0, 2)
	for _, rec := range stored {
		if rec.slot != nil && rec.slot.Date == date {
			slots = append(slots, rec.slot)
		}
	}
	return slots, nil
}

// ListForMonth возвращает все слоты месяца
// Используется движком сверки календаря для разового чтения коллекции
func (r *Repository) ListForMonth(ctx context.Context, year int, month time.Month) ([]*domain.TimeSlot, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	slots := make([]*domain.TimeSlot, 0)
	for _, rec := range stored {
		if rec.slot != nil && rec.slot.Date.InMonth(year, month) {
			slots = append(slots, rec.slot)
		}
	}
	return slots, nil
}

// GetForPeriod возвращает слот на (дату, период)
func (r *Repository) GetForPeriod(ctx context.Context, date types.DateString, period domain.Period) (*domain.TimeSlot, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range stored {
		if rec.slot != nil && rec.slot.Date == date && rec.slot.Period == period {
			return rec.slot, nil
		}
	}
	return nil, ErrSlotNotFound
}

// GetByID возвращает слот по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range stored {
		if rec.slot != nil && rec.slot.ID == id {
			return rec.slot, nil
		}
	}
	return nil, ErrSlotNotFound
}

// BookableSlots возвращает слоты даты, доступные для клиентского бронирования
func (r *Repository) BookableSlots(ctx context.Context, date types.DateString) ([]*domain.TimeSlot, error) {
	slots, err := r.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	bookable := make([]*domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.IsBookable() {
			bookable = append(bookable, slot)
		}
	}
	return bookable, nil
}

// Upsert приводит запись (дата, период) к указанному статусу:
//   - status == no-slot: удаляет запись; отсутствие записи - no-op
//   - записи нет: создает слот с дефолтной емкостью
//   - запись есть: перезаписывает статус, проставляя confirmedAt для confirmed-*
//
// Попутно схлопывает дубликаты по ключу (дата, период) - инвариант
// "не больше одной записи на период" восстанавливается при каждой записи.
// Возвращает актуальный слот или nil, если запись удалена.
func (r *Repository) Upsert(ctx context.Context, date types.DateString, period domain.Period, status domain.SlotStatus) (*domain.TimeSlot, error) {
	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var existing *domain.TimeSlot
	kept := make([]storedSlot, 0, len(stored))
	for _, rec := range stored {
		if rec.slot != nil && rec.slot.Date == date && rec.slot.Period == period {
			if existing == nil {
				existing = rec.slot
			} else {
				r.log.Warn("Upsert: dropping duplicate slot id=%s for date=%s period=%s", rec.slot.ID, date, period)
			}
			continue
		}
		kept = append(kept, rec)
	}

	now := time.Now()

	if status == domain.SlotNone {
		if existing == nil {
			// Удаление отсутствующей записи - идемпотентный no-op
			return nil, nil
		}
		if err := r.save(ctx, kept); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if existing == nil {
		existing = &domain.TimeSlot{
			ID:              uuid.NewString(),
			Date:            date,
			Period:          period,
			MaxBookings:     domain.DefaultMaxBookings,
			CurrentBookings: domain.DefaultCurrentBookings,
			CreatedAt:       now,
		}
	}

	existing.Status = status
	if status.IsConfirmed() {
		existing.ConfirmedAt = &now
	}

	kept = append(kept, storedSlot{slot: existing})

	if err := r.save(ctx, kept); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete удаляет слот по идентификатору
func (r *Repository) Delete(ctx context.Context, id string) error {
	stored, err := r.load(ctx)
	if err != nil {
		return err
	}

	found := false
	kept := make([]storedSlot, 0, len(stored))
	for _, rec := range stored {
		if rec.slot != nil && rec.slot.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}

	if !found {
		return ErrSlotNotFound
	}

	return r.save(ctx, kept)
}

// load читает коллекцию timeSlots
// Нечитаемые записи и записи без даты/периода исключаются из выборок
func (r *Repository) load(ctx context.Context) ([]storedSlot, error) {
	recs, err := r.store.ReadCollection(ctx, domain.CollectionTimeSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: load - read collection: %v", ErrStorage, err)
	}

	stored := make([]storedSlot, 0, len(recs))
	for _, raw := range recs {
		var slot domain.TimeSlot
		if err := json.Unmarshal(raw, &slot); err != nil {
			r.log.Warn("load: skipping malformed timeSlot record: %v", err)
			stored = append(stored, storedSlot{raw: raw})
			continue
		}
		if slot.Date.IsZero() || slot.Period == "" {
			r.log.Warn("load: skipping timeSlot record id=%q without date or period", slot.ID)
			stored = append(stored, storedSlot{raw: raw})
			continue
		}
		stored = append(stored, storedSlot{slot: &slot})
	}

	return stored, nil
}

// save перезаписывает коллекцию timeSlots целиком
func (r *Repository) save(ctx context.Context, stored []storedSlot) error {
	recs := make([]json.RawMessage, 0, len(stored))
	for _, rec := range stored {
		if rec.slot == nil {
			recs = append(recs, rec.raw)
			continue
		}
		raw, err := json.Marshal(rec.slot)
		if err != nil {
			return fmt.Errorf("%w: save - marshal slot id=%s: %v", ErrStorage, rec.slot.ID, err)
		}
		recs = append(recs, raw)
	}

	if err := r.store.WriteCollection(ctx, domain.CollectionTimeSlots, recs); err != nil {
		return fmt.Errorf("%w: save - write collection: %v", ErrStorage, err)
	}
	return nil
}
