package create_appointment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	quoteRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/quote"
	slotRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/timeslot"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// fakeStore in-memory реализация хранилища коллекций
type fakeStore struct {
	collections map[string][]json.RawMessage
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: make(map[string][]json.RawMessage)}
}

func (f *fakeStore) ReadCollection(_ context.Context, name string) ([]json.RawMessage, error) {
	return f.collections[name], nil
}

func (f *fakeStore) WriteCollection(_ context.Context, name string, recs []json.RawMessage) error {
	f.collections[name] = recs
	return nil
}

func (f *fakeStore) seed(t *testing.T, collection string, items ...interface{}) {
	t.Helper()
	recs := f.collections[collection]
	for _, item := range items {
		raw, err := json.Marshal(item)
		require.NoError(t, err)
		recs = append(recs, raw)
	}
	f.collections[collection] = recs
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

var testNow = time.Date(2025, time.March, 8, 10, 0, 0, 0, time.Local)

func newTestUseCase(t *testing.T) (*UseCase, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	log := nopLogger{}

	uc := NewUseCase(
		slotRepo.NewRepository(store, log),
		quoteRepo.NewRepository(store, log),
		fakeTxManager{},
		domain.DefaultBookingHorizonDays,
		log,
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	return uc, store
}

func availableSlot(id string, date types.DateString, period domain.Period) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:          id,
		Date:        date,
		Period:      period,
		Status:      domain.SlotAvailable,
		MaxBookings: domain.DefaultMaxBookings,
		CreatedAt:   time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func validRequest() *Request {
	return &Request{
		Date:         "2025-03-10",
		Period:       domain.PeriodMorning,
		Email:        "customer@example.com",
		Name:         "Customer",
		Phone:        "+10000000000",
		PropertyType: "apartment",
		RoomCount:    3,
	}
}

func TestUseCase_Execute_CreatesPendingAppointment(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots, availableSlot("slot-1", "2025-03-10", domain.PeriodMorning))

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "morning", resp.Period)
	assert.False(t, resp.Confirmed)

	// Слот остается нетронутым - заявка ждет подтверждения админом
	slots := store.collections[domain.CollectionTimeSlots]
	require.Len(t, slots, 1)
	var slot domain.TimeSlot
	require.NoError(t, json.Unmarshal(slots[0], &slot))
	assert.Equal(t, domain.SlotAvailable, slot.Status)
}

func TestUseCase_Execute_InputValidation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "missing date", mutate: func(req *Request) { req.Date = "" }},
		{name: "invalid date", mutate: func(req *Request) { req.Date = "2025-02-30" }},
		{name: "missing period", mutate: func(req *Request) { req.Period = "" }},
		{name: "missing contact", mutate: func(req *Request) { req.UserID = ""; req.Email = "" }},
		{name: "missing phone", mutate: func(req *Request) { req.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_DateWindow(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	// Сегодня 2025-03-08, горизонт 14 дней
	store.seed(t, domain.CollectionTimeSlots,
		availableSlot("slot-past", "2025-03-07", domain.PeriodMorning),
		availableSlot("slot-edge", "2025-03-22", domain.PeriodMorning),
		availableSlot("slot-beyond", "2025-03-23", domain.PeriodMorning),
	)

	req := validRequest()
	req.Date = "2025-03-07"
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrDateInPast)

	req = validRequest()
	req.Date = "2025-03-23"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	// Граница окна включительно
	req = validRequest()
	req.Date = "2025-03-22"
	_, err = uc.Execute(ctx, req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_SlotNotAvailable(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	// Записи слота нет вовсе
	_, err := uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Слот есть, но закрыт для бронирования
	busy := availableSlot("slot-1", "2025-03-10", domain.PeriodMorning)
	busy.Status = domain.SlotUnavailable
	store.seed(t, domain.CollectionTimeSlots, busy)

	_, err = uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_PeriodAlreadyRequested(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots, availableSlot("slot-1", "2025-03-10", domain.PeriodMorning))
	store.seed(t, domain.CollectionQuotes, &domain.Quote{
		ID:            "appt-existing",
		Type:          domain.QuoteOnsite,
		Email:         "first@example.com",
		PreferredDate: "2025-03-10",
		PreferredTime: domain.PeriodMorning,
	})

	_, err := uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrPeriodAlreadyRequested)
}

func TestUseCase_Execute_OtherPeriodSameDayAllowed(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots,
		availableSlot("slot-1", "2025-03-10", domain.PeriodMorning),
		availableSlot("slot-2", "2025-03-10", domain.PeriodAfternoon),
	)
	store.seed(t, domain.CollectionQuotes, &domain.Quote{
		ID:            "appt-existing",
		Type:          domain.QuoteOnsite,
		Email:         "first@example.com",
		PreferredDate: "2025-03-10",
		PreferredTime: domain.PeriodMorning,
	})

	req := validRequest()
	req.Period = domain.PeriodAfternoon

	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "afternoon", resp.Period)
}
