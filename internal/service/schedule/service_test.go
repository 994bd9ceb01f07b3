package schedule

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
	userRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/CWT-SchedulingService/internal/service/schedule/models"
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

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider возвращает заранее заданный момент времени
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(t *testing.T, now time.Time) (*Service, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	log := nopLogger{}

	svc := NewService(
		slotRepo.NewRepository(store, log),
		quoteRepo.NewRepository(store, log),
		userRepo.NewRepository(store, log),
		fakeTxManager{},
		domain.DefaultBookingHorizonDays,
		log,
	)
	svc.timeProvider = &fixedTimeProvider{now: now}

	return svc, store
}

func slotFixture(id string, date types.DateString, period domain.Period, status domain.SlotStatus) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:              id,
		Date:            date,
		Period:          period,
		Status:          status,
		MaxBookings:     domain.DefaultMaxBookings,
		CurrentBookings: domain.DefaultCurrentBookings,
		CreatedAt:       time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func appointmentFixture(id string, date types.DateString, period domain.Period, confirmed bool) *domain.Quote {
	return &domain.Quote{
		ID:            id,
		Type:          domain.QuoteOnsite,
		Email:         "customer@example.com",
		Name:          "Customer",
		PreferredDate: date,
		PreferredTime: period,
		Confirmed:     confirmed,
		CreatedAt:     time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

var testNow = time.Date(2025, time.March, 8, 10, 0, 0, 0, time.Local)

func TestService_SetSlotStatus_CreatesSlot(t *testing.T) {
	svc, _ := newTestService(t, testNow)
	ctx := context.Background()

	resp, err := svc.SetSlotStatus(ctx, &models.SetSlotStatusRequest{
		Date:   "2025-03-10",
		Period: "morning",
		Status: "available",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "available", resp.Status)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "morning", resp.Period)
}

func TestService_SetSlotStatus_Validation(t *testing.T) {
	svc, _ := newTestService(t, testNow)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.SetSlotStatusRequest
		wantErr error
	}{
		{
			name:    "invalid date",
			req:     models.SetSlotStatusRequest{Date: "10.03.2025", Period: "morning", Status: "available"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "invalid period",
			req:     models.SetSlotStatusRequest{Date: "2025-03-10", Period: "night", Status: "available"},
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "legacy period not settable",
			req:     models.SetSlotStatusRequest{Date: "2025-03-10", Period: "evening", Status: "available"},
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "unknown status",
			req:     models.SetSlotStatusRequest{Date: "2025-03-10", Period: "morning", Status: "busy"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "confirmed status not settable directly",
			req:     models.SetSlotStatusRequest{Date: "2025-03-10", Period: "morning", Status: "confirmed-measurement"},
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetSlotStatus(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_SetSlotStatus_LockedByConfirmedAppointment(t *testing.T) {
	svc, store := newTestService(t, testNow)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, domain.SlotConfirmedMeasurement))
	store.seed(t, domain.CollectionQuotes,
		appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning, true))

	_, err := svc.SetSlotStatus(ctx, &models.SetSlotStatusRequest{
		Date:   "2025-03-10",
		Period: "morning",
		Status: "available",
	})
	assert.ErrorIs(t, err, ErrConfirmedSlotLocked)
}

func TestService_SetSlotStatus_PendingAppointmentDoesNotBlock(t *testing.T) {
	svc, store := newTestService(t, testNow)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, domain.SlotAvailable))
	store.seed(t, domain.CollectionQuotes,
		appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning, false))

	resp, err := svc.SetSlotStatus(ctx, &models.SetSlotStatusRequest{
		Date:   "2025-03-10",
		Period: "morning",
		Status: "unavailable",
	})
	require.NoError(t, err)
	assert.Equal(t, "unavailable", resp.Status)
}

func TestService_SetSlotStatus_NoSlotRemovesRecord(t *testing.T) {
	svc, store := newTestService(t, testNow)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, domain.SlotAvailable))

	resp, err := svc.SetSlotStatus(ctx, &models.SetSlotStatusRequest{
		Date:   "2025-03-10",
		Period: "morning",
		Status: "no-slot",
	})
	require.NoError(t, err)
	assert.Nil(t, resp)

	// Повторное удаление - идемпотентный no-op
	resp, err = svc.SetSlotStatus(ctx, &models.SetSlotStatusRequest{
		Date:   "2025-03-10",
		Period: "morning",
		Status: "no-slot",
	})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestService_DeleteSlot(t *testing.T) {
	svc, store := newTestService(t, testNow)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, domain.SlotAvailable))

	require.NoError(t, svc.DeleteSlot(ctx, "slot-1"))
	assert.ErrorIs(t, svc.DeleteSlot(ctx, "slot-1"), ErrSlotNotFound)
}

func TestService_DeleteSlot_LockedByConfirmedAppointment(t *testing.T) {
	svc, store := newTestService(t, testNow)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, domain.SlotConfirmedInstall))
	store.seed(t, domain.CollectionQuotes,
		appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning, true))

	assert.ErrorIs(t, svc.DeleteSlot(ctx, "slot-1"), ErrConfirmedSlotLocked)
}

func TestService_AvailableDates_HorizonWindow(t *testing.T) {
	svc, store := newTestService(t, testNow)
	ctx := context.Background()

	// Сегодня 2025-03-08, горизонт 14 дней: окно [2025-03-08, 2025-03-22]
	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-past", "2025-03-07", domain.PeriodMorning, domain.SlotAvailable),
		slotFixture("slot-today", "2025-03-08", domain.PeriodMorning, domain.SlotAvailable),
		slotFixture("slot-edge", "2025-03-22", domain.PeriodAfternoon, domain.SlotAvailable),
		slotFixture("slot-beyond", "2025-03-23", domain.PeriodMorning, domain.SlotAvailable),
		slotFixture("slot-busy", "2025-03-15", domain.PeriodMorning, domain.SlotUnavailable),
	)

	dates, err := svc.AvailableDates(ctx, domain.MonthRef{Year: 2025, Month: time.March})
	require.NoError(t, err)

	assert.Equal(t, []types.DateString{"2025-03-08", "2025-03-22"}, dates)
}

func TestService_AvailableDates_DeduplicatesDates(t *testing.T) {
	svc, store := newTestService(t, testNow)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, domain.SlotAvailable),
		slotFixture("slot-2", "2025-03-10", domain.PeriodAfternoon, domain.SlotAvailable),
	)

	dates, err := svc.AvailableDates(ctx, domain.MonthRef{Year: 2025, Month: time.March})
	require.NoError(t, err)
	assert.Equal(t, []types.DateString{"2025-03-10"}, dates)
}

func TestService_BookableSlots(t *testing.T) {
	svc, store := newTestService(t, testNow)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, domain.SlotAvailable),
		slotFixture("slot-2", "2025-03-10", domain.PeriodAfternoon, domain.SlotMaintenance),
	)

	slots, err := svc.BookableSlots(ctx, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "slot-1", slots[0].ID)

	_, err = svc.BookableSlots(ctx, "bad-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_GetDaySchedule_ResolvesCustomerNames(t *testing.T) {
	svc, store := newTestService(t, testNow)
	ctx := context.Background()

	appt := appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning, false)
	appt.UserID = "user-1"
	appt.Name = ""

	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, domain.SlotOnsiteMeasurement))
	store.seed(t, domain.CollectionQuotes, appt)
	store.seed(t, domain.CollectionUsers,
		&domain.User{ID: "user-1", Email: "customer@example.com", Name: "Иван Петров"})

	resp, err := svc.GetDaySchedule(ctx, "2025-03-10")
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Иван Петров", resp.Appointments[0].CustomerName)
}
