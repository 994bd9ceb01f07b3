package confirm_appointment

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

func newTestUseCase(t *testing.T) (*UseCase, *fakeStore, *slotRepo.Repository) {
	t.Helper()
	store := newFakeStore()
	log := nopLogger{}
	slots := slotRepo.NewRepository(store, log)

	uc := NewUseCase(
		slots,
		quoteRepo.NewRepository(store, log),
		fakeTxManager{},
		log,
	)

	return uc, store, slots
}

func slotFixture(id string, date types.DateString, period domain.Period, status domain.SlotStatus) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:          id,
		Date:        date,
		Period:      period,
		Status:      status,
		MaxBookings: domain.DefaultMaxBookings,
		CreatedAt:   time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func appointmentFixture(id string, date types.DateString, period domain.Period) *domain.Quote {
	return &domain.Quote{
		ID:            id,
		Type:          domain.QuoteOnsite,
		Email:         "customer@example.com",
		Name:          "Customer",
		PreferredDate: date,
		PreferredTime: period,
	}
}

func TestUseCase_Execute_ConfirmsAppointmentAndSlot(t *testing.T) {
	uc, store, slots := newTestUseCase(t)
	ctx := context.Background()

	store.seed(t, domain.CollectionTimeSlots,
		slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, domain.SlotInstallation))
	store.seed(t, domain.CollectionQuotes,
		appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning))

	resp, err := uc.Execute(ctx, &Request{AppointmentID: "appt-1"})
	require.NoError(t, err)

	assert.True(t, resp.Appointment.Confirmed)
	require.NotNil(t, resp.Appointment.ConfirmedAt)

	// Статус слота переведен в свою confirmed-* форму
	require.NotNil(t, resp.Slot)
	assert.Equal(t, string(domain.SlotConfirmedInstall), resp.Slot.Status)

	slot, err := slots.GetForPeriod(ctx, "2025-03-10", domain.PeriodMorning)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotConfirmedInstall, slot.Status)
	require.NotNil(t, slot.ConfirmedAt)
}

func TestUseCase_Execute_StatusVariantMapping(t *testing.T) {
	tests := []struct {
		name   string
		before domain.SlotStatus
		want   domain.SlotStatus
	}{
		{name: "measurement", before: domain.SlotOnsiteMeasurement, want: domain.SlotConfirmedMeasurement},
		{name: "installation", before: domain.SlotInstallation, want: domain.SlotConfirmedInstall},
		{name: "maintenance", before: domain.SlotMaintenance, want: domain.SlotConfirmedMaintenance},
		{name: "available defaults to measurement", before: domain.SlotAvailable, want: domain.SlotConfirmedMeasurement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store, _ := newTestUseCase(t)
			ctx := context.Background()

			store.seed(t, domain.CollectionTimeSlots,
				slotFixture("slot-1", "2025-03-10", domain.PeriodMorning, tt.before))
			store.seed(t, domain.CollectionQuotes,
				appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning))

			resp, err := uc.Execute(ctx, &Request{AppointmentID: "appt-1"})
			require.NoError(t, err)
			require.NotNil(t, resp.Slot)
			assert.Equal(t, string(tt.want), resp.Slot.Status)
		})
	}
}

func TestUseCase_Execute_CreatesSlotWhenMissing(t *testing.T) {
	uc, store, slots := newTestUseCase(t)
	ctx := context.Background()

	// Записи слота нет - подтверждение создает ее как подтвержденный замер
	store.seed(t, domain.CollectionQuotes,
		appointmentFixture("appt-1", "2025-03-10", domain.PeriodAfternoon))

	resp, err := uc.Execute(ctx, &Request{AppointmentID: "appt-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, string(domain.SlotConfirmedMeasurement), resp.Slot.Status)

	slot, err := slots.GetForPeriod(ctx, "2025-03-10", domain.PeriodAfternoon)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotConfirmedMeasurement, slot.Status)
}

func TestUseCase_Execute_LegacyEveningPeriodPassedThrough(t *testing.T) {
	uc, store, slots := newTestUseCase(t)
	ctx := context.Background()

	store.seed(t, domain.CollectionQuotes,
		appointmentFixture("appt-1", "2025-03-10", domain.PeriodEvening))

	resp, err := uc.Execute(ctx, &Request{AppointmentID: "appt-1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.PeriodEvening), resp.Appointment.Period)

	slot, err := slots.GetForPeriod(ctx, "2025-03-10", domain.PeriodEvening)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotConfirmedMeasurement, slot.Status)
}

func TestUseCase_Execute_AlreadyConfirmed(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	ctx := context.Background()

	appt := appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning)
	appt.Confirmed = true
	store.seed(t, domain.CollectionQuotes, appt)

	_, err := uc.Execute(ctx, &Request{AppointmentID: "appt-1"})
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc, store, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{AppointmentID: "missing"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// Заявка другого типа не является встречей
	store.seed(t, domain.CollectionQuotes, &domain.Quote{
		ID:   "quote-self",
		Type: domain.QuoteSelfMeasurement,
	})

	_, err = uc.Execute(ctx, &Request{AppointmentID: "quote-self"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
