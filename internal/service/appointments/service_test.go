package appointments

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	quoteRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/quote"
	userRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/user"
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

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	log := nopLogger{}
	svc := NewService(
		quoteRepo.NewRepository(store, log),
		userRepo.NewRepository(store, log),
		log,
	)
	return svc, store
}

func appointmentFixture(id string, date types.DateString, period domain.Period) *domain.Quote {
	return &domain.Quote{
		ID:            id,
		Type:          domain.QuoteOnsite,
		Email:         "customer@example.com",
		Name:          "Customer",
		PreferredDate: date,
		PreferredTime: period,
		CreatedAt:     time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestService_GetByID(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	store.seed(t, domain.CollectionQuotes, appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning))

	resp, err := svc.GetByID(ctx, "appt-1")
	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "Customer", resp.CustomerName)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_GetByID_RejectsNonAppointmentQuote(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	store.seed(t, domain.CollectionQuotes, &domain.Quote{
		ID:   "quote-self",
		Type: domain.QuoteSelfMeasurement,
	})

	_, err := svc.GetByID(ctx, "quote-self")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_GetUserAppointments(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	mine := appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning)
	mine.UserID = "user-1"
	other := appointmentFixture("appt-2", "2025-03-11", domain.PeriodMorning)
	other.Email = "someone-else@example.com"
	store.seed(t, domain.CollectionQuotes, mine, other)

	resp, err := svc.GetUserAppointments(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "appt-1", resp.Appointments[0].ID)
}

func TestService_Cancel_RemovesAppointment(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	store.seed(t, domain.CollectionQuotes, appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning))

	require.NoError(t, svc.Cancel(ctx, "appt-1"))
	assert.Empty(t, store.collections[domain.CollectionQuotes])

	assert.ErrorIs(t, svc.Cancel(ctx, "appt-1"), ErrAppointmentNotFound)
}

func TestService_Cancel_ConfirmedAppointmentDoesNotTouchSlots(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	appt := appointmentFixture("appt-1", "2025-03-10", domain.PeriodMorning)
	appt.Confirmed = true
	store.seed(t, domain.CollectionQuotes, appt)

	confirmedSlot, err := json.Marshal(&domain.TimeSlot{
		ID:     "slot-1",
		Date:   "2025-03-10",
		Period: domain.PeriodMorning,
		Status: domain.SlotConfirmedMeasurement,
	})
	require.NoError(t, err)
	store.collections[domain.CollectionTimeSlots] = []json.RawMessage{confirmedSlot}

	require.NoError(t, svc.Cancel(ctx, "appt-1"))

	// Запись слота остается в confirmed-* статусе до ручной правки персоналом
	slots := store.collections[domain.CollectionTimeSlots]
	require.Len(t, slots, 1)
	var slot domain.TimeSlot
	require.NoError(t, json.Unmarshal(slots[0], &slot))
	assert.Equal(t, domain.SlotConfirmedMeasurement, slot.Status)
}
