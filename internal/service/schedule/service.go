package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	quoteRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/quote"
	slotRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/timeslot"
	"github.com/m04kA/CWT-SchedulingService/internal/service/schedule/models"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// Service сервис управления расписанием слотов (админский контур)
// Все мутации защищены инвариантом: слот с подтвержденной встречей
// не редактируется ничем, кроме самого подтверждения.
type Service struct {
	slotRepo     SlotRepository
	quoteRepo    QuoteRepository
	userRepo     UserRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	horizonDays  int
	logger       Logger
}

// NewService создает сервис расписания
func NewService(
	slotRepo SlotRepository,
	quoteRepo QuoteRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	horizonDays int,
	logger Logger,
) *Service {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultBookingHorizonDays
	}
	return &Service{
		slotRepo:     slotRepo,
		quoteRepo:    quoteRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		horizonDays:  horizonDays,
		logger:       logger,
	}
}

// SetSlotStatus устанавливает статус слота (дата, период)
// Статус no-slot удаляет запись. Проверка занятости подтвержденной встречей
// и сама мутация выполняются в одной сериализуемой транзакции.
// Возвращает актуальный слот или nil, если запись удалена.
func (s *Service) SetSlotStatus(ctx context.Context, req *models.SetSlotStatusRequest) (*models.SlotResponse, error) {
	s.logger.Info("SetSlotStatus: date=%s period=%s status=%s", req.Date, req.Period, req.Status)

	date, err := types.ParseDateString(req.Date)
	if err != nil {
		s.logger.Warn("SetSlotStatus: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	period, ok := domain.ParsePeriod(req.Period, false)
	if !ok {
		s.logger.Warn("SetSlotStatus: invalid period %q", req.Period)
		return nil, ErrInvalidPeriod
	}

	status, ok := domain.ParseSlotStatus(req.Status)
	if !ok || !status.IsAdminSettable() {
		// confirmed-* статусы достижимы только через подтверждение встречи
		s.logger.Warn("SetSlotStatus: status %q is not admin-settable", req.Status)
		return nil, ErrInvalidStatus
	}

	var updated *domain.TimeSlot

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.checkNotLocked(txCtx, date, period); err != nil {
			return err
		}

		slot, err := s.slotRepo.Upsert(txCtx, date, period, status)
		if err != nil {
			return fmt.Errorf("%w: SetSlotStatus - upsert: %v", ErrInternal, err)
		}

		updated = slot
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrConfirmedSlotLocked) {
			s.logger.Error("SetSlotStatus: failed for date=%s period=%s: %v", req.Date, req.Period, err)
		}
		return nil, err
	}

	if updated == nil {
		s.logger.Info("SetSlotStatus: slot removed for date=%s period=%s", req.Date, req.Period)
		return nil, nil
	}

	s.logger.Info("SetSlotStatus: slot id=%s set to status=%s", updated.ID, updated.Status)
	return models.FromDomainSlot(updated), nil
}

// DeleteSlot удаляет слот по идентификатору
// Эквивалентен установке статуса no-slot, но адресуется по id
func (s *Service) DeleteSlot(ctx context.Context, id string) error {
	s.logger.Info("DeleteSlot: deleting slot id=%s", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: DeleteSlot - get slot: %v", ErrInternal, err)
		}

		if err := s.checkNotLocked(txCtx, slot.Date, slot.Period); err != nil {
			return err
		}

		if err := s.slotRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: DeleteSlot - delete: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) || errors.Is(err, ErrConfirmedSlotLocked) {
			s.logger.Warn("DeleteSlot: slot id=%s rejected: %v", id, err)
		} else {
			s.logger.Error("DeleteSlot: failed for slot id=%s: %v", id, err)
		}
		return err
	}

	s.logger.Info("DeleteSlot: slot id=%s deleted", id)
	return nil
}

// GetDaySchedule возвращает слоты и встречи одного дня для админской
// детализации, с резолвом имен клиентов
func (s *Service) GetDaySchedule(ctx context.Context, rawDate string) (*models.DayScheduleResponse, error) {
	date, err := types.ParseDateString(rawDate)
	if err != nil {
		s.logger.Warn("GetDaySchedule: invalid date %q: %v", rawDate, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	slots, err := s.slotRepo.ListForDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDaySchedule: failed to list slots for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetDaySchedule - list slots: %v", ErrInternal, err)
	}

	quotes, err := s.quoteRepo.FindByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDaySchedule: failed to find appointments for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetDaySchedule - find appointments: %v", ErrInternal, err)
	}

	resp := &models.DayScheduleResponse{
		Date:         date.String(),
		Slots:        make([]models.SlotResponse, 0, len(slots)),
		Appointments: make([]models.AppointmentResponse, 0, len(quotes)),
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, *models.FromDomainSlot(slot))
	}
	for _, q := range quotes {
		resp.Appointments = append(resp.Appointments, *models.FromDomainQuote(q, s.resolveCustomerName(ctx, q)))
	}

	s.logger.Info("GetDaySchedule: date=%s slots=%d appointments=%d", date, len(resp.Slots), len(resp.Appointments))
	return resp, nil
}

// AvailableDates возвращает даты месяца, доступные для клиентского
// бронирования: есть хотя бы один слот со статусом available, дата не в
// прошлом и не дальше окна бронирования. Админский календарь окном
// не ограничивается.
func (s *Service) AvailableDates(ctx context.Context, ref domain.MonthRef) ([]types.DateString, error) {
	slots, err := s.slotRepo.ListForMonth(ctx, ref.Year, ref.Month)
	if err != nil {
		s.logger.Error("AvailableDates: failed to list slots for %d-%02d: %v", ref.Year, int(ref.Month), err)
		return nil, fmt.Errorf("%w: AvailableDates - list slots: %v", ErrInternal, err)
	}

	today := types.NewDateStringFromTime(s.timeProvider.Now())
	horizon, err := today.AddDays(s.horizonDays)
	if err != nil {
		return nil, fmt.Errorf("%w: AvailableDates - compute horizon: %v", ErrInternal, err)
	}

	seen := make(map[types.DateString]bool)
	dates := make([]types.DateString, 0)

	for _, slot := range slots {
		if !slot.IsBookable() || seen[slot.Date] {
			continue
		}
		if slot.Date.Before(today) || slot.Date.After(horizon) {
			continue
		}
		seen[slot.Date] = true
		dates = append(dates, slot.Date)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	s.logger.Info("AvailableDates: %d-%02d has %d bookable dates within %d days",
		ref.Year, int(ref.Month), len(dates), s.horizonDays)
	return dates, nil
}

// BookableSlots возвращает слоты даты, открытые для клиентского бронирования
func (s *Service) BookableSlots(ctx context.Context, rawDate string) ([]models.SlotResponse, error) {
	date, err := types.ParseDateString(rawDate)
	if err != nil {
		s.logger.Warn("BookableSlots: invalid date %q: %v", rawDate, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	slots, err := s.slotRepo.ListForDate(ctx, date)
	if err != nil {
		s.logger.Error("BookableSlots: failed to list slots for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: BookableSlots - list slots: %v", ErrInternal, err)
	}

	bookable := make([]models.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		if slot.IsBookable() {
			bookable = append(bookable, *models.FromDomainSlot(slot))
		}
	}

	s.logger.Info("BookableSlots: date=%s has %d bookable slots", date, len(bookable))
	return bookable, nil
}

// checkNotLocked проверяет, что (дата, период) не занят подтвержденной встречей
func (s *Service) checkNotLocked(ctx context.Context, date types.DateString, period domain.Period) error {
	appt, err := s.quoteRepo.FindForPeriod(ctx, date, period)
	if err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			return nil
		}
		return fmt.Errorf("%w: checkNotLocked - find appointment: %v", ErrInternal, err)
	}

	if appt.Confirmed {
		s.logger.Warn("checkNotLocked: date=%s period=%s is locked by confirmed appointment id=%s",
			date, period, appt.ID)
		return ErrConfirmedSlotLocked
	}

	// Неподтвержденная заявка слот не блокирует
	return nil
}

// resolveCustomerName возвращает отображаемое имя клиента заявки
// Порядок: пользователь по userId, затем по email, затем имя из самой заявки
func (s *Service) resolveCustomerName(ctx context.Context, q *domain.Quote) string {
	if q.UserID != "" {
		if u, err := s.userRepo.GetByID(ctx, q.UserID); err == nil && u.Name != "" {
			return u.Name
		}
	}
	if q.Email != "" {
		if u, err := s.userRepo.GetByEmail(ctx, q.Email); err == nil && u.Name != "" {
			return u.Name
		}
	}
	if q.Name != "" {
		return q.Name
	}
	return q.Email
}
