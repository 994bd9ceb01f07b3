package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	slotRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/timeslot"
)

// UseCase use case для создания встречи замера на объекте
type UseCase struct {
	slotRepo     SlotRepository
	quoteRepo    QuoteRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	horizonDays  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	quoteRepo QuoteRepository,
	txManager TransactionManager,
	horizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		quoteRepo:    quoteRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		horizonDays:  horizonDays,
		logger:       logger,
	}
}

// Execute выполняет use case создания встречи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, period=%s, customer=%s",
		req.Date, req.Period, customerRef(req))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты с учетом горизонта бронирования
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.horizonDays); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Quote

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем, что слот существует и открыт для бронирования
		slot, err := uc.slotRepo.GetForPeriod(txCtx, req.Date, req.Period)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateAppointment: no slot for date=%s period=%s", req.Date, req.Period)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to get slot: %v", err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !slot.IsBookable() {
			uc.logger.Warn("CreateAppointment: slot id=%s is not bookable, status=%s", slot.ID, slot.Status)
			return ErrSlotNotAvailable
		}

		// 3.2. Не больше одной заявки на (дату, период)
		existing, err := uc.quoteRepo.FindByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to find appointments: %v", err)
			return fmt.Errorf("%w: failed to find appointments: %v", ErrInternal, err)
		}
		for _, q := range existing {
			if q.MatchesPeriod(req.Date, req.Period) {
				uc.logger.Warn("CreateAppointment: period date=%s period=%s already requested by appointment id=%s",
					req.Date, req.Period, q.ID)
				return ErrPeriodAlreadyRequested
			}
		}

		// 3.3. Создаем заявку в статусе pending; слот не трогаем -
		// расписание меняется только подтверждением со стороны админа
		quote := &domain.Quote{
			Type:          domain.QuoteOnsite,
			UserID:        req.UserID,
			Email:         req.Email,
			Name:          req.Name,
			Phone:         req.Phone,
			PreferredDate: req.Date,
			PreferredTime: req.Period,
			PropertyType:  req.PropertyType,
			RoomCount:     req.RoomCount,
			Notes:         req.Notes,
			Confirmed:     false,
		}

		created, err := uc.quoteRepo.Create(txCtx, quote)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return toResponse(result), nil
}

// customerRef возвращает ссылку на клиента для логов
func customerRef(req *Request) string {
	if req.UserID != "" {
		return req.UserID
	}
	return req.Email
}
