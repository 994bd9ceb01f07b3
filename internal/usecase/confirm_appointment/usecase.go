package confirm_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	quoteRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/quote"
	slotRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/timeslot"
)

// UseCase use case для подтверждения встречи админом
//
// Подтверждение - единственная операция, пишущая в обе коллекции:
// заявка помечается подтвержденной, а слот на ее (дату, период)
// переводится в confirmed-* форму своего статуса. Обе записи меняются
// в одной сериализуемой транзакции.
type UseCase struct {
	slotRepo  SlotRepository
	quoteRepo QuoteRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	quoteRepo QuoteRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		quoteRepo: quoteRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case подтверждения встречи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmAppointment: id=%s", req.AppointmentID)

	var (
		confirmed *domain.Quote
		slot      *domain.TimeSlot
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем встречу
		appt, err := uc.quoteRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
				uc.logger.Warn("ConfirmAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("ConfirmAppointment: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Заявки без календарного следа подтверждению не подлежат
		if !appt.IsAppointment() {
			uc.logger.Warn("ConfirmAppointment: quote id=%s has type=%s, not an appointment", appt.ID, appt.Type)
			return ErrAppointmentNotFound
		}

		if appt.Confirmed {
			uc.logger.Warn("ConfirmAppointment: appointment id=%s is already confirmed", appt.ID)
			return ErrAlreadyConfirmed
		}

		// 2. Помечаем заявку подтвержденной
		confirmed, err = uc.quoteRepo.SetConfirmed(txCtx, appt.ID)
		if err != nil {
			uc.logger.Error("ConfirmAppointment: failed to confirm appointment id=%s: %v", appt.ID, err)
			return fmt.Errorf("%w: failed to confirm appointment: %v", ErrInternal, err)
		}

		// 3. Синхронизируем слот: его текущий статус переводится в
		// confirmed-* форму; при отсутствии записи слот создается
		// как подтвержденный замер
		status := domain.SlotConfirmedMeasurement
		current, err := uc.slotRepo.GetForPeriod(txCtx, appt.PreferredDate, appt.PreferredTime)
		if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Error("ConfirmAppointment: failed to get slot for date=%s period=%s: %v",
				appt.PreferredDate, appt.PreferredTime, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		if current != nil {
			status = current.Status.ConfirmedVariant()
		}

		slot, err = uc.slotRepo.Upsert(txCtx, appt.PreferredDate, appt.PreferredTime, status)
		if err != nil {
			uc.logger.Error("ConfirmAppointment: failed to update slot for date=%s period=%s: %v",
				appt.PreferredDate, appt.PreferredTime, err)
			return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmAppointment: appointment id=%s confirmed, slot status=%s",
		confirmed.ID, slot.Status)

	return toResponse(confirmed, slot), nil
}
