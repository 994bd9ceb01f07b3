package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	quoteRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/quote"
	"github.com/m04kA/CWT-SchedulingService/internal/service/appointments/models"
)

// Service сервис простых операций над реестром встреч
type Service struct {
	quoteRepo QuoteRepository
	userRepo  UserRepository
	logger    Logger
}

// NewService создает сервис встреч
func NewService(quoteRepo QuoteRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		quoteRepo: quoteRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// GetByID возвращает встречу по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	q, err := s.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainQuote(q, s.resolveCustomerName(ctx, q)), nil
}

// GetUserAppointments возвращает встречи клиента
// ref - userId или email (для легаси-записей)
func (s *Service) GetUserAppointments(ctx context.Context, ref string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for ref=%s", ref)

	quotes, err := s.quoteRepo.FindByUser(ctx, ref)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for ref=%s: %v", ref, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	resp := &models.AppointmentListResponse{
		Appointments: make([]models.AppointmentResponse, 0, len(quotes)),
	}
	for _, q := range quotes {
		resp.Appointments = append(resp.Appointments, *models.FromDomainQuote(q, s.resolveCustomerName(ctx, q)))
	}

	s.logger.Info("GetUserAppointments: found %d appointments for ref=%s", len(resp.Appointments), ref)
	return resp, nil
}

// Cancel отменяет встречу, удаляя запись заявки целиком
// Слот при этом не трогается: если встреча была подтверждена, его запись
// остается в статусе confirmed-* до ручной правки персоналом, а календарь
// перестает считать ячейку заблокированной при следующей сверке.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	q, err := s.findAppointment(ctx, id)
	if err != nil {
		return err
	}

	if err := s.quoteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if q.Confirmed {
		s.logger.Warn("Cancel: confirmed appointment id=%s removed, slot at date=%s period=%s keeps its confirmed status until staff re-edit",
			id, q.PreferredDate, q.PreferredTime)
	}

	s.logger.Info("Cancel: appointment id=%s cancelled", id)
	return nil
}

// findAppointment находит заявку и проверяет, что это onsite встреча
func (s *Service) findAppointment(ctx context.Context, id string) (*domain.Quote, error) {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			s.logger.Warn("findAppointment: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("findAppointment: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: findAppointment - repository error: %v", ErrInternal, err)
	}

	if !q.IsAppointment() {
		// Заявки других типов в календаре не участвуют
		s.logger.Warn("findAppointment: quote id=%s has type=%s, not an appointment", id, q.Type)
		return nil, ErrAppointmentNotFound
	}

	return q, nil
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
