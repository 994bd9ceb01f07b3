package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// UseCase use case построения календарной сетки месяца
// Это движок сверки: авторитетное состояние каждой ячейки вычисляется
// слиянием реестра слотов и реестра встреч.
type UseCase struct {
	slotRepo  SlotRepository
	quoteRepo QuoteRepository
	userRepo  UserRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	quoteRepo QuoteRepository,
	userRepo UserRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		quoteRepo: quoteRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Execute строит сетку из 42 ячеек для (год, месяц)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 1970 || req.Year > 9999 {
		uc.logger.Warn("GetCalendar: invalid month %d-%d", req.Year, req.Month)
		return nil, ErrInvalidMonth
	}

	ref := domain.MonthRef{Year: req.Year, Month: time.Month(req.Month)}
	uc.logger.Info("GetCalendar: building grid for %d-%02d", ref.Year, int(ref.Month))

	slots, err := uc.slotRepo.ListForMonth(ctx, ref.Year, ref.Month)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	quotes, err := uc.quoteRepo.FindForMonth(ctx, ref.Year, ref.Month)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to find appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to find appointments: %v", ErrInternal, err)
	}

	ix := buildIndex(slots, quotes)

	prev := ref.Previous()
	next := ref.Next()
	resp := &Response{
		Year:     ref.Year,
		Month:    int(ref.Month),
		Previous: MonthRefResponse{Year: prev.Year, Month: int(prev.Month)},
		Next:     MonthRefResponse{Year: next.Year, Month: int(next.Month)},
		Cells:    make([]DayCellResponse, 0, domain.GridCells),
	}

	// Имена клиентов резолвятся один раз на заявку за проход
	names := make(map[string]string, len(quotes))

	day := ref.GridStart()
	for i := 0; i < domain.GridCells; i++ {
		year, month, dayOfMonth := day.Date()
		date := types.NewDateString(year, month, dayOfMonth)

		cell := DayCellResponse{
			Date:    date.String(),
			Day:     dayOfMonth,
			InMonth: year == ref.Year && month == ref.Month,
		}

		// Даты вне месяца остаются без вычисленного состояния
		if cell.InMonth {
			cell.Morning = uc.periodView(ctx, ix, date, domain.PeriodMorning, names)
			cell.Afternoon = uc.periodView(ctx, ix, date, domain.PeriodAfternoon, names)
		}

		resp.Cells = append(resp.Cells, cell)
		day = day.AddDate(0, 0, 1)
	}

	uc.logger.Info("GetCalendar: grid for %d-%02d built from %d slots and %d appointments",
		ref.Year, int(ref.Month), len(slots), len(quotes))
	return resp, nil
}

func (uc *UseCase) periodView(
	ctx context.Context,
	ix *monthIndex,
	date types.DateString,
	period domain.Period,
	names map[string]string,
) *PeriodViewResponse {
	view := ix.cell(date, period)

	if view.Appointment != nil {
		view.CustomerName = uc.customerName(ctx, view.Appointment, names)
	}

	return fromPeriodView(view)
}

// customerName возвращает отображаемое имя клиента заявки с кешированием
// на время построения сетки. Порядок: пользователь по userId, затем по
// email, затем имя из самой заявки.
func (uc *UseCase) customerName(ctx context.Context, q *domain.Quote, names map[string]string) string {
	if name, ok := names[q.ID]; ok {
		return name
	}

	name := q.Name
	if q.UserID != "" {
		if u, err := uc.userRepo.GetByID(ctx, q.UserID); err == nil && u.Name != "" {
			name = u.Name
		}
	}
	if name == "" && q.Email != "" {
		if u, err := uc.userRepo.GetByEmail(ctx, q.Email); err == nil && u.Name != "" {
			name = u.Name
		}
	}
	if name == "" {
		name = q.Email
	}

	names[q.ID] = name
	return name
}
