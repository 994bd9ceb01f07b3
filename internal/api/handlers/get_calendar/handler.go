package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/CWT-SchedulingService/internal/api/handlers"
	getCalendar "github.com/m04kA/CWT-SchedulingService/internal/usecase/get_calendar"
)

const (
	msgInvalidMonth = "некорректные параметры month и year"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?year=2025&month=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /calendar - Invalid month: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Grid built for %d-%02d", year, month)
	handlers.RespondJSON(w, http.StatusOK, result)
}
