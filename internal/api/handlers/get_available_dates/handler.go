package get_available_dates

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/CWT-SchedulingService/internal/api/handlers"
	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidMonth = "некорректные параметры month и year"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/available-dates?year=2025&month=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /booking/available-dates - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /booking/available-dates - Invalid month: %q", r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	ref := domain.MonthRef{Year: year, Month: time.Month(month)}

	dates, err := h.service.AvailableDates(r.Context(), ref)
	if err != nil {
		h.logger.Error("GET /booking/available-dates - Failed: year=%d, month=%d, error=%v", year, month, err)
		handlers.RespondInternalError(w)
		return
	}

	response := models.AvailableDatesResponse{
		Year:  year,
		Month: month,
		Dates: models.DatesToStrings(dates),
	}

	h.logger.Info("GET /booking/available-dates - %d dates for %d-%02d", len(response.Dates), year, month)
	handlers.RespondJSON(w, http.StatusOK, response)
}
