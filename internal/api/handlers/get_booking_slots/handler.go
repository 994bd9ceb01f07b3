package get_booking_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWT-SchedulingService/internal/api/handlers"
	scheduleService "github.com/m04kA/CWT-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/booking/slots?date=2025-03-10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	slots, err := h.service.BookableSlots(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidDate):
			h.logger.Warn("GET /booking/slots - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /booking/slots - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking/slots - %d bookable slots for date=%s", len(slots), date)
	handlers.RespondJSON(w, http.StatusOK, slots)
}
