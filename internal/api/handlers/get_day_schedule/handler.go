package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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

// Handle GET /api/v1/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := vars["date"]

	result, err := h.service.GetDaySchedule(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidDate):
			h.logger.Warn("GET /schedule/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date} - Schedule retrieved: date=%s, slots=%d, appointments=%d",
		date, len(result.Slots), len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
