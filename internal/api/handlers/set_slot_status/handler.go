package set_slot_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWT-SchedulingService/internal/api/handlers"
	scheduleService "github.com/m04kA/CWT-SchedulingService/internal/service/schedule"
	"github.com/m04kA/CWT-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod      = "некорректный период, ожидается morning или afternoon"
	msgInvalidStatus      = "недопустимый статус слота"
	msgSlotLocked         = "слот занят подтвержденной встречей"
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

// Handle PUT /api/v1/slots/{date}/{period}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := vars["date"]
	period := vars["period"]

	var req SetSlotStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/{date}/{period} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.SetSlotStatusRequest{
		Date:   date,
		Period: period,
		Status: req.Status,
	}

	result, err := h.service.SetSlotStatus(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidDate):
			h.logger.Warn("PUT /slots/{date}/{period} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, scheduleService.ErrInvalidPeriod):
			h.logger.Warn("PUT /slots/{date}/{period} - Invalid period: %q", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, scheduleService.ErrInvalidStatus):
			h.logger.Warn("PUT /slots/{date}/{period} - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, scheduleService.ErrConfirmedSlotLocked):
			h.logger.Warn("PUT /slots/{date}/{period} - Slot locked: date=%s, period=%s", date, period)
			handlers.RespondError(w, http.StatusConflict, msgSlotLocked)

		default:
			h.logger.Error("PUT /slots/{date}/{period} - Failed: date=%s, period=%s, error=%v",
				date, period, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Статус no-slot удаляет запись - возвращать нечего
	if result == nil {
		h.logger.Info("PUT /slots/{date}/{period} - Slot removed: date=%s, period=%s", date, period)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.logger.Info("PUT /slots/{date}/{period} - Slot updated: id=%s, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
