package delete_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWT-SchedulingService/internal/api/handlers"
	scheduleService "github.com/m04kA/CWT-SchedulingService/internal/service/schedule"
)

const (
	msgSlotNotFound = "слот не найден"
	msgSlotLocked   = "слот занят подтвержденной встречей"
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

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID := vars["slotId"]

	err := h.service.DeleteSlot(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{slotId} - Slot not found: id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, scheduleService.ErrConfirmedSlotLocked):
			h.logger.Warn("DELETE /slots/{slotId} - Slot locked: id=%s", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotLocked)

		default:
			h.logger.Error("DELETE /slots/{slotId} - Failed: id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{slotId} - Slot deleted: id=%s", slotID)
	w.WriteHeader(http.StatusNoContent)
}
