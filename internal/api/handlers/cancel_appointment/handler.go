package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWT-SchedulingService/internal/api/handlers"
	appointmentService "github.com/m04kA/CWT-SchedulingService/internal/service/appointments"
)

const (
	msgAppointmentNotFound = "встреча не найдена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["appointmentId"]

	err := h.service.Cancel(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentService.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{appointmentId} - Not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("DELETE /appointments/{appointmentId} - Failed: id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{appointmentId} - Cancelled: id=%s", appointmentID)
	w.WriteHeader(http.StatusNoContent)
}
