package confirm_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWT-SchedulingService/internal/api/handlers"
	confirmAppointment "github.com/m04kA/CWT-SchedulingService/internal/usecase/confirm_appointment"
)

const (
	msgAppointmentNotFound = "встреча не найдена"
	msgAlreadyConfirmed    = "встреча уже подтверждена"
)

type Handler struct {
	useCase ConfirmAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["appointmentId"]

	result, err := h.useCase.Execute(r.Context(), &confirmAppointment.Request{AppointmentID: appointmentID})
	if err != nil {
		switch {
		case errors.Is(err, confirmAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{appointmentId}/confirm - Not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, confirmAppointment.ErrAlreadyConfirmed):
			h.logger.Warn("PATCH /appointments/{appointmentId}/confirm - Already confirmed: id=%s", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyConfirmed)

		default:
			h.logger.Error("PATCH /appointments/{appointmentId}/confirm - Failed: id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{appointmentId}/confirm - Confirmed: id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
