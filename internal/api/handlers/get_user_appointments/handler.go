package get_user_appointments

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWT-SchedulingService/internal/api/handlers"
)

const (
	msgInvalidUserRef = "некорректный идентификатор клиента"
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

// Handle GET /api/v1/users/{userRef}/appointments
// userRef - userId либо email для легаси-записей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ref := vars["userRef"]
	if ref == "" {
		h.logger.Warn("GET /users/{userRef}/appointments - Empty user ref")
		handlers.RespondBadRequest(w, msgInvalidUserRef)
		return
	}

	result, err := h.service.GetUserAppointments(r.Context(), ref)
	if err != nil {
		h.logger.Error("GET /users/{userRef}/appointments - Failed: ref=%s, error=%v", ref, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userRef}/appointments - %d appointments for ref=%s",
		len(result.Appointments), ref)
	handlers.RespondJSON(w, http.StatusOK, result)
}
