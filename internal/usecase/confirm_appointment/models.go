package confirm_appointment

import (
	"time"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
)

// Request запрос на подтверждение встречи
type Request struct {
	AppointmentID string
}

// Response результат подтверждения: встреча и синхронизированный слот
type Response struct {
	Appointment AppointmentResponse `json:"appointment"`
	Slot        *SlotResponse       `json:"slot,omitempty"`
}

// AppointmentResponse подтвержденная встреча
type AppointmentResponse struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Period      string     `json:"period"`
	Confirmed   bool       `json:"confirmed"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
}

// SlotResponse запись слота после синхронизации статуса
type SlotResponse struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Period      string     `json:"period"`
	Status      string     `json:"status"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
}

// toResponse конвертирует результат подтверждения в response
func toResponse(q *domain.Quote, slot *domain.TimeSlot) *Response {
	resp := &Response{
		Appointment: AppointmentResponse{
			ID:          q.ID,
			Date:        q.PreferredDate.String(),
			Period:      string(q.PreferredTime),
			Confirmed:   q.Confirmed,
			ConfirmedAt: q.ConfirmedAt,
		},
	}

	if slot != nil {
		resp.Slot = &SlotResponse{
			ID:          slot.ID,
			Date:        slot.Date.String(),
			Period:      string(slot.Period),
			Status:      string(slot.Status),
			ConfirmedAt: slot.ConfirmedAt,
		}
	}

	return resp
}
