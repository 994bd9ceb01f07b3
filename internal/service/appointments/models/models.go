package models

import (
	"time"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
)

// AppointmentResponse ответ с данными встречи
type AppointmentResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	PreferredDate string  `json:"preferredDate"`
	PreferredTime string  `json:"preferredTime"`
	PropertyType  string  `json:"propertyType,omitempty"`
	RoomCount     int     `json:"roomCount,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	Confirmed     bool    `json:"confirmed"`
	ConfirmedAt   *string `json:"confirmedAt,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// AppointmentListResponse ответ со списком встреч
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainQuote конвертирует domain модель заявки в DTO
func FromDomainQuote(q *domain.Quote, customerName string) *AppointmentResponse {
	if q == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:            q.ID,
		CustomerName:  customerName,
		Email:         q.Email,
		Phone:         q.Phone,
		PreferredDate: q.PreferredDate.String(),
		PreferredTime: string(q.PreferredTime),
		PropertyType:  q.PropertyType,
		RoomCount:     q.RoomCount,
		Notes:         q.Notes,
		Confirmed:     q.Confirmed,
		CreatedAt:     q.CreatedAt.Format(time.RFC3339),
	}

	if q.ConfirmedAt != nil {
		confirmedStr := q.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmedStr
	}

	return resp
}
