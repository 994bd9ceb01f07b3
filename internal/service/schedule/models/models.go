package models

import (
	"time"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// Request модели

// SetSlotStatusRequest запрос на установку статуса слота
type SetSlotStatusRequest struct {
	Date   string `json:"date"`   // "2025-03-10"
	Period string `json:"period"` // "morning" | "afternoon"
	Status string `json:"status"` // статус слота или "no-slot" для удаления
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Period          string  `json:"period"`
	Status          string  `json:"status"`
	MaxBookings     int     `json:"maxBookings"`
	CurrentBookings int     `json:"currentBookings"`
	CreatedAt       string  `json:"createdAt"`
	ConfirmedAt     *string `json:"confirmedAt,omitempty"`
}

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

// DayScheduleResponse расписание одного дня для админской детализации
type DayScheduleResponse struct {
	Date         string                `json:"date"`
	Slots        []SlotResponse        `json:"slots"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// AvailableDatesResponse даты, доступные для клиентского бронирования
type AvailableDatesResponse struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Dates []string `json:"dates"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель слота в DTO
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	resp := &SlotResponse{
		ID:              s.ID,
		Date:            s.Date.String(),
		Period:          string(s.Period),
		Status:          string(s.Status),
		MaxBookings:     s.MaxBookings,
		CurrentBookings: s.CurrentBookings,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}

	if s.ConfirmedAt != nil {
		confirmedStr := s.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmedStr
	}

	return resp
}

// FromDomainQuote конвертирует domain модель заявки в DTO
// customerName передается отдельно - он резолвится по коллекции users
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

// DatesToStrings конвертирует список дат в строки
func DatesToStrings(dates []types.DateString) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}
