package get_calendar

import (
	"github.com/m04kA/CWT-SchedulingService/internal/domain"
)

// Request запрос календарной сетки месяца
type Request struct {
	Year  int
	Month int // 1-12
}

// Response календарная сетка месяца: 42 ячейки (6 недель по 7 дней),
// начиная с воскресенья на/перед 1-м числом
type Response struct {
	Year      int               `json:"year"`
	Month     int               `json:"month"`
	Previous  MonthRefResponse  `json:"previous"`
	Next      MonthRefResponse  `json:"next"`
	Cells     []DayCellResponse `json:"cells"`
}

// MonthRefResponse ссылка навигации на соседний месяц
type MonthRefResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// DayCellResponse одна ячейка сетки
// Для дат вне месяца периоды отсутствуют - ячейка визуально инертна
type DayCellResponse struct {
	Date      string              `json:"date"`
	Day       int                 `json:"day"`
	InMonth   bool                `json:"inMonth"`
	Morning   *PeriodViewResponse `json:"morning,omitempty"`
	Afternoon *PeriodViewResponse `json:"afternoon,omitempty"`
}

// PeriodViewResponse сведенное состояние одного (дата, период)
type PeriodViewResponse struct {
	Period          string               `json:"period"`
	EffectiveStatus string               `json:"effectiveStatus"`
	Locked          bool                 `json:"locked"`
	Slot            *SlotInfo            `json:"slot,omitempty"`
	Appointment     *AppointmentOverlay  `json:"appointment,omitempty"`
}

// SlotInfo данные записи слота, как она хранится
type SlotInfo struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	MaxBookings     int    `json:"maxBookings"`
	CurrentBookings int    `json:"currentBookings"`
}

// AppointmentOverlay бейдж встречи поверх ячейки
type AppointmentOverlay struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Confirmed    bool   `json:"confirmed"`
}

// fromPeriodView конвертирует доменное представление периода в DTO
func fromPeriodView(v *domain.PeriodView) *PeriodViewResponse {
	if v == nil {
		return nil
	}

	resp := &PeriodViewResponse{
		Period:          string(v.Period),
		EffectiveStatus: string(v.EffectiveStatus),
		Locked:          v.Locked,
	}

	if v.Slot != nil {
		resp.Slot = &SlotInfo{
			ID:              v.Slot.ID,
			Status:          string(v.Slot.Status),
			MaxBookings:     v.Slot.MaxBookings,
			CurrentBookings: v.Slot.CurrentBookings,
		}
	}

	if v.Appointment != nil {
		resp.Appointment = &AppointmentOverlay{
			ID:           v.Appointment.ID,
			CustomerName: v.CustomerName,
			Confirmed:    v.Appointment.Confirmed,
		}
	}

	return resp
}
