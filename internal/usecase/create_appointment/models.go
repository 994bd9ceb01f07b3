package create_appointment

import (
	"time"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// Request запрос на создание встречи для замера на объекте
type Request struct {
	Date   types.DateString
	Period domain.Period

	UserID string
	Email  string
	Name   string
	Phone  string

	PropertyType string
	RoomCount    int
	Notes        string
}

// Response созданная встреча
type Response struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	Period       string     `json:"period"`
	UserID       string     `json:"userId,omitempty"`
	Email        string     `json:"email,omitempty"`
	Name         string     `json:"name,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	PropertyType string     `json:"propertyType,omitempty"`
	RoomCount    int        `json:"roomCount,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Confirmed    bool       `json:"confirmed"`
	ConfirmedAt  *time.Time `json:"confirmedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// toResponse конвертирует доменную заявку в response
func toResponse(q *domain.Quote) *Response {
	return &Response{
		ID:           q.ID,
		Date:         q.PreferredDate.String(),
		Period:       string(q.PreferredTime),
		UserID:       q.UserID,
		Email:        q.Email,
		Name:         q.Name,
		Phone:        q.Phone,
		PropertyType: q.PropertyType,
		RoomCount:    q.RoomCount,
		Notes:        q.Notes,
		Confirmed:    q.Confirmed,
		ConfirmedAt:  q.ConfirmedAt,
		CreatedAt:    q.CreatedAt,
	}
}
