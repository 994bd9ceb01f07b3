package create_appointment

import (
	"errors"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/CWT-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// errInvalidPeriod возвращается при неизвестном значении периода
var errInvalidPeriod = errors.New("invalid period value")

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date   string `json:"date"`
	Period string `json:"period"`

	UserID string `json:"userId,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`

	PropertyType string `json:"propertyType,omitempty"`
	RoomCount    int    `json:"roomCount,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// с парсингом даты и периода
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := types.ParseDateString(r.Date)
	if err != nil {
		return nil, err
	}

	// Новые заявки принимаются только на актуальные периоды
	period, ok := domain.ParsePeriod(r.Period, false)
	if !ok {
		return nil, errInvalidPeriod
	}

	return &createAppointment.Request{
		Date:         date,
		Period:       period,
		UserID:       r.UserID,
		Email:        r.Email,
		Name:         r.Name,
		Phone:        r.Phone,
		PropertyType: r.PropertyType,
		RoomCount:    r.RoomCount,
		Notes:        r.Notes,
	}, nil
}
